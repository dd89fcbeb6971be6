package vo

import (
	"fmt"
	
	"github.com/bytedance/sonic"
)

var (
	Pending = newStatus(0, "Pending")
	Success = newStatus(1, "Success")
	Failed  = newStatus(2, "Failed")
)

// Status is the lifecycle state of an asynchronous compile task.
type Status struct {
	statusCode byte
	statusMsg  string
}

func newStatus(code byte, msg string) *Status {
	return &Status{
		statusCode: code,
		statusMsg:  msg,
	}
}

func GetStatusByString(s string) *Status {
	switch s {
	case Pending.statusMsg:
		return Pending
	case Success.statusMsg:
		return Success
	case Failed.statusMsg:
		return Failed
	default:
		return nil
	}
}

func GetStatusByCode(code byte) *Status {
	switch code {
	case Pending.statusCode:
		return Pending
	case Success.statusCode:
		return Success
	case Failed.statusCode:
		return Failed
	default:
		return nil
	}
}

func (s Status) GetCode() byte {
	return s.statusCode
}

func (s Status) GetMsg() string {
	return s.statusMsg
}

// IsFinished reports whether the task will not change any more.
func (s Status) IsFinished() bool {
	return s.statusCode == Success.statusCode || s.statusCode == Failed.statusCode
}

func (s Status) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(s.statusMsg)
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var msg string
	if err := sonic.Unmarshal(data, &msg); err != nil {
		return err
	}
	status := GetStatusByString(msg)
	if status == nil {
		return fmt.Errorf("unknown task status %q", msg)
	}
	*s = *status
	return nil
}
