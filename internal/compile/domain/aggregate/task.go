package aggregate

import (
	"time"
	
	"github.com/Wenrh2004/playground/internal/compile/domain/aggregate/vo"
)

// Task is a compile request queued for asynchronous execution.
type Task struct {
	ID        string    `json:"id"`
	SubmitID  string    `json:"submit_id"`
	UserID    string    `json:"user_id"`
	Request   Request   `json:"request"`
	Status    vo.Status `json:"status"`
	Result    *Result   `json:"result,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *Task) GetFileName() string {
	return t.ID + t.Request.Language.FileSuffix()
}

// Finish records the result and moves the task to its final status.
func (t *Task) Finish(result *Result) {
	t.Result = result
	if result.Success {
		t.Status = *vo.Success
	} else {
		t.Status = *vo.Failed
	}
}
