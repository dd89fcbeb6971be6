package v1

import (
	"errors"
	
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// Response is the envelope of every API reply.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func HandlerSuccess(c *app.RequestContext, data interface{}) {
	resp := Response{Code: errorCodeMap[ErrSuccess], Message: ErrSuccess.Error(), Data: data}
	c.JSON(consts.StatusOK, resp)
}

// HandlerError replies with one of the errors declared in this package;
// anything else is reported as an unknown error.
func HandlerError(c *app.RequestContext, httpCode int, err error) {
	code, ok := errorCodeMap[err]
	if !ok {
		c.JSON(httpCode, Response{Code: 500, Message: "unknown error"})
		return
	}
	c.JSON(httpCode, Response{Code: code, Message: err.Error()})
}

var errorCodeMap = map[error]int{}

func newError(code int, msg string) error {
	err := errors.New(msg)
	errorCodeMap[err] = code
	return err
}
