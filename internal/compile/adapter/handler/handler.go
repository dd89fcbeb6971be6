package handler

import (
	"github.com/cloudwego/hertz/pkg/app"
)

const (
	UserIDHeader  = "X-User-ID"
	anonymousUser = "anonymous"
)

// userID identifies the caller by header; there is no authentication.
func userID(c *app.RequestContext) string {
	if id := string(c.GetHeader(UserIDHeader)); id != "" {
		return id
	}
	return anonymousUser
}
