package http

import (
	"context"
	"time"
	
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/google/uuid"
	"go.uber.org/zap"
	
	"github.com/Wenrh2004/playground/pkg/log"
)

const TraceHeader = "X-Request-ID"

// RequestLogMiddleware tags every request with a trace id, stores a child
// logger carrying it in the context and logs the request once it finishes.
func RequestLogMiddleware(logger *log.Logger) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		traceID := string(c.GetHeader(TraceHeader))
		if traceID == "" {
			traceID = uuid.NewString()
		}
		c.Response.Header.Set(TraceHeader, traceID)
		
		ctx = logger.WithValue(ctx, zap.String("trace_id", traceID))
		start := time.Now()
		c.Next(ctx)
		
		logger.WithContext(ctx).Info("request",
			zap.String("method", string(c.Method())),
			zap.String("path", string(c.Path())),
			zap.Int("status", c.Response.StatusCode()),
			zap.Duration("latency", time.Since(start)))
	}
}
