// Package middlewares provides concrete outer/inner middlewares built on
// the event.Outer / event.Inner contracts from SPEC_FULL.md §4.3.
package middlewares

import (
	"time"

	"go.uber.org/zap"

	"github.com/kurtskinny/tgcore/event"
	"github.com/kurtskinny/tgcore/logging"
)

// Logging is an inner middleware that logs the handler's outcome and
// latency. Registered ahead of a handler, it wraps the call rather than
// rewriting the request, matching SPEC_FULL.md §4.3 "Inner middleware".
func Logging(log *logging.Logger) event.Inner {
	return func(req event.Request, next event.Next) event.HandlerResponse {
		start := time.Now()
		resp := next(req)
		fields := []zap.Field{
			zap.String("update_kind", string(req.Update.Kind)),
			zap.Duration("latency", time.Since(start)),
			zap.String("result", resp.Result.String()),
		}
		if req.Bot != nil {
			fields = append(fields, logging.BotField(req.Bot))
		}
		if resp.Err != nil {
			log.Error("handler error", append(fields, zap.Error(resp.Err))...)
		} else {
			log.Debug("handler finished", fields...)
		}
		return resp
	}
}
