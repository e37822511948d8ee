package middleware

import (
	"log/slog"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"jokester/src/app/http/response"
	"jokester/src/infra/logger"
)

// Recovery turns a panic into the generic error page (or JSON error for
// data requests) and logs the stack. Register it after RequestID so the
// entry carries the request ID.
func Recovery(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				requestID := GetRequestID(c)

				logger.WithRequestID(log, requestID).Error("panic recovered",
					"error", err,
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
					"stack", string(debug.Stack()),
				)

				response.InternalError(c, requestID)
				c.Abort()
			}
		}()

		c.Next()
	}
}
