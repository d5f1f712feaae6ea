package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs information about incoming requests using slog.
// Errors attached to the gin context are logged at error level.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		attrs := []any{
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Duration("latency", latency),
			slog.String("request_id", RequestIDFrom(c)),
		}
		if len(c.Errors) > 0 {
			logger.Error("http request failed", append(attrs, slog.String("error", c.Errors.String()))...)
			return
		}
		logger.Info("http request", attrs...)
	}
}
