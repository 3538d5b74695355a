// Package middleware provides gin middleware shared by the server:
// request logging and Prometheus request metrics.
package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogging returns a middleware that logs every request with its
// method, path, status, and duration.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		fields := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", c.ClientIP(),
		}
		if status >= 500 {
			slog.Error("Request failed", fields...)
		} else if status >= 400 {
			slog.Warn("Request rejected", fields...)
		} else {
			slog.Info("Request completed", fields...)
		}
	}
}
