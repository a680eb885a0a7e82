package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/courseadmin/internal/pkg/logger"
	"github.com/yigit/courseadmin/internal/pkg/metrics"
)

// RequestLogger logs every request once it completes and records its metrics
func RequestLogger() gin.HandlerFunc {
	log := logger.Component("http")
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()
		metrics.RecordRequest(c.Request.Method, c.FullPath(), status, duration)

		event := log.Debug()
		switch {
		case status >= 500:
			event = log.Error()
		case status >= 400:
			event = log.Warn()
		}
		if len(c.Errors) > 0 {
			event = event.Str("errors", c.Errors.String())
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.RequestURI()).
			Str("ip", c.ClientIP()).
			Int("status", status).
			Dur("duration", duration).
			Msg("Request handled")
	}
}
