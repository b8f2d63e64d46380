package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLogger logs every request with latency and status. Credentials
// never reach the log: authorization and cookie headers are scrubbed.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		scrubbed := scrub(c.Request.Header)
		log.Debug("incoming request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("origin", c.GetHeader("Origin")),
			zap.Any("headers", scrubbed),
		)

		ts := time.Now()
		c.Next()

		latency := time.Since(ts)
		status := c.Writer.Status()

		for _, e := range c.Errors {
			log.Error("handler error",
				zap.Int("status", status),
				zap.Error(e),
				zap.String("path", c.Request.URL.Path),
			)
		}

		log.Info("completed",
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
		)
	}
}

func scrub(h http.Header) http.Header {
	clone := h.Clone()
	for k := range clone {
		lower := strings.ToLower(k)
		if strings.Contains(lower, "authorization") || strings.Contains(lower, "cookie") {
			clone[k] = []string{"[redacted]"}
		}
	}
	return clone
}
