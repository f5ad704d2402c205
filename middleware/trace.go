package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/port-russell/marina-api/logging/logger"
)

// Trace ensures every request context carries a trace id for log
// correlation.
func Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, _ := logger.EnsureTraceID(c.Request.Context())
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequestLogger logs one line per handled request.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		log.Infof(c.Request.Context(), "%s %s -> %d (%s)",
			method, path, c.Writer.Status(), time.Since(start))
	}
}
