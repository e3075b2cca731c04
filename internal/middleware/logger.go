package middleware

import (
	"time"

	"member-admin/pkg/log"

	"github.com/gin-gonic/gin"
)

// RequestLog logs one line per request. The view id, when present, is attached to the request context.
func (m Middleware) RequestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		if id := c.Param("id"); id != "" {
			c.Request = c.Request.WithContext(log.WithContext(c.Request.Context(), m.l, "view_id", id))
		}

		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		latency := time.Since(start)
		switch {
		case status >= 500:
			m.l.Errorf(ctx, "%s %s %d %v", c.Request.Method, c.Request.URL.Path, status, latency)
		case status >= 400:
			m.l.Warnf(ctx, "%s %s %d %v", c.Request.Method, c.Request.URL.Path, status, latency)
		default:
			m.l.Debugf(ctx, "%s %s %d %v", c.Request.Method, c.Request.URL.Path, status, latency)
		}
	}
}
