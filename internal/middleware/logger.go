package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requestIDKey is the gin context key the logger and error handler read.
const requestIDKey = "request_id"

// RequestID propagates the caller's X-Request-ID or mints one, so every log
// line and error payload produced while a wizard session is driven can be
// correlated back to the request.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// Logger writes one key=value line per request. Health probes are not
// logged; orchestrator polling would otherwise dominate the output.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if path == "/healthz" || path == "/readyz" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		log.Printf("request_id=%s method=%s path=%s status=%d duration=%s",
			c.GetString(requestIDKey),
			c.Request.Method,
			path,
			c.Writer.Status(),
			time.Since(start).Round(time.Microsecond),
		)
	}
}

// Recovery converts panics into 500 responses.
func Recovery() gin.HandlerFunc {
	return gin.Recovery()
}
