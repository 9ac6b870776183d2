package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LoggerMiddleware logs one line per request with a propagated request id.
// The id is taken from X-Request-ID when the caller supplies one, stored in
// the context for handlers, and echoed back in the response.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		// Auth middleware runs inside c.Next, so the caller is only known
		// here on protected routes.
		caller := c.GetString("user_email")
		if caller == "" {
			caller = "-"
		}

		log.Printf("[%s] %s %s | %d | %v | %s | %s",
			shortID(requestID),
			c.Request.Method,
			path,
			c.Writer.Status(),
			time.Since(start),
			c.ClientIP(),
			caller,
		)

		for _, e := range c.Errors {
			log.Printf("[%s] Error: %v", shortID(requestID), e.Err)
		}
	}
}

// shortID truncates a request id for the log prefix. Caller-supplied ids
// may be shorter than a UUID.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
