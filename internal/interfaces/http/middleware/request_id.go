// internal/interfaces/http/middleware/request_id.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the request identifier for log correlation
	RequestIDHeader = "X-Request-ID"

	requestIDKey = "request_id"
)

// RequestID tags every request with an identifier, honoring one supplied
// by the client so upstream proxies can correlate their own logs
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(requestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()
	}
}

// GetRequestID returns the request's identifier
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
