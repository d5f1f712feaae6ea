package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	// RequestIDContextKey is a gin context key for the request identifier.
	RequestIDContextKey = "requestID"
)

// RequestID assigns an identifier to every request, keeping the one sent by the client.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDContextKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// RequestIDFrom returns identifier assigned by RequestID or an empty string.
func RequestIDFrom(c *gin.Context) string {
	return c.GetString(RequestIDContextKey)
}
