package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDKey is the key used to store the request ID in the gin context
	RequestIDKey = "request_id"

	// RequestIDHeader is the correlation header shared with callers
	RequestIDHeader = "x-request-id"
)

// RequestIDMiddleware ensures every request carries a correlation id: it
// reads the inbound x-request-id header or generates a fresh one, then makes
// the id visible to downstream handlers (request header + context) and to the
// caller (response header). The id is assigned once and never regenerated
// during the request.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)

		if requestID == "" {
			requestID = uuid.NewString()
			c.Request.Header.Set(RequestIDHeader, requestID)
		}

		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()
	}
}
