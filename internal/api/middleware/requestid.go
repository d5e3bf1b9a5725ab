package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/arcshell/arcshell/internal/shared/id"
)

// RequestIDHeader is the canonical request id header.
const RequestIDHeader = "X-Request-ID"

// RequestIDKey is the gin context key carrying the request id.
const RequestIDKey = "request_id"

// RequestID tags every request with a req_<ULID> id, honoring one
// supplied by the caller, and echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(RequestIDHeader)
		if rid == "" {
			rid = id.NewRequestID().String()
		}
		c.Set(RequestIDKey, rid)
		c.Writer.Header().Set(RequestIDHeader, rid)
		c.Next()
	}
}

// RequestIDFrom returns the request id stored on the context, if any.
func RequestIDFrom(c *gin.Context) string {
	if rid, ok := c.Get(RequestIDKey); ok {
		if s, ok := rid.(string); ok {
			return s
		}
	}
	return ""
}
