package middleware

import (
	"jample-admin/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderRequestID   = "X-Request-ID"
	maxRequestIDChars = 64
)

// RequestID propagates the caller's X-Request-ID when it is a short
// printable token and mints a fresh one otherwise. The id also travels
// to the backend and the outbox headers, so junk is never forwarded.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(HeaderRequestID)
		if !validRequestID(rid) {
			rid = uuid.NewString()
		}

		c.Set("request_id", rid)
		c.Request = c.Request.WithContext(contextutil.WithRequestID(c.Request.Context(), rid))
		c.Header(HeaderRequestID, rid)

		c.Next()
	}
}

func validRequestID(rid string) bool {
	if rid == "" || len(rid) > maxRequestIDChars {
		return false
	}
	for _, r := range rid {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-' || r == '_' || r == '.' || r == ':':
		default:
			return false
		}
	}
	return true
}
