package middleware

import (
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
)

const (
	RequestIDKey    = "request_id"
	RequestIDHeader = "X-Request-ID"
)

// RequestID tags every request with an id, reusing the caller's X-Request-ID
// when it is a valid uuid.
func RequestID() drift.HandlerFunc {
	return func(c *drift.Context) {
		id, err := uuid.Parse(c.GetHeader(RequestIDHeader))
		if err != nil {
			id = uuid.New()
		}

		c.Set(RequestIDKey, id)
		c.Response.Header().Set(RequestIDHeader, id.String())

		c.Next()
	}
}

func GetRequestID(c *drift.Context) uuid.UUID {
	if id, ok := c.Get(RequestIDKey); ok {
		if rid, ok := id.(uuid.UUID); ok {
			return rid
		}
	}
	return uuid.Nil
}
