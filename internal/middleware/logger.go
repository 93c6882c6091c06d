package middleware

import (
	"log"
	"time"

	"github.com/m1z23r/drift/pkg/drift"
)

// Logger writes one line per request once the handler chain returns.
func Logger() drift.HandlerFunc {
	return func(c *drift.Context) {
		start := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path

		c.Next()

		log.Printf("%s %s %s req=%s", method, path, time.Since(start).Round(time.Microsecond), GetRequestID(c))
	}
}
