package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the request ID between the dashboard, its
	// callers, and any proxy in front of it.
	RequestIDHeader = "X-Request-ID"
	// RequestIDLocalKey is where the ID lives in Fiber locals; the access
	// logger and the error envelope both read it from there.
	RequestIDLocalKey = "request_id"
)

// RequestID tags every request so the JSON access log and the error
// envelope can be correlated with the caller's own logs. An incoming
// X-Request-ID is kept and echoed back; without one a fresh UUID is
// generated.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Locals(RequestIDLocalKey, id)
		c.Set(RequestIDHeader, id)

		return c.Next()
	}
}
