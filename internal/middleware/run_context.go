package middleware

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RunContext replaces the request's user context with one that is cancelled
// when base is done and, when timeout is positive, once timeout has elapsed.
// fasthttp never cancels a request context on client disconnect, so base (the
// server lifetime) and the deadline are what stop a generation run early.
func RunContext(base context.Context, timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithCancel(c.UserContext())
		defer cancel()
		stop := context.AfterFunc(base, cancel)
		defer stop()

		if timeout > 0 {
			var cancelTimeout context.CancelFunc
			ctx, cancelTimeout = context.WithTimeout(ctx, timeout)
			defer cancelTimeout()
		}

		c.SetUserContext(ctx)
		return c.Next()
	}
}
