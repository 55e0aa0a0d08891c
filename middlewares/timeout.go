package middlewares

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrymomot/sprout/internal"
)

// DefaultTimeout is the default request timeout.
const DefaultTimeout = 30 * time.Second

// Timeout returns middleware that puts a deadline on the request context.
// Handlers observe it through the Context (it is a context.Context). If the
// deadline passes before a response is written, a *TimeoutError is returned
// and the app renders its error page with status 503.
// A non-positive timeout uses DefaultTimeout.
func Timeout(timeout time.Duration) internal.Middleware {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			parent := c.Context()
			ctx, cancel := context.WithTimeout(parent, timeout)
			defer cancel()

			c.SetContext(ctx)
			err := next(c)

			if errors.Is(ctx.Err(), context.DeadlineExceeded) && parent.Err() == nil && !c.Written() {
				c.LogWarn("request timeout", "timeout", timeout.String())
				return &TimeoutError{Duration: timeout, Err: err}
			}
			return err
		}
	}
}
