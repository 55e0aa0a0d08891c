package middlewares

import (
	"net/http"
	"runtime"

	"github.com/dmitrymomot/sprout/internal"
)

// DefaultStackSize caps the captured stack trace, in bytes.
const DefaultStackSize = 4096

// RecoverConfig configures Recover.
type RecoverConfig struct {
	StackSize         int
	DisablePrintStack bool // skip capturing and logging the stack
}

// RecoverOption configures RecoverConfig.
type RecoverOption func(*RecoverConfig)

// WithRecoverStackSize sets the stack trace cap. Non-positive sizes are ignored.
func WithRecoverStackSize(size int) RecoverOption {
	return func(cfg *RecoverConfig) {
		if size > 0 {
			cfg.StackSize = size
		}
	}
}

// WithRecoverDisablePrintStack turns stack capture off.
func WithRecoverDisablePrintStack() RecoverOption {
	return func(cfg *RecoverConfig) { cfg.DisablePrintStack = true }
}

// Recover turns a panic in a handler or page component into a *PanicError,
// which the app renders with its error page. The panic is logged at error
// level. http.ErrAbortHandler is re-raised so net/http aborts the response.
func Recover(opts ...RecoverOption) internal.Middleware {
	cfg := RecoverConfig{StackSize: DefaultStackSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) (err error) {
			defer func() {
				if v := recover(); v != nil {
					err = cfg.handlePanic(c, v)
				}
			}()
			return next(c)
		}
	}
}

func (cfg RecoverConfig) handlePanic(c internal.Context, v any) error {
	if v == http.ErrAbortHandler {
		panic(v)
	}

	pe := &PanicError{Value: v}
	if cfg.DisablePrintStack {
		c.LogError("panic recovered", "panic", v)
		return pe
	}

	buf := make([]byte, cfg.StackSize)
	pe.Stack = buf[:runtime.Stack(buf, false)]
	c.LogError("panic recovered", "panic", v, "stack", string(pe.Stack))
	return pe
}
