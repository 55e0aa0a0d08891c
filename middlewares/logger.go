package middlewares

import (
	"log/slog"
	"slices"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/sprout/internal"
)

// LoggerConfig configures the access log middleware.
type LoggerConfig struct {
	SkipPaths []string // Paths that are not logged, e.g. health probes
}

// LoggerOption configures LoggerConfig.
type LoggerOption func(*LoggerConfig)

// WithLoggerSkipPaths excludes exact request paths from the access log.
func WithLoggerSkipPaths(paths ...string) LoggerOption {
	return func(cfg *LoggerConfig) {
		cfg.SkipPaths = append(cfg.SkipPaths, paths...)
	}
}

// Logger returns middleware that writes one access log record per request
// with the app logger. 5xx responses are logged at error level, 4xx at warn.
//
// When the handler returns an error the response is written later by the
// error handler, so the status is taken from the error.
//
// Records carry the matched router pattern ("/docs/{slug}") as "pattern".
// The manifest file ("docs/[slug]") is added as "route" only when Logger is
// used as route middleware; app-wide middleware runs before routing.
func Logger(opts ...LoggerOption) internal.Middleware {
	cfg := &LoggerConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			if slices.Contains(cfg.SkipPaths, c.Request().URL.Path) {
				return next(c)
			}

			start := time.Now()
			err := next(c)

			rw := c.ResponseWriter()
			status := rw.Status()
			if err != nil && !rw.Written() {
				status = internal.StatusCode(err)
			}

			attrs := []any{
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
				slog.Int("status", status),
				slog.Int64("size", rw.Size()),
				slog.Duration("duration", time.Since(start)),
			}
			if rctx := chi.RouteContext(c.Request().Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					attrs = append(attrs, slog.String("pattern", pattern))
				}
			}
			if route := c.Route(); route != "" {
				attrs = append(attrs, slog.String("route", route))
			}

			switch {
			case status >= 500:
				c.LogError("request", attrs...)
			case status >= 400:
				c.LogWarn("request", attrs...)
			default:
				c.LogInfo("request", attrs...)
			}
			return err
		}
	}
}
