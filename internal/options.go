package internal

import (
	"compress/flate"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/sprout/pkg/logger"
	"github.com/dmitrymomot/sprout/pkg/plugin"
)

// Option configures the application.
type Option func(*App)

// WithManifest sets the route manifest: file-based pages, API handlers,
// the app layout and the error pages.
//
// Example:
//
//	sprout.New(
//	    sprout.WithManifest(&sprout.Manifest{
//	        App:   views.App,
//	        Error: views.ErrorPage,
//	        Routes: []sprout.Route{
//	            {File: "index", Page: views.Home},
//	            {File: "greet/[name]", Page: views.Greet},
//	        },
//	    }),
//	)
func WithManifest(m *Manifest) Option {
	return func(a *App) {
		a.manifest = m
	}
}

// WithPlugins adds render plugins. Plugins run in the order provided and
// their styles are placed into the document head in the same order.
func WithPlugins(p ...plugin.Plugin) Option {
	return func(a *App) {
		for _, pl := range p {
			if pl != nil {
				a.plugins = append(a.plugins, pl)
			}
		}
	}
}

// WithCompression enables gzip/deflate response compression.
// Level follows compress/flate; out of range values fall back to the default level.
// With no types, text/html, text/css, text/plain, application/json and
// image/svg+xml responses are compressed.
func WithCompression(level int, types ...string) Option {
	return func(a *App) {
		if level < flate.HuffmanOnly || level > flate.BestCompression {
			level = flate.DefaultCompression
		}
		if len(types) == 0 {
			types = []string{
				"text/html",
				"text/css",
				"text/plain",
				"application/json",
				"image/svg+xml",
			}
		}
		a.compression = &compressionConfig{level: level, types: types}
	}
}

// WithMiddleware adds global middleware to the application.
// Middleware is applied in the order provided.
func WithMiddleware(mw ...Middleware) Option {
	return func(a *App) {
		a.middlewares = append(a.middlewares, mw...)
	}
}

// WithHandlers registers handlers that declare routes outside the manifest.
// Each handler's Routes method is called during setup.
func WithHandlers(h ...Handler) Option {
	return func(a *App) {
		a.handlers = append(a.handlers, h...)
	}
}

// WithStaticFiles mounts a static file handler at the given pattern.
// Directory listings are disabled.
//
// Example:
//
//	//go:embed public
//	var assets embed.FS
//
//	sprout.New(
//	    sprout.WithStaticFiles("/static/", assets, "public"),
//	)
func WithStaticFiles(pattern string, fsys fs.FS, subDir string) Option {
	return func(a *App) {
		subFS, err := fs.Sub(fsys, subDir)
		if err != nil {
			panic(err)
		}

		fileServer := http.StripPrefix(strings.TrimSuffix(pattern, "/"), http.FileServerFS(subFS))

		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasSuffix(r.URL.Path, "/") {
				http.NotFound(w, r)
				return
			}

			w.Header().Set("Cache-Control", "public, max-age=3600")
			w.Header().Set("X-Content-Type-Options", "nosniff")

			fileServer.ServeHTTP(w, r)
		})

		a.staticRoutes = append(a.staticRoutes, staticRoute{handler: handler, pattern: pattern})
	}
}

// WithErrorHandler sets a custom error handler for handler errors.
// It takes precedence over the manifest error pages. If it returns an error
// without writing a response, the default error page is rendered.
//
// Example:
//
//	sprout.WithErrorHandler(func(c sprout.Context, err error) error {
//	    return c.JSON(sprout.StatusCode(err), map[string]string{
//	        "error": err.Error(),
//	    })
//	})
func WithErrorHandler(h ErrorHandler) Option {
	return func(a *App) {
		a.errorHandler = h
	}
}

// WithNotFoundHandler sets a custom handler for unmatched routes.
//
// Example:
//
//	sprout.WithNotFoundHandler(func(c sprout.Context) error {
//	    return c.String(http.StatusNotFound, "Page not found")
//	})
func WithNotFoundHandler(h HandlerFunc) Option {
	return func(a *App) {
		a.notFoundHandler = h
	}
}

// WithMethodNotAllowedHandler sets a custom 405 handler.
func WithMethodNotAllowedHandler(h HandlerFunc) Option {
	return func(a *App) {
		a.methodNotAllowedHandler = h
	}
}

// WithHealthChecks enables health check endpoints with optional configuration.
// Liveness (/health/live): Always returns OK if process is running.
// Readiness (/health/ready): Runs all configured checks.
//
// Example:
//
//	sprout.WithHealthChecks(
//	    sprout.WithReadinessCheck("docs", store.Healthcheck),
//	)
func WithHealthChecks(opts ...HealthOption) Option {
	return func(a *App) {
		cfg := &healthConfig{
			livenessPath:  defaultLivenessPath,
			readinessPath: defaultReadinessPath,
		}
		for _, opt := range opts {
			opt(cfg)
		}
		a.healthConfig = cfg
	}
}

// WithLogger creates a JSON logger with a component name and optional extractors.
// The component name is added to every log entry for easy filtering.
// Extractors pull values from context (e.g., request_id).
//
// Example:
//
//	sprout.New(
//	    sprout.WithLogger("web", middlewares.RequestIDExtractor()),
//	)
func WithLogger(component string, extractors ...logger.ContextExtractor) Option {
	return func(a *App) {
		a.logger = logger.New(logger.Options{}, extractors...).With("component", component)
	}
}

// WithCustomLogger sets a fully custom logger.
//
// Example:
//
//	log := logger.New(logger.Options{Format: logger.FormatPretty})
//	sprout.New(
//	    sprout.WithCustomLogger(log),
//	)
func WithCustomLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}
