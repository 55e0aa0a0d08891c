package sprout

import (
	"context"
	"io/fs"
	"log/slog"
	"net"
	"time"

	"github.com/dmitrymomot/sprout/internal"
	"github.com/dmitrymomot/sprout/pkg/health"
	"github.com/dmitrymomot/sprout/pkg/logger"
	"github.com/dmitrymomot/sprout/pkg/plugin"
)

// Type aliases - public API
type (
	// App orchestrates the application lifecycle.
	// It manages HTTP routing, page rendering, and graceful shutdown.
	App = internal.App

	// Router is the interface handlers use to declare routes.
	Router = internal.Router

	// Context provides request/response access and helper methods.
	Context = internal.Context

	// Handler declares routes on a router.
	Handler = internal.Handler

	// HandlerFunc is the signature for route handlers.
	HandlerFunc = internal.HandlerFunc

	// Middleware wraps a HandlerFunc to add cross-cutting concerns.
	Middleware = internal.Middleware

	// ErrorHandler handles errors returned from handlers.
	ErrorHandler = internal.ErrorHandler

	// Option configures the application.
	Option = internal.Option

	// RunOption configures the server runtime.
	RunOption = internal.RunOption

	// HealthOption configures health check endpoints.
	HealthOption = internal.HealthOption

	// Component is the interface for renderable templates.
	Component = internal.Component

	// ComponentFunc adapts a function to Component.
	ComponentFunc = internal.ComponentFunc

	// Manifest maps route files to pages and handlers.
	Manifest = internal.Manifest

	// Route is one entry of the route manifest.
	Route = internal.Route

	// RouteInfo describes a compiled route.
	RouteInfo = internal.RouteInfo

	// PageProps is passed to page components.
	PageProps = internal.PageProps

	// LayoutProps is passed to the root layout.
	LayoutProps = internal.LayoutProps

	// ErrorPageProps is passed to the not-found and error pages.
	ErrorPageProps = internal.ErrorPageProps

	// PageFunc builds the component for a page.
	PageFunc = internal.PageFunc

	// LayoutFunc builds the document shell around a rendered page.
	LayoutFunc = internal.LayoutFunc

	// ErrorPageFunc builds the component for an error response.
	ErrorPageFunc = internal.ErrorPageFunc

	// Plugin hooks into page rendering.
	Plugin = plugin.Plugin

	// ResponseWriter wraps http.ResponseWriter with status and size tracking.
	ResponseWriter = internal.ResponseWriter

	// HTTPError is an error with an HTTP status and a user-facing message.
	HTTPError = internal.HTTPError

	// HTTPErrorOption configures an HTTPError.
	HTTPErrorOption = internal.HTTPErrorOption

	// Extractor tries multiple request sources in order.
	Extractor = internal.Extractor

	// ExtractorSource reads a value from the request.
	ExtractorSource = internal.ExtractorSource

	// ContextExtractor extracts a slog attribute from context.
	// Used with WithLogger to add request-scoped values to logs.
	ContextExtractor = logger.ContextExtractor
)

// DefaultErrorMessage is shown when a request fails without a public message.
const DefaultErrorMessage = internal.DefaultErrorMessage

// DefaultAddress is used when Run is called with an empty address.
const DefaultAddress = internal.DefaultAddress

// Route kinds reported by RouteInfo.
const (
	KindPage = internal.KindPage
	KindAPI  = internal.KindAPI
)

// Sentinel errors.
var (
	ErrNoPage       = internal.ErrNoPage
	ErrInvalidRoute = internal.ErrInvalidRoute
)

// Constructors

// New creates a new application with the given options.
// The App is immutable after creation. New panics if the manifest is invalid.
//
// Example:
//
//	app := sprout.New(
//	    sprout.WithManifest(routes.Manifest(docs)),
//	    sprout.WithPlugins(style.New()),
//	    sprout.WithMiddleware(middlewares.Recover()),
//	)
//
//	err := app.Run(":8000", sprout.Logger(log))
func New(opts ...Option) *App {
	return internal.New(opts...)
}

// App options

// WithManifest sets the route manifest.
func WithManifest(m *Manifest) Option {
	return internal.WithManifest(m)
}

// WithPlugins adds render plugins. They run in the order provided.
func WithPlugins(p ...Plugin) Option {
	return internal.WithPlugins(p...)
}

// WithCompression enables gzip/deflate response compression.
// With no types, text, JSON and SVG responses are compressed.
func WithCompression(level int, types ...string) Option {
	return internal.WithCompression(level, types...)
}

// WithMiddleware adds global middleware to the application.
// Middleware is applied in the order provided.
func WithMiddleware(mw ...Middleware) Option {
	return internal.WithMiddleware(mw...)
}

// WithHandlers registers handlers that declare routes outside the manifest.
func WithHandlers(h ...Handler) Option {
	return internal.WithHandlers(h...)
}

// WithStaticFiles mounts a static file handler at the given pattern.
// Directory listings are disabled. Files are served with default cache headers.
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
	return internal.WithStaticFiles(pattern, fsys, subDir)
}

// WithErrorHandler sets a custom error handler for handler errors.
// It takes precedence over the manifest error pages.
func WithErrorHandler(h ErrorHandler) Option {
	return internal.WithErrorHandler(h)
}

// WithNotFoundHandler sets a custom 404 handler.
func WithNotFoundHandler(h HandlerFunc) Option {
	return internal.WithNotFoundHandler(h)
}

// WithMethodNotAllowedHandler sets a custom 405 handler.
func WithMethodNotAllowedHandler(h HandlerFunc) Option {
	return internal.WithMethodNotAllowedHandler(h)
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
	return internal.WithHealthChecks(opts...)
}

// WithLogger creates a logger with a component name and optional extractors.
// The component name is added to every log entry for easy filtering.
//
// Example:
//
//	sprout.New(
//	    sprout.WithLogger("web", middlewares.RequestIDExtractor()),
//	)
func WithLogger(component string, extractors ...ContextExtractor) Option {
	return internal.WithLogger(component, extractors...)
}

// WithCustomLogger sets a fully custom logger.
func WithCustomLogger(l *slog.Logger) Option {
	return internal.WithCustomLogger(l)
}

// Health check options

// WithLivenessPath sets a custom liveness endpoint path.
// Defaults to "/health/live".
func WithLivenessPath(path string) HealthOption {
	return internal.WithLivenessPath(path)
}

// WithReadinessPath sets a custom readiness endpoint path.
// Defaults to "/health/ready".
func WithReadinessPath(path string) HealthOption {
	return internal.WithReadinessPath(path)
}

// WithReadinessTimeout bounds a readiness probe run.
func WithReadinessTimeout(d time.Duration) HealthOption {
	return internal.WithReadinessTimeout(d)
}

// WithReadinessCheck adds a named readiness check.
// Checks run in parallel during readiness probe.
func WithReadinessCheck(name string, fn health.CheckFunc) HealthOption {
	return internal.WithReadinessCheck(name, fn)
}

// Run options

// Logger sets the server logger. Defaults to the app logger.
func Logger(l *slog.Logger) RunOption {
	return internal.Logger(l)
}

// ShutdownTimeout sets the timeout for graceful shutdown.
// This applies to both the HTTP server and shutdown hooks.
// Defaults to 30 seconds.
func ShutdownTimeout(d time.Duration) RunOption {
	return internal.ShutdownTimeout(d)
}

// StartupHook registers a function called with the bound address after the
// port is open and before requests are served. A failing hook aborts Run.
func StartupHook(fn func(context.Context, net.Addr) error) RunOption {
	return internal.StartupHook(fn)
}

// ShutdownHook registers a cleanup function to run during shutdown.
// Hooks are called in the order they were registered.
// Each hook receives a context with the shutdown timeout.
func ShutdownHook(fn func(context.Context) error) RunOption {
	return internal.ShutdownHook(fn)
}

// Listener serves on an already bound listener.
func Listener(ln net.Listener) RunOption {
	return internal.Listener(ln)
}

// WithContext sets a custom base context for signal handling.
// Useful for testing or when integrating with existing context hierarchies.
func WithContext(ctx context.Context) RunOption {
	return internal.WithContext(ctx)
}

// Errors

// NewHTTPError creates an HTTPError with the given status code and message.
func NewHTTPError(code int, message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.NewHTTPError(code, message, opts...)
}

// WithTitle sets the error title shown by the error page.
func WithTitle(title string) HTTPErrorOption {
	return internal.WithTitle(title)
}

// WithError attaches the underlying cause. It is logged, never shown.
func WithError(err error) HTTPErrorOption {
	return internal.WithError(err)
}

// ErrBadRequest creates a 400 error.
func ErrBadRequest(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrBadRequest(message, opts...)
}

// ErrNotFound creates a 404 error. It renders the manifest NotFound page.
func ErrNotFound(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrNotFound(message, opts...)
}

// ErrMethodNotAllowed creates a 405 error.
func ErrMethodNotAllowed(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrMethodNotAllowed(message, opts...)
}

// ErrInternal creates a 500 error. Its message is never shown to users.
func ErrInternal(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrInternal(message, opts...)
}

// ErrServiceUnavailable creates a 503 error.
func ErrServiceUnavailable(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrServiceUnavailable(message, opts...)
}

// AsHTTPError extracts an HTTPError from err's chain, or returns nil.
func AsHTTPError(err error) *HTTPError {
	return internal.AsHTTPError(err)
}

// StatusCode reports the HTTP status for err, 500 by default.
func StatusCode(err error) int {
	return internal.StatusCode(err)
}

// Extractors

// NewExtractor creates an Extractor that tries the given sources in order.
func NewExtractor(sources ...ExtractorSource) Extractor {
	return internal.NewExtractor(sources...)
}

// FromHeader returns a source that reads a request header.
func FromHeader(name string) ExtractorSource {
	return internal.FromHeader(name)
}

// FromQuery returns a source that reads a query parameter.
func FromQuery(name string) ExtractorSource {
	return internal.FromQuery(name)
}

// FromParam returns a source that reads a route parameter.
func FromParam(name string) ExtractorSource {
	return internal.FromParam(name)
}

// Typed helpers

// Scalar lists the types Param, Query and QueryDefault parse into.
type Scalar = internal.Scalar

// Param retrieves a typed route parameter.
// Returns the zero value if the parameter is missing or cannot be parsed.
//
// Example:
//
//	page := sprout.Param[int](c, "page")
func Param[T Scalar](c Context, name string) T {
	return internal.Param[T](c, name)
}

// Query retrieves a typed query parameter.
func Query[T Scalar](c Context, name string) T {
	return internal.Query[T](c, name)
}

// QueryDefault retrieves a typed query parameter with a default value.
func QueryDefault[T Scalar](c Context, name string, defaultValue T) T {
	return internal.QueryDefault(c, name, defaultValue)
}

// ContextValue returns the value stored under key with c.Set.
func ContextValue[T any](c Context, key any) T {
	return internal.ContextValue[T](c, key)
}
