package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// Context provides request/response access and helper methods.
// It also implements context.Context by delegating to the request context.
type Context interface {
	context.Context

	// Request returns the underlying *http.Request.
	Request() *http.Request

	// Response returns the response writer.
	Response() http.ResponseWriter

	// ResponseWriter returns the writer with status and size tracking.
	ResponseWriter() *ResponseWriter

	// Context returns the request context.
	Context() context.Context

	// SetContext replaces the request context, e.g. to add a deadline.
	// Handlers further down the chain observe the new context.
	SetContext(ctx context.Context)

	// Param returns a URL parameter by name. Catch-all segments of manifest
	// routes are available under their declared name.
	Param(name string) string

	// Params returns all dynamic segment values of the current manifest route.
	Params() map[string]string

	// Query returns a query parameter by name.
	Query(name string) string

	// QueryDefault returns a query parameter or defaultValue if it is empty.
	QueryDefault(name, defaultValue string) string

	// Header returns a request header by name.
	Header(name string) string

	// SetHeader sets a response header.
	SetHeader(name, value string)

	// JSON writes v as JSON with the given status code.
	JSON(code int, v any) error

	// String writes plain text with the given status code.
	String(code int, s string) error

	// NoContent writes only the status code.
	NoContent(code int) error

	// Redirect redirects to url with the given status code.
	Redirect(code int, url string) error

	// Error creates an HTTPError for returning from a handler.
	Error(code int, message string, opts ...HTTPErrorOption) *HTTPError

	// Render renders a component without the layout.
	// Nothing is written if rendering fails.
	Render(code int, component Component) error

	// RenderPage renders the page of the current manifest route with data,
	// runs plugins and wraps the result in the layout.
	// Nothing is written if any step fails.
	RenderPage(code int, data any) error

	// SetTitle overrides the document title for RenderPage.
	SetTitle(title string)

	// Route returns the route file of the current manifest route, or "".
	Route() string

	// Written reports whether the response has been started.
	Written() bool

	// Logger returns the application logger.
	Logger() *slog.Logger

	LogDebug(msg string, attrs ...any)
	LogInfo(msg string, attrs ...any)
	LogWarn(msg string, attrs ...any)
	LogError(msg string, attrs ...any)

	// Set stores a value in the request context.
	Set(key any, value any)

	// Get retrieves a value from the request context.
	Get(key any) any
}

type requestContext struct {
	request  *http.Request
	response *ResponseWriter
	app      *App
	page     *pageRoute
	title    string
}

func newContext(w http.ResponseWriter, r *http.Request, app *App, page *pageRoute) *requestContext {
	return &requestContext{
		request:  r,
		response: NewResponseWriter(w),
		app:      app,
		page:     page,
	}
}

func (c *requestContext) Request() *http.Request {
	return c.request
}

func (c *requestContext) Response() http.ResponseWriter {
	return c.response
}

func (c *requestContext) ResponseWriter() *ResponseWriter {
	return c.response
}

func (c *requestContext) Context() context.Context {
	return c.request.Context()
}

func (c *requestContext) SetContext(ctx context.Context) {
	if ctx != nil {
		c.request = c.request.WithContext(ctx)
	}
}

func (c *requestContext) Deadline() (time.Time, bool) {
	return c.request.Context().Deadline()
}

func (c *requestContext) Done() <-chan struct{} {
	return c.request.Context().Done()
}

func (c *requestContext) Err() error {
	return c.request.Context().Err()
}

func (c *requestContext) Value(key any) any {
	return c.request.Context().Value(key)
}

func (c *requestContext) Param(name string) string {
	if c.page != nil {
		for _, p := range c.page.entry.Params {
			if p.Name == name {
				return chi.URLParam(c.request, p.Key())
			}
		}
	}
	return chi.URLParam(c.request, name)
}

func (c *requestContext) Params() map[string]string {
	if c.page == nil || len(c.page.entry.Params) == 0 {
		return map[string]string{}
	}
	out := make(map[string]string, len(c.page.entry.Params))
	for _, p := range c.page.entry.Params {
		out[p.Name] = chi.URLParam(c.request, p.Key())
	}
	return out
}

func (c *requestContext) Query(name string) string {
	return c.request.URL.Query().Get(name)
}

func (c *requestContext) QueryDefault(name, defaultValue string) string {
	if v := c.request.URL.Query().Get(name); v != "" {
		return v
	}
	return defaultValue
}

func (c *requestContext) Header(name string) string {
	return c.request.Header.Get(name)
}

func (c *requestContext) SetHeader(name, value string) {
	c.response.Header().Set(name, value)
}

func (c *requestContext) JSON(code int, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	c.response.Header().Set("Content-Type", "application/json; charset=utf-8")
	c.response.WriteHeader(code)
	_, err = c.response.Write(append(body, '\n'))
	return err
}

func (c *requestContext) String(code int, s string) error {
	c.response.Header().Set("Content-Type", "text/plain; charset=utf-8")
	c.response.WriteHeader(code)
	_, err := c.response.Write([]byte(s))
	return err
}

func (c *requestContext) NoContent(code int) error {
	c.response.WriteHeader(code)
	return nil
}

func (c *requestContext) Redirect(code int, url string) error {
	http.Redirect(c.response, c.request, url, code)
	return nil
}

func (c *requestContext) Error(code int, message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(code, message, opts...)
}

func (c *requestContext) Render(code int, component Component) error {
	var buf bytes.Buffer
	if err := component.Render(c.request.Context(), &buf); err != nil {
		return fmt.Errorf("render component: %w", err)
	}
	return c.writeHTML(code, buf.Bytes())
}

func (c *requestContext) RenderPage(code int, data any) error {
	if c.page == nil || c.page.route.Page == nil {
		return ErrNoPage
	}

	props := PageProps{
		URL:    c.request.URL,
		Route:  c.page.entry.File,
		Params: c.Params(),
		Data:   data,
	}

	title := c.title
	if title == "" {
		title = c.page.title
	}

	doc, err := c.app.renderDocument(c.request.Context(), documentSpec{
		route: c.page.entry.File,
		title: title,
		body:  c.page.route.Page(props),
	})
	if err != nil {
		return err
	}
	return c.writeHTML(code, doc)
}

func (c *requestContext) SetTitle(title string) {
	c.title = title
}

func (c *requestContext) Route() string {
	if c.page == nil {
		return ""
	}
	return c.page.entry.File
}

func (c *requestContext) writeHTML(code int, body []byte) error {
	c.response.Header().Set("Content-Type", "text/html; charset=utf-8")
	c.response.WriteHeader(code)
	_, err := c.response.Write(body)
	return err
}

func (c *requestContext) Written() bool {
	return c.response.Written()
}

func (c *requestContext) Logger() *slog.Logger {
	return c.app.logger
}

func (c *requestContext) LogDebug(msg string, attrs ...any) {
	c.app.logger.DebugContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogInfo(msg string, attrs ...any) {
	c.app.logger.InfoContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogWarn(msg string, attrs ...any) {
	c.app.logger.WarnContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogError(msg string, attrs ...any) {
	c.app.logger.ErrorContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) Set(key, value any) {
	c.SetContext(context.WithValue(c.request.Context(), key, value))
}

func (c *requestContext) Get(key any) any {
	return c.request.Context().Value(key)
}
