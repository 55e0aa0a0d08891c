package internal

import (
	"context"
	"io"
)

// Handler declares routes on a router.
//
// Example:
//
//	type FeedHandler struct {
//	    docs *content.Store
//	}
//
//	func (h *FeedHandler) Routes(r sprout.Router) {
//	    r.GET("/feed.json", h.feed)
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc is the signature for route handlers.
// Returning a non-nil error hands the request to the error handler,
// which renders the error page unless a response was already written.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc to add cross-cutting concerns.
//
// Example:
//
//	func NoIndex(next sprout.HandlerFunc) sprout.HandlerFunc {
//	    return func(c sprout.Context) error {
//	        c.SetHeader("X-Robots-Tag", "noindex")
//	        return next(c)
//	    }
//	}
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler handles errors returned from handlers.
// If it returns an error without writing a response, the default error
// page is rendered.
type ErrorHandler func(Context, error) error

// Component is anything that renders HTML. templ components satisfy it.
type Component interface {
	Render(ctx context.Context, w io.Writer) error
}

// ComponentFunc adapts a function to Component.
type ComponentFunc func(ctx context.Context, w io.Writer) error

// Render implements Component.
func (f ComponentFunc) Render(ctx context.Context, w io.Writer) error {
	return f(ctx, w)
}
