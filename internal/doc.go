// Package internal provides the core types and implementation for the sprout framework.
//
// This package is internal and should not be used directly. Import
// "github.com/dmitrymomot/sprout" instead, which re-exports the public API.
//
// # Core Types
//
//   - App: Orchestrates routing, page rendering and graceful shutdown
//   - Manifest: Maps route files to pages, handlers, the layout and error pages
//   - Context: Request/response access and rendering helpers
//   - Router: Interface handlers use to declare routes outside the manifest
//   - Handler, HandlerFunc, Middleware, ErrorHandler
//   - Component: Anything that renders HTML; templ components satisfy it
//
// # Context as context.Context
//
// Context embeds context.Context, so it can be passed directly to any function
// that expects a standard library context:
//
//	func loadDoc(c sprout.Context) error {
//	    doc, err := store.Load(c, c.Param("slug"))
//	    if err != nil {
//	        return err
//	    }
//	    return c.RenderPage(http.StatusOK, doc)
//	}
//
// # Render Pipeline
//
// RenderPage renders the page component into a buffer, runs every plugin over
// the rendered HTML, and renders the layout with the collected styles as its
// head. The response is written only after all steps succeed, so any failure
// still reaches the error page with a clean response.
//
// # Error Handling
//
// A handler error is resolved in this order: the custom ErrorHandler, the
// manifest NotFound page (for 404) or Error page, and finally plain text.
// Messages of 4xx HTTPErrors are shown to users; 5xx responses always show
// DefaultErrorMessage.
package internal
