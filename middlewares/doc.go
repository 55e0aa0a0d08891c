// Package middlewares provides HTTP middleware for sprout applications.
//
// # Request ID
//
// RequestID assigns a unique ID to each request for tracing and debugging.
// It reuses an inbound X-Request-ID or X-Correlation-ID header, otherwise it
// generates a UUID.
//
// Use RequestIDExtractor() with WithLogger for automatic request_id in all logs:
//
//	app := sprout.New(
//	    sprout.WithLogger("web", middlewares.RequestIDExtractor()),
//	    sprout.WithMiddleware(
//	        middlewares.RequestID(),
//	    ),
//	)
//
// # Logger
//
// Logger writes one access log record per request with method, path, route,
// status, size and duration.
//
// # Recover
//
// Recover catches panics in handlers and page components and converts them
// to *PanicError, which renders the error page with status 500.
//
// # Timeout
//
// Timeout puts a deadline on the request context. Handlers see it through
// the Context; a request that runs out of time renders the error page with
// status 503.
//
// # Recommended Middleware Order
//
//	sprout.WithMiddleware(
//	    middlewares.RequestID(),            // First: assign ID for all subsequent logging
//	    middlewares.Logger(),               // Second: sees the final status
//	    middlewares.Recover(),              // Third: catch panics from timeout and handlers
//	    middlewares.Timeout(5*time.Second), // Fourth: enforce timeout
//	)
package middlewares
