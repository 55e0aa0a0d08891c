package middlewares

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/sprout/internal"
	"github.com/dmitrymomot/sprout/pkg/logger"
)

type requestIDKey struct{}

// DefaultRequestIDHeaders lists the inbound headers RequestID trusts, in order.
var DefaultRequestIDHeaders = []string{"X-Request-ID", "X-Correlation-ID"}

// Inbound IDs longer than this are replaced with a generated one.
const maxRequestIDLength = 128

// RequestIDConfig configures RequestID.
type RequestIDConfig struct {
	Generator      func() string // defaults to uuid.NewString
	ResponseHeader string        // empty disables echoing
	Headers        []string
}

// RequestIDOption configures RequestIDConfig.
type RequestIDOption func(*RequestIDConfig)

// WithRequestIDHeaders replaces the inbound headers to read the ID from.
func WithRequestIDHeaders(headers ...string) RequestIDOption {
	return func(cfg *RequestIDConfig) { cfg.Headers = headers }
}

// WithRequestIDGenerator sets the function producing new IDs.
func WithRequestIDGenerator(gen func() string) RequestIDOption {
	return func(cfg *RequestIDConfig) {
		if gen != nil {
			cfg.Generator = gen
		}
	}
}

// WithRequestIDResponseHeader sets the header the ID is echoed in.
func WithRequestIDResponseHeader(header string) RequestIDOption {
	return func(cfg *RequestIDConfig) { cfg.ResponseHeader = header }
}

// RequestID tags every request with an ID. A reasonably sized inbound ID is
// reused; otherwise a new one is generated. The ID is readable with
// GetRequestID and echoed in the response header.
func RequestID(opts ...RequestIDOption) internal.Middleware {
	cfg := RequestIDConfig{
		Generator:      uuid.NewString,
		ResponseHeader: "X-Request-ID",
		Headers:        DefaultRequestIDHeaders,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	sources := make([]internal.ExtractorSource, len(cfg.Headers))
	for i, h := range cfg.Headers {
		sources[i] = internal.FromHeader(h)
	}
	inbound := internal.NewExtractor(sources...)

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			id, ok := inbound.Extract(c)
			if !ok || len(id) > maxRequestIDLength {
				id = cfg.Generator()
			}
			c.Set(requestIDKey{}, id)
			if cfg.ResponseHeader != "" {
				c.SetHeader(cfg.ResponseHeader, id)
			}
			return next(c)
		}
	}
}

// GetRequestID returns the request ID stored in ctx, or "".
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// RequestIDExtractor adds a request_id attribute to log records whose context
// carries an ID.
func RequestIDExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		id := GetRequestID(ctx)
		if id == "" {
			return slog.Attr{}, false
		}
		return slog.String("request_id", id), true
	}
}
