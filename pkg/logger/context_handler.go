package logger

import (
	"context"
	"log/slog"
)

// ContextExtractor pulls one attribute out of a record's context.
// ok=false means the context carries nothing for this extractor.
type ContextExtractor func(ctx context.Context) (attr slog.Attr, ok bool)

// WithContextAttrs wraps next so every record gets the attributes the
// extractors find in its context. Nil extractors are ignored; with none left
// next is returned unchanged.
func WithContextAttrs(next slog.Handler, extractors ...ContextExtractor) slog.Handler {
	h := &contextHandler{next: next}
	for _, ex := range extractors {
		if ex != nil {
			h.extractors = append(h.extractors, ex)
		}
	}
	if len(h.extractors) == 0 {
		return next
	}
	return h
}

type contextHandler struct {
	next       slog.Handler
	extractors []ContextExtractor
}

func (h *contextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *contextHandler) Handle(ctx context.Context, rec slog.Record) error {
	if ctx == nil {
		return h.next.Handle(ctx, rec)
	}
	for _, ex := range h.extractors {
		attr, ok := ex(ctx)
		if ok {
			rec.AddAttrs(attr)
		}
	}
	return h.next.Handle(ctx, rec)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.derive(h.next.WithAttrs(attrs))
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return h.derive(h.next.WithGroup(name))
}

func (h *contextHandler) derive(next slog.Handler) *contextHandler {
	return &contextHandler{next: next, extractors: h.extractors}
}
