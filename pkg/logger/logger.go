package logger

import (
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

// New creates a logger writing in opts.Format with optional context extractors.
func New(opts Options, extractors ...ContextExtractor) *slog.Logger {
	return slog.New(WithContextAttrs(newBaseHandler(opts), extractors...))
}

func newBaseHandler(opts Options) slog.Handler {
	w := opts.output()

	switch opts.Format {
	case FormatPretty:
		return tint.NewHandler(w, &tint.Options{
			Level:      opts.Level,
			AddSource:  opts.AddSource,
			NoColor:    opts.NoColor,
			TimeFormat: "15:04:05.000",
		})
	case FormatText:
		return slog.NewTextHandler(w, &slog.HandlerOptions{
			Level:     opts.Level,
			AddSource: opts.AddSource,
		})
	default:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     opts.Level,
			AddSource: opts.AddSource,
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
					return slog.String(slog.TimeKey, a.Value.Time().UTC().Format(time.RFC3339Nano))
				}
				return a
			},
		})
	}
}
