package logger

import (
	"context"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

const sentryFlushTimeout = 2 * time.Second

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string
	Environment string
	Release     string
	// MinLevel is the lowest level forwarded to Sentry. Errors always become issues.
	MinLevel slog.Level
}

// NewWithSentry creates a logger that writes to opts.Output and, when DSN is
// set, forwards warn and error records to Sentry.
// The returned flush function waits for buffered events and is safe to call
// when Sentry is disabled.
func NewWithSentry(cfg SentryConfig, opts Options, extractors ...ContextExtractor) (*slog.Logger, func()) {
	base := newBaseHandler(opts)
	noop := func() {}

	if cfg.DSN == "" {
		return slog.New(WithContextAttrs(base, extractors...)), noop
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		Release:     cfg.Release,
		EnableLogs:  true,
	}); err != nil {
		slog.New(base).Error("sentry disabled", slog.String("error", err.Error()))
		return slog.New(WithContextAttrs(base, extractors...)), noop
	}

	sentryHandler := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   sentryLogLevels(cfg.MinLevel),
	}.NewSentryHandler(context.Background())

	log := slog.New(WithContextAttrs(fanout{base, sentryHandler}, extractors...))
	return log, func() { sentry.Flush(sentryFlushTimeout) }
}

func sentryLogLevels(floor slog.Level) []slog.Level {
	var out []slog.Level
	for _, l := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if l >= floor {
			out = append(out, l)
		}
	}
	if len(out) == 0 {
		out = []slog.Level{slog.LevelError}
	}
	return out
}
