package main

import (
	"io"
	"log/slog"

	"github.com/dmitrymomot/sprout/config"
	"github.com/dmitrymomot/sprout/middlewares"
	"github.com/dmitrymomot/sprout/pkg/logger"
)

// newLogger builds the application logger. Development defaults to the
// pretty format, everything else to JSON. The returned func flushes Sentry.
func newLogger(cfg *config.Config, w io.Writer) (*slog.Logger, func()) {
	level, _ := logger.ParseLevel(cfg.LogLevel)

	format, _ := logger.ParseFormat(cfg.LogFormat)
	if cfg.LogFormat == "" && cfg.IsDevelopment() {
		format = logger.FormatPretty
	}

	log, flush := logger.NewWithSentry(
		logger.SentryConfig{
			DSN:         cfg.SentryDSN,
			Environment: cfg.Env,
			Release:     "sprout@" + version,
			MinLevel:    slog.LevelWarn,
		},
		logger.Options{
			Output: w,
			Format: format,
			Level:  level,
		},
		middlewares.RequestIDExtractor(),
	)
	return log, flush
}
