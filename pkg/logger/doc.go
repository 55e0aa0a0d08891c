// Package logger builds the slog loggers used by sprout.
//
// Three output formats are available. [FormatJSON] is meant for production,
// [FormatPretty] is a colourised tint handler for local development and
// [FormatText] writes key=value lines.
//
//	log := logger.New(logger.Options{
//	    Format: logger.FormatPretty,
//	    Level:  slog.LevelDebug,
//	}, middlewares.RequestIDExtractor())
//
// # Context Extractors
//
// A [ContextExtractor] pulls one attribute out of the context passed to the
// *Context logging methods. Extractors run on every record, so request scoped
// values such as the request id are always current:
//
//	log.InfoContext(r.Context(), "page rendered", slog.String("route", "/docs/{slug}"))
//	// {"time":"...","level":"INFO","msg":"page rendered","route":"/docs/{slug}","request_id":"..."}
//
// # Sentry
//
// [NewWithSentry] additionally forwards records to Sentry. Errors become
// issues, records at or above MinLevel are stored as logs. With an empty DSN
// it behaves like [New]. Call the returned flush function before exit:
//
//	log, flush := logger.NewWithSentry(logger.SentryConfig{
//	    DSN:         os.Getenv("SENTRY_DSN"),
//	    Environment: "production",
//	    MinLevel:    slog.LevelWarn,
//	}, logger.Options{Format: logger.FormatJSON})
//	defer flush()
//
// [NewNope] discards everything and is the default for apps without a logger.
package logger
