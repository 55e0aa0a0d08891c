package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format selects the output encoding.
type Format string

const (
	// FormatJSON writes one JSON object per record. Used in production.
	FormatJSON Format = "json"
	// FormatPretty writes colourised, human readable lines. Used in development.
	FormatPretty Format = "pretty"
	// FormatText writes logfmt style key=value lines.
	FormatText Format = "text"
)

// Options configures the base handler.
type Options struct {
	Output    io.Writer
	Format    Format
	Level     slog.Level
	AddSource bool
	NoColor   bool
}

func (o Options) output() io.Writer {
	if o.Output == nil {
		return os.Stdout
	}
	return o.Output
}

// ParseLevel converts debug, info, warn (or warning) and error to a slog level.
// Empty input is info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("logger: unknown level %q", s)
	}
}

// ParseFormat converts json, pretty and text to a Format. Empty input is json.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatJSON, nil
	case FormatJSON, FormatPretty, FormatText:
		return f, nil
	default:
		return FormatJSON, fmt.Errorf("logger: unknown format %q", s)
	}
}
