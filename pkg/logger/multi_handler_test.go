package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type failingHandler struct{}

func (failingHandler) Enabled(context.Context, slog.Level) bool  { return true }
func (failingHandler) Handle(context.Context, slog.Record) error { return errors.New("write failed") }
func (h failingHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h failingHandler) WithGroup(string) slog.Handler           { return h }

func TestFanout(t *testing.T) {
	t.Parallel()

	t.Run("delivers to every enabled handler despite failures", func(t *testing.T) {
		t.Parallel()

		var info, errOnly bytes.Buffer
		h := fanout{
			failingHandler{},
			slog.NewTextHandler(&info, &slog.HandlerOptions{Level: slog.LevelInfo}),
			slog.NewTextHandler(&errOnly, &slog.HandlerOptions{Level: slog.LevelError}),
		}

		rec := slog.NewRecord(time.Now(), slog.LevelInfo, "hello", 0)
		err := h.Handle(context.Background(), rec)
		require.Error(t, err)
		require.Contains(t, info.String(), "hello")
		require.Zero(t, errOnly.Len())
	})

	t.Run("enabled if any handler is", func(t *testing.T) {
		t.Parallel()

		h := fanout{
			slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}),
			slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelDebug}),
		}
		require.True(t, h.Enabled(context.Background(), slog.LevelDebug))
		require.False(t, fanout{}.Enabled(context.Background(), slog.LevelError))
	})

	t.Run("attrs reach all handlers", func(t *testing.T) {
		t.Parallel()

		var a, b bytes.Buffer
		h := fanout{slog.NewTextHandler(&a, nil), slog.NewTextHandler(&b, nil)}
		slog.New(h).With("k", "v").Info("x")
		require.Contains(t, a.String(), "k=v")
		require.Contains(t, b.String(), "k=v")
	})
}

func TestSentryLogLevels(t *testing.T) {
	t.Parallel()

	require.Equal(t, []slog.Level{slog.LevelWarn, slog.LevelError}, sentryLogLevels(slog.LevelWarn))
	require.Equal(t, []slog.Level{slog.LevelError}, sentryLogLevels(slog.LevelError))
	require.Equal(t, []slog.Level{slog.LevelError}, sentryLogLevels(slog.Level(100)))
}
