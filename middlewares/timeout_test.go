package middlewares_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sprout/internal"
	"github.com/dmitrymomot/sprout/middlewares"
)

func TestTimeout(t *testing.T) {
	t.Parallel()

	t.Run("handler sees the deadline", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		var hasDeadline bool
		err := middlewares.Timeout(time.Second)(func(c internal.Context) error {
			_, hasDeadline = c.Deadline()
			return nil
		})(ctx)

		require.NoError(t, err)
		require.True(t, hasDeadline)
	})

	t.Run("returns TimeoutError when the deadline passes", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		err := middlewares.Timeout(10 * time.Millisecond)(func(c internal.Context) error {
			<-c.Done()
			return c.Err()
		})(ctx)

		te, ok := middlewares.AsTimeoutError(err)
		require.True(t, ok)
		require.Equal(t, 10*time.Millisecond, te.Duration)
		require.ErrorIs(t, err, context.DeadlineExceeded)

		entries := ctx.entries()
		require.Len(t, entries, 1)
		require.Equal(t, "request timeout", entries[0]["msg"])
	})

	t.Run("keeps a response written in time", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		ctx := newTestContext(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		err := middlewares.Timeout(10 * time.Millisecond)(func(c internal.Context) error {
			if err := c.String(http.StatusOK, "fast"); err != nil {
				return err
			}
			<-c.Done()
			return nil
		})(ctx)

		require.NoError(t, err)
		require.Equal(t, "fast", rec.Body.String())
	})

	t.Run("passes handler errors through", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		sentinel := errors.New("handler error")
		err := middlewares.Timeout(time.Second)(func(c internal.Context) error {
			return sentinel
		})(ctx)

		require.ErrorIs(t, err, sentinel)
		require.False(t, middlewares.IsTimeoutError(err))
	})

	t.Run("client cancellation is not a timeout", func(t *testing.T) {
		t.Parallel()

		parent, cancel := context.WithCancel(context.Background())
		req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(parent)
		ctx := newTestContext(httptest.NewRecorder(), req)

		err := middlewares.Timeout(time.Second)(func(c internal.Context) error {
			cancel()
			<-c.Done()
			return c.Err()
		})(ctx)

		require.ErrorIs(t, err, context.Canceled)
		require.False(t, middlewares.IsTimeoutError(err))
	})

	t.Run("non-positive timeout uses default", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		var deadline time.Time
		_ = middlewares.Timeout(0)(func(c internal.Context) error {
			deadline, _ = c.Deadline()
			return nil
		})(ctx)

		require.WithinDuration(t, time.Now().Add(middlewares.DefaultTimeout), deadline, time.Second)
	})
}
