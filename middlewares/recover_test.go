package middlewares_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sprout/internal"
	"github.com/dmitrymomot/sprout/middlewares"
)

func TestRecover(t *testing.T) {
	t.Parallel()

	t.Run("recovers from panic and returns PanicError", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		ctx := newTestContext(rec, req)

		handler := middlewares.Recover()(func(c internal.Context) error {
			panic("test panic")
		})

		err := handler(ctx)
		require.Error(t, err)

		pe, ok := middlewares.AsPanicError(err)
		require.True(t, ok)
		require.Equal(t, "test panic", pe.Value)
		require.NotEmpty(t, pe.Stack)

		entries := ctx.entries()
		require.Len(t, entries, 1)
		require.Equal(t, "panic recovered", entries[0]["msg"])
		require.Equal(t, "test panic", entries[0]["panic"])
		require.NotEmpty(t, entries[0]["stack"])
	})

	t.Run("passes through when no panic", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		sentinel := errors.New("handler error")

		err := middlewares.Recover()(func(c internal.Context) error {
			return sentinel
		})(ctx)

		require.ErrorIs(t, err, sentinel)
		require.False(t, middlewares.IsPanicError(err))
		require.Empty(t, ctx.entries())
	})

	t.Run("error panic values are unwrappable", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		cause := errors.New("nil map write")

		err := middlewares.Recover()(func(c internal.Context) error {
			panic(cause)
		})(ctx)

		require.ErrorIs(t, err, cause)
	})

	t.Run("re-panics ErrAbortHandler", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		handler := middlewares.Recover()(func(c internal.Context) error {
			panic(http.ErrAbortHandler)
		})

		require.PanicsWithValue(t, http.ErrAbortHandler, func() { _ = handler(ctx) })
	})
}

func TestRecover_Options(t *testing.T) {
	t.Parallel()

	t.Run("stack size bounds the trace", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		err := middlewares.Recover(middlewares.WithRecoverStackSize(64))(func(c internal.Context) error {
			panic("small")
		})(ctx)

		pe, ok := middlewares.AsPanicError(err)
		require.True(t, ok)
		require.NotEmpty(t, pe.Stack)
		require.LessOrEqual(t, len(pe.Stack), 64)
	})

	t.Run("disabled stack", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		err := middlewares.Recover(middlewares.WithRecoverDisablePrintStack())(func(c internal.Context) error {
			panic("quiet")
		})(ctx)

		pe, ok := middlewares.AsPanicError(err)
		require.True(t, ok)
		require.Nil(t, pe.Stack)

		entries := ctx.entries()
		require.Len(t, entries, 1)
		require.NotContains(t, entries[0], "stack")
	})
}
