package middlewares_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sprout/internal"
	"github.com/dmitrymomot/sprout/middlewares"
	"github.com/dmitrymomot/sprout/pkg/logger"
)

func TestMiddlewareStack(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	log := logger.New(logger.Options{Output: &logs}, middlewares.RequestIDExtractor())

	page := func(s string) internal.PageFunc {
		return func(internal.PageProps) internal.Component {
			return internal.ComponentFunc(func(_ context.Context, w io.Writer) error {
				_, err := io.WriteString(w, s)
				return err
			})
		}
	}

	app := internal.New(
		internal.WithCustomLogger(log),
		internal.WithMiddleware(
			middlewares.RequestID(middlewares.WithRequestIDGenerator(func() string { return "rid-1" })),
			middlewares.Logger(),
			middlewares.Recover(),
			middlewares.Timeout(20*time.Millisecond),
		),
		internal.WithManifest(&internal.Manifest{
			Error: func(p internal.ErrorPageProps) internal.Component {
				return internal.ComponentFunc(func(_ context.Context, w io.Writer) error {
					_, err := fmt.Fprintf(w, "<h1>%d</h1><p>%s</p>", p.Code, p.Message)
					return err
				})
			},
			Routes: []internal.Route{
				{File: "index", Page: page("<p>ok</p>")},
				{File: "greet/[name]", Page: page("<p>hi</p>")},
				{File: "panic", Page: func(internal.PageProps) internal.Component { panic("kaboom") }},
				{File: "slow", Handlers: map[string]internal.HandlerFunc{
					http.MethodGet: func(c internal.Context) error {
						<-c.Done()
						return c.Err()
					},
				}},
			},
		}),
	)

	t.Run("ok", func(t *testing.T) {
		w := httptest.NewRecorder()
		app.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "rid-1", w.Header().Get("X-Request-ID"))
	})

	t.Run("panic renders the error page", func(t *testing.T) {
		w := httptest.NewRecorder()
		app.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

		require.Equal(t, http.StatusInternalServerError, w.Code)
		require.Equal(t, "<h1>500</h1><p>"+internal.DefaultErrorMessage+"</p>", w.Body.String())
	})

	t.Run("timeout renders the error page", func(t *testing.T) {
		w := httptest.NewRecorder()
		app.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/slow", nil))

		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		require.Equal(t, "<h1>503</h1><p>"+internal.DefaultErrorMessage+"</p>", w.Body.String())
	})

	t.Run("dynamic route", func(t *testing.T) {
		w := httptest.NewRecorder()
		app.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/greet/ada", nil))

		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("access log carries the router pattern", func(t *testing.T) {
		var found bool
		for line := range bytes.SplitSeq(bytes.TrimSpace(logs.Bytes()), []byte("\n")) {
			var e map[string]any
			require.NoError(t, json.Unmarshal(line, &e))
			if e["msg"] == "request" && e["path"] == "/greet/ada" {
				found = true
				require.Equal(t, "/greet/{name}", e["pattern"])
				require.NotContains(t, e, "route")
			}
		}
		require.True(t, found, "no access log for /greet/ada: %s", logs.String())
	})

	t.Run("access log carries the request id", func(t *testing.T) {
		var found bool
		for line := range bytes.SplitSeq(bytes.TrimSpace(logs.Bytes()), []byte("\n")) {
			var e map[string]any
			require.NoError(t, json.Unmarshal(line, &e))
			if e["msg"] == "request" && e["path"] == "/" {
				found = true
				require.Equal(t, "rid-1", e["request_id"])
				require.EqualValues(t, 200, e["status"])
			}
		}
		require.True(t, found, "no access log for /: %s", logs.String())
	})
}
