package routes_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sprout"
	"github.com/dmitrymomot/sprout/pkg/content"
	"github.com/dmitrymomot/sprout/pkg/style"
	"github.com/dmitrymomot/sprout/routes"
)

func newSite(t *testing.T) http.Handler {
	t.Helper()
	store := content.NewStore(routes.Docs, content.WithDir(routes.DocsDir))
	app := sprout.New(
		sprout.WithManifest(routes.Manifest(store)),
		sprout.WithPlugins(style.New(style.WithPreflight())),
	)
	return app.Router()
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestPages(t *testing.T) {
	t.Parallel()

	site := newSite(t)

	tests := []struct {
		name     string
		target   string
		status   int
		contains []string
	}{
		{
			name:   "home",
			target: "/",
			status: http.StatusOK,
			contains: []string{
				`<meta charset="utf-8">`,
				`<meta name="viewport" content="width=device-width, initial-scale=1.0">`,
				`<title>Home | sprout</title>`,
				`<style id="` + style.StyleID + `">`,
				"Welcome to sprout",
			},
		},
		{
			name:     "greet",
			target:   "/greet/ada",
			status:   http.StatusOK,
			contains: []string{`<title>Greet | sprout</title>`, "Hello, ada!"},
		},
		{
			name:     "docs index",
			target:   "/docs",
			status:   http.StatusOK,
			contains: []string{`<title>Docs | sprout</title>`, `href="/docs/getting-started"`, `href="/docs/styling"`},
		},
		{
			name:     "doc",
			target:   "/docs/routing",
			status:   http.StatusOK,
			contains: []string{`<title>Routing | sprout</title>`, "<table>", "How route files map to URLs."},
		},
		{
			name:     "missing doc",
			target:   "/docs/nope",
			status:   http.StatusNotFound,
			contains: []string{"Page not found", "There is no document at this address."},
		},
		{
			name:     "invalid slug",
			target:   "/docs/Not_A_Slug",
			status:   http.StatusNotFound,
			contains: []string{"Page not found"},
		},
		{
			name:     "unknown route",
			target:   "/nowhere",
			status:   http.StatusNotFound,
			contains: []string{"Page not found", "/nowhere"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := get(t, site, tt.target)
			require.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
			for _, s := range tt.contains {
				assert.Contains(t, rec.Body.String(), s)
			}
		})
	}
}

func TestDocsOrder(t *testing.T) {
	t.Parallel()

	body := get(t, newSite(t), "/docs").Body.String()

	first := strings.Index(body, "/docs/getting-started")
	second := strings.Index(body, "/docs/routing")
	third := strings.Index(body, "/docs/styling")
	require.NotEqual(t, -1, first)
	assert.Less(t, first, second)
	assert.Less(t, second, third)
}

func TestJoke(t *testing.T) {
	t.Parallel()

	site := newSite(t)

	t.Run("by id", func(t *testing.T) {
		t.Parallel()

		rec := get(t, site, "/api/joke?id=1")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

		var j routes.Joke
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &j))
		assert.Equal(t, 1, j.ID)
		assert.NotEmpty(t, j.Setup)
		assert.NotEmpty(t, j.Punchline)
	})

	t.Run("random", func(t *testing.T) {
		t.Parallel()

		rec := get(t, site, "/api/joke")
		require.Equal(t, http.StatusOK, rec.Code)

		var j routes.Joke
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &j))
		assert.NotEmpty(t, j.Setup)
	})

	t.Run("invalid id", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, http.StatusBadRequest, get(t, site, "/api/joke?id=x").Code)
		assert.Equal(t, http.StatusNotFound, get(t, site, "/api/joke?id=99").Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		site.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/joke", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestManifestRoutes(t *testing.T) {
	t.Parallel()

	store := content.NewStore(routes.Docs, content.WithDir(routes.DocsDir))
	app := sprout.New(sprout.WithManifest(routes.Manifest(store)))

	var patterns []string
	kinds := map[string]string{}
	for _, r := range app.Routes() {
		patterns = append(patterns, r.Pattern)
		kinds[r.Pattern] = r.Kind
	}

	assert.Equal(t, []string{"/", "/api/joke", "/docs", "/docs/{slug}", "/greet/{name}"}, patterns)
	assert.Equal(t, sprout.KindAPI, kinds["/api/joke"])
	assert.Equal(t, sprout.KindPage, kinds["/docs/{slug}"])
}
