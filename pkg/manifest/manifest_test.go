package manifest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sprout/pkg/manifest"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		pattern string
		params  []manifest.Param
	}{
		{name: "root index", file: "index", pattern: "/"},
		{name: "static page", file: "about", pattern: "/about"},
		{name: "nested index", file: "blog/index", pattern: "/blog"},
		{name: "extension stripped", file: "about.templ", pattern: "/about"},
		{name: "leading slash", file: "/contact", pattern: "/contact"},
		{
			name:    "dynamic segment",
			file:    "greet/[name]",
			pattern: "/greet/{name}",
			params:  []manifest.Param{{Name: "name"}},
		},
		{
			name:    "catch all",
			file:    "docs/[...path]",
			pattern: "/docs/*",
			params:  []manifest.Param{{Name: "path", CatchAll: true}},
		},
		{name: "route group", file: "(marketing)/team", pattern: "/team"},
		{name: "group index", file: "(marketing)/index", pattern: "/"},
		{name: "index inside path", file: "index/about", pattern: "/index/about"},
		{
			name:    "two params",
			file:    "users/[id]/posts/[post_id]",
			pattern: "/users/{id}/posts/{post_id}",
			params:  []manifest.Param{{Name: "id"}, {Name: "post_id"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, err := manifest.Parse(tt.file)
			require.NoError(t, err)
			assert.Equal(t, tt.pattern, e.Pattern)
			assert.Equal(t, tt.params, e.Params)
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		file string
		want error
	}{
		{name: "empty", file: "", want: manifest.ErrInvalidFile},
		{name: "only slashes", file: "///", want: manifest.ErrInvalidFile},
		{name: "double slash", file: "blog//post", want: manifest.ErrInvalidFile},
		{name: "parent traversal", file: "../secret", want: manifest.ErrInvalidFile},
		{name: "catch all not last", file: "[...rest]/edit", want: manifest.ErrInvalidFile},
		{name: "empty param", file: "users/[]", want: manifest.ErrInvalidFile},
		{name: "param starting with digit", file: "users/[1id]", want: manifest.ErrInvalidFile},
		{name: "repeated param", file: "[id]/[id]", want: manifest.ErrInvalidFile},
		{name: "bad static char", file: "hello world", want: manifest.ErrInvalidFile},
		{name: "query char", file: "search?q", want: manifest.ErrInvalidFile},
		{name: "group as leaf", file: "(marketing)", want: manifest.ErrInvalidFile},
		{name: "empty group", file: "()/about", want: manifest.ErrInvalidFile},
		{name: "reserved app", file: "_app", want: manifest.ErrReserved},
		{name: "reserved nested", file: "blog/_middleware", want: manifest.ErrReserved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := manifest.Parse(tt.file)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParamKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "name", manifest.Param{Name: "name"}.Key())
	assert.Equal(t, "*", manifest.Param{Name: "rest", CatchAll: true}.Key())
}

func TestCompile(t *testing.T) {
	t.Parallel()

	t.Run("orders static before dynamic before catch all", func(t *testing.T) {
		t.Parallel()

		entries, err := manifest.Compile([]string{
			"docs/[...path]",
			"greet/[name]",
			"docs/[slug]",
			"docs/index",
			"about",
			"index",
			"greet/world",
		})
		require.NoError(t, err)

		patterns := make([]string, 0, len(entries))
		for _, e := range entries {
			patterns = append(patterns, e.Pattern)
		}
		assert.Equal(t, []string{
			"/",
			"/about",
			"/docs",
			"/docs/{slug}",
			"/docs/*",
			"/greet/world",
			"/greet/{name}",
		}, patterns)
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		t.Parallel()

		_, err := manifest.Compile([]string{"blog", "blog/index"})
		require.ErrorIs(t, err, manifest.ErrDuplicate)
	})

	t.Run("reports every problem", func(t *testing.T) {
		t.Parallel()

		_, err := manifest.Compile([]string{"_404", "a//b", "ok"})
		require.ErrorIs(t, err, manifest.ErrReserved)
		require.ErrorIs(t, err, manifest.ErrInvalidFile)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		entries, err := manifest.Compile(nil)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestIsReserved(t *testing.T) {
	t.Parallel()

	assert.True(t, manifest.IsReserved("_app"))
	assert.True(t, manifest.IsReserved("/_404"))
	assert.True(t, manifest.IsReserved("_500"))
	assert.False(t, manifest.IsReserved("_middleware"))
	assert.False(t, manifest.IsReserved("about"))
}

func TestTitle(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"index":           "Home",
		"(group)/index":   "Home",
		"about":           "About",
		"greet/[name]":    "Greet",
		"blog/my-post":    "My Post",
		"docs/[...path]":  "Docs",
		"api/random_joke": "Random Joke",
		"about.templ":     "About",
	}

	for file, want := range tests {
		assert.Equal(t, want, manifest.Title(file), file)
	}
}
