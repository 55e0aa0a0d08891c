package content_test

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sprout/pkg/cache"
	"github.com/dmitrymomot/sprout/pkg/content"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"docs/routing.md": {Data: []byte(`---
title: Routing
description: How files map to URLs
order: 2
---
# Routing {.text-2xl}

Files under <span class="font-bold">routes</span> become pages.

| file | url |
|------|-----|
| index | / |

<script>alert('xss')</script>
`)},
		"docs/getting-started.md": {Data: []byte(`---
order: 1
---
Run ~~make~~ go run.
`)},
		"docs/secret.md":     {Data: []byte("---\ntitle: Secret\ndraft: true\n---\nhidden\n")},
		"docs/broken.md":     {Data: []byte("---\ntitle: [\n---\n")},
		"docs/Not_A_Slug.md": {Data: []byte("ignored")},
		"docs/notes.txt":     {Data: []byte("ignored")},
		"docs/nested/a.md":   {Data: []byte("ignored")},
	}
}

func TestStore_Load(t *testing.T) {
	t.Parallel()

	s := content.NewStore(testFS(), content.WithDir("docs"))

	t.Run("renders markdown with frontmatter", func(t *testing.T) {
		t.Parallel()

		doc, err := s.Load(context.Background(), "routing")
		require.NoError(t, err)
		require.Equal(t, "routing", doc.Slug)
		require.Equal(t, "Routing", doc.Title)
		require.Equal(t, "How files map to URLs", doc.Description)
		require.Contains(t, doc.HTML, `id="routing"`)
		require.Contains(t, doc.HTML, `class="text-2xl"`)
		require.Contains(t, doc.HTML, `<span class="font-bold">routes</span>`)
		require.Contains(t, doc.HTML, "<table>")
		require.NotContains(t, doc.HTML, "<script")
	})

	t.Run("derives title from slug", func(t *testing.T) {
		t.Parallel()

		doc, err := s.Load(context.Background(), "getting-started")
		require.NoError(t, err)
		require.Equal(t, "Getting Started", doc.Title)
		require.Contains(t, doc.HTML, "<del>make</del>")
	})

	t.Run("returns same document from cache", func(t *testing.T) {
		t.Parallel()

		a, err := s.Load(context.Background(), "routing")
		require.NoError(t, err)
		b, err := s.Load(context.Background(), "routing")
		require.NoError(t, err)
		require.Same(t, a, b)
	})

	t.Run("missing document", func(t *testing.T) {
		t.Parallel()

		_, err := s.Load(context.Background(), "nope")
		require.ErrorIs(t, err, content.ErrNotFound)
	})

	t.Run("drafts are hidden", func(t *testing.T) {
		t.Parallel()

		_, err := s.Load(context.Background(), "secret")
		require.ErrorIs(t, err, content.ErrNotFound)
	})

	t.Run("invalid frontmatter", func(t *testing.T) {
		t.Parallel()

		_, err := s.Load(context.Background(), "broken")
		require.ErrorIs(t, err, content.ErrInvalidFrontmatter)
	})

	t.Run("rejects traversal and malformed slugs", func(t *testing.T) {
		t.Parallel()

		for _, slug := range []string{"", "../etc/passwd", "nested/a", "Routing", "a--b", "-a", "a b"} {
			_, err := s.Load(context.Background(), slug)
			require.ErrorIs(t, err, content.ErrInvalidSlug, slug)
		}
	})
}

func TestStore_Drafts(t *testing.T) {
	t.Parallel()

	s := content.NewStore(testFS(), content.WithDir("docs"), content.WithDrafts(true))

	doc, err := s.Load(context.Background(), "secret")
	require.NoError(t, err)
	require.True(t, doc.Draft)
}

func TestStore_CacheTTL(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{"page.md": {Data: []byte("first")}}
	store := content.NewStore(fsys, content.WithCache(
		cache.NewMemory[*content.Document](cache.WithTTL(20*time.Millisecond)),
	))

	doc, err := store.Load(context.Background(), "page")
	require.NoError(t, err)
	require.Contains(t, doc.HTML, "first")

	fsys["page.md"] = &fstest.MapFile{Data: []byte("second")}
	require.Eventually(t, func() bool {
		doc, err := store.Load(context.Background(), "page")
		return err == nil && strings.Contains(doc.HTML, "second")
	}, time.Second, 10*time.Millisecond)
}

func TestStore_List(t *testing.T) {
	t.Parallel()

	s := content.NewStore(testFS(), content.WithDir("docs"))

	slugs, err := s.List()
	require.NoError(t, err)
	require.Equal(t, []string{"broken", "getting-started", "routing", "secret"}, slugs)
}

func TestStore_Index(t *testing.T) {
	t.Parallel()

	t.Run("orders by order then title and skips drafts", func(t *testing.T) {
		t.Parallel()

		fsys := testFS()
		delete(fsys, "docs/broken.md")
		s := content.NewStore(fsys, content.WithDir("docs"))

		idx, err := s.Index(context.Background())
		require.NoError(t, err)
		require.Equal(t, []content.Summary{
			{Slug: "getting-started", Title: "Getting Started", Order: 1},
			{Slug: "routing", Title: "Routing", Description: "How files map to URLs", Order: 2},
		}, idx)
	})

	t.Run("fails on broken document", func(t *testing.T) {
		t.Parallel()

		s := content.NewStore(testFS(), content.WithDir("docs"))
		_, err := s.Index(context.Background())
		require.ErrorIs(t, err, content.ErrInvalidFrontmatter)
	})
}

func TestStore_Healthcheck(t *testing.T) {
	t.Parallel()

	t.Run("ok when directory exists", func(t *testing.T) {
		t.Parallel()

		s := content.NewStore(testFS(), content.WithDir("docs"))
		require.NoError(t, s.Healthcheck(context.Background()))
	})

	t.Run("fails when directory is missing", func(t *testing.T) {
		t.Parallel()

		s := content.NewStore(testFS(), content.WithDir("missing"))
		require.Error(t, s.Healthcheck(context.Background()))
	})

	t.Run("fails on cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		s := content.NewStore(testFS(), content.WithDir("docs"))
		require.ErrorIs(t, s.Healthcheck(ctx), context.Canceled)
	})
}

func TestValidSlug(t *testing.T) {
	t.Parallel()

	require.True(t, content.ValidSlug("routing"))
	require.True(t, content.ValidSlug("getting-started-2"))
	require.False(t, content.ValidSlug(""))
	require.False(t, content.ValidSlug("Routing"))
	require.False(t, content.ValidSlug("a_b"))
	require.False(t, content.ValidSlug("../x"))
}
