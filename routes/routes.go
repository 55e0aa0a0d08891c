// Package routes is the route manifest of the sprout site.
//
// Each route is named by its file path under the routing convention:
//
//	index           /
//	greet/[name]    /greet/{name}
//	docs/index      /docs
//	docs/[slug]     /docs/{slug}
//	api/joke        /api/joke
//
// The markdown behind /docs is embedded in [Docs].
package routes

import (
	"embed"
	"errors"
	"net/http"

	"github.com/dmitrymomot/sprout"
	"github.com/dmitrymomot/sprout/pkg/content"
	"github.com/dmitrymomot/sprout/views"
)

// Docs holds the bundled documentation under docs/.
//
//go:embed docs/*.md
var Docs embed.FS

// DocsDir is the directory of Docs that holds the markdown files.
const DocsDir = "docs"

// Manifest returns the site manifest backed by docs.
func Manifest(docs *content.Store) *sprout.Manifest {
	d := &docsHandler{store: docs}

	return &sprout.Manifest{
		App:      views.App,
		NotFound: views.NotFound,
		Error:    views.ErrorPage,
		Routes: []sprout.Route{
			{File: "index", Title: "Home", Page: views.Home},
			{File: "greet/[name]", Title: "Greet", Page: views.Greet},
			{
				File:     "docs/index",
				Title:    "Docs",
				Page:     views.DocIndex,
				Handlers: map[string]sprout.HandlerFunc{http.MethodGet: d.index},
			},
			{
				File:     "docs/[slug]",
				Page:     views.Doc,
				Handlers: map[string]sprout.HandlerFunc{http.MethodGet: d.show},
			},
			{
				File:     "api/joke",
				Handlers: map[string]sprout.HandlerFunc{http.MethodGet: joke},
			},
		},
	}
}

type docsHandler struct {
	store *content.Store
}

func (h *docsHandler) index(c sprout.Context) error {
	docs, err := h.store.Index(c)
	if err != nil {
		return err
	}
	return c.RenderPage(http.StatusOK, docs)
}

func (h *docsHandler) show(c sprout.Context) error {
	doc, err := h.store.Load(c, c.Param("slug"))
	if errors.Is(err, content.ErrNotFound) || errors.Is(err, content.ErrInvalidSlug) {
		return sprout.ErrNotFound("There is no document at this address.", sprout.WithError(err))
	}
	if err != nil {
		return err
	}

	c.SetTitle(doc.Title)
	return c.RenderPage(http.StatusOK, doc)
}
