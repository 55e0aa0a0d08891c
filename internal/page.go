package internal

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/dmitrymomot/sprout/pkg/manifest"
)

// PageProps is passed to page components.
type PageProps struct {
	// URL is the request URL.
	URL *url.URL

	// Params holds dynamic segment values by their declared name.
	// A catch-all holds the rest of the path without a leading slash.
	Params map[string]string

	// Data is the value a GET handler passed to RenderPage, nil otherwise.
	Data any

	// Route is the route file, e.g. "docs/[slug]".
	Route string
}

// LayoutProps is passed to the root layout.
type LayoutProps struct {
	// Head renders the style elements contributed by plugins.
	Head Component

	// Body renders the page.
	Body Component

	Title string
	Route string
}

// ErrorPageProps is passed to the not-found and error pages.
type ErrorPageProps struct {
	Err     error
	URL     *url.URL
	Title   string
	Message string
	Code    int
}

// PageFunc builds the component for a page.
type PageFunc func(PageProps) Component

// LayoutFunc builds the document shell around a rendered page.
type LayoutFunc func(LayoutProps) Component

// ErrorPageFunc builds the component for an error response.
type ErrorPageFunc func(ErrorPageProps) Component

// Route is one entry of the route manifest.
type Route struct {
	// Page renders the route on GET when no GET handler is set.
	Page PageFunc

	// Handlers maps HTTP methods to handlers. A GET handler on a page route
	// loads data and calls Context.RenderPage.
	Handlers map[string]HandlerFunc

	// File is the route file, e.g. "index", "greet/[name]", "(marketing)/about".
	File string

	// Title is the document title. Derived from File when empty.
	Title string

	// Middleware wraps every handler of the route, the page included.
	Middleware []Middleware
}

// Manifest maps route files to pages and handlers.
type Manifest struct {
	// App is the root layout ("_app"). Without it pages are written bare.
	App LayoutFunc

	// NotFound renders 404 responses ("_404").
	NotFound ErrorPageFunc

	// Error renders every other error response ("_500").
	Error ErrorPageFunc

	Routes []Route
}

var knownMethods = []string{
	http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
	http.MethodPatch, http.MethodDelete, http.MethodOptions,
}

// pageRoute is a compiled manifest route.
type pageRoute struct {
	route    Route
	entry    manifest.Entry
	title    string
	handlers map[string]HandlerFunc
}

// RouteInfo describes a compiled route.
type RouteInfo struct {
	Pattern string   `yaml:"pattern"`
	File    string   `yaml:"file"`
	Kind    string   `yaml:"kind"`
	Methods []string `yaml:"methods"`
	Params  []string `yaml:"params,omitempty"`
}

// Route kinds reported by RouteInfo.
const (
	KindPage = "page"
	KindAPI  = "api"
)

// compileManifest validates m and resolves every route to a URL pattern.
// All problems are reported together.
func compileManifest(m *Manifest) ([]*pageRoute, error) {
	if m == nil {
		return nil, nil
	}

	byFile := make(map[string]Route, len(m.Routes))
	files := make([]string, 0, len(m.Routes))
	var errs []error

	for _, r := range m.Routes {
		key := r.File
		if e, err := manifest.Parse(r.File); err == nil {
			key = e.File
		}
		if _, dup := byFile[key]; dup {
			errs = append(errs, fmt.Errorf("%w: %q declared twice", ErrInvalidRoute, r.File))
			continue
		}
		if r.Page == nil && len(r.Handlers) == 0 {
			errs = append(errs, fmt.Errorf("%w: %q has neither page nor handlers", ErrInvalidRoute, r.File))
		}
		for method, h := range r.Handlers {
			if !slices.Contains(knownMethods, strings.ToUpper(method)) {
				errs = append(errs, fmt.Errorf("%w: %q: unknown method %q", ErrInvalidRoute, r.File, method))
			}
			if h == nil {
				errs = append(errs, fmt.Errorf("%w: %q: nil %s handler", ErrInvalidRoute, r.File, method))
			}
		}
		byFile[key] = r
		files = append(files, r.File)
	}

	entries, err := manifest.Compile(files)
	if err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	out := make([]*pageRoute, 0, len(entries))
	for _, e := range entries {
		r := byFile[e.File]
		pr := &pageRoute{
			route:    r,
			entry:    e,
			title:    r.Title,
			handlers: make(map[string]HandlerFunc, len(r.Handlers)+1),
		}
		if pr.title == "" {
			pr.title = manifest.Title(e.File)
		}
		for method, h := range r.Handlers {
			pr.handlers[strings.ToUpper(method)] = h
		}
		out = append(out, pr)
	}
	return out, nil
}

func (p *pageRoute) info() RouteInfo {
	ri := RouteInfo{Pattern: p.entry.Pattern, File: p.entry.File, Kind: KindAPI}
	if p.route.Page != nil {
		ri.Kind = KindPage
	}
	for _, m := range knownMethods {
		if _, ok := p.handlers[m]; ok || (m == http.MethodGet && p.route.Page != nil) {
			ri.Methods = append(ri.Methods, m)
		}
	}
	for _, param := range p.entry.Params {
		name := param.Name
		if param.CatchAll {
			name = "..." + name
		}
		ri.Params = append(ri.Params, name)
	}
	return ri
}
