package views

import (
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/sprout"
	"github.com/dmitrymomot/sprout/pkg/content"
)

// SiteName is appended to every document title.
const SiteName = "sprout"

// App is the root layout: the HTML document shell around every page.
func App(p sprout.LayoutProps) sprout.Component {
	return layout(documentTitle(p.Title), orNop(p.Head), orNop(p.Body))
}

// ErrorPage renders error responses other than 404.
func ErrorPage(p sprout.ErrorPageProps) sprout.Component {
	return errorPage(p.Code, p.Title, p.Message)
}

// NotFound renders 404 responses.
func NotFound(p sprout.ErrorPageProps) sprout.Component {
	var path string
	if p.URL != nil {
		path = p.URL.Path
	}
	return notFound(p.Message, path)
}

// Home is the landing page.
func Home(sprout.PageProps) sprout.Component { return home() }

// Greet greets the name captured by the dynamic segment.
func Greet(p sprout.PageProps) sprout.Component {
	name := strings.TrimSpace(p.Params["name"])
	if name == "" {
		name = "stranger"
	}
	return greet(name)
}

// DocIndex lists the available documents. Data is a []content.Summary.
func DocIndex(p sprout.PageProps) sprout.Component {
	docs, _ := p.Data.([]content.Summary)
	return docIndex(docs)
}

// Doc renders a markdown document. Data is a *content.Document whose HTML is
// already sanitized.
func Doc(p sprout.PageProps) sprout.Component {
	d, _ := p.Data.(*content.Document)
	return doc(d)
}

func documentTitle(title string) string {
	if title == "" {
		return SiteName
	}
	return title + " | " + SiteName
}

func docURL(slug string) templ.SafeURL {
	return templ.URL("/docs/" + slug)
}

func orNop(c sprout.Component) sprout.Component {
	if c == nil {
		return templ.NopComponent
	}
	return c
}
