// Package views holds the site's templ components: the document shell, the
// error pages and one component per page.
//
// Components are written in .templ files; the *_templ.go files next to them
// are generated and checked in. The exported functions in helpers.go adapt
// route props to the typed components.
package views

//go:generate go run github.com/a-h/templ/cmd/templ@v0.3.977 generate
