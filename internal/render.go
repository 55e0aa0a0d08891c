package internal

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/dmitrymomot/sprout/pkg/plugin"
)

// styleCloseTag matches a closing style tag in any letter case.
var styleCloseTag = regexp.MustCompile(`(?i)</style`)

type documentSpec struct {
	body  Component
	route string
	title string
}

// renderDocument renders a page into a complete HTML document:
// the body first, then plugins over the body HTML, then the layout.
// It writes nothing to the response.
func (a *App) renderDocument(ctx context.Context, spec documentSpec) ([]byte, error) {
	if spec.body == nil {
		return nil, fmt.Errorf("render %s: %w", spec.route, ErrNoPage)
	}

	var body bytes.Buffer
	if err := spec.body.Render(ctx, &body); err != nil {
		return nil, fmt.Errorf("render page %s: %w", spec.route, err)
	}

	var styles []plugin.Style
	for _, p := range a.plugins {
		res, err := p.Render(ctx, plugin.RenderContext{Route: spec.route, HTML: body.Bytes()})
		if err != nil {
			return nil, fmt.Errorf("plugin %s: %w", p.Name(), err)
		}
		styles = append(styles, res.Styles...)
	}

	head := headComponent(styles)

	if a.layout == nil {
		var doc bytes.Buffer
		if err := head.Render(ctx, &doc); err != nil {
			return nil, err
		}
		doc.Write(body.Bytes())
		return doc.Bytes(), nil
	}

	var doc bytes.Buffer
	err := a.layout(LayoutProps{
		Title: spec.title,
		Route: spec.route,
		Head:  head,
		Body:  rawComponent(body.Bytes()),
	}).Render(ctx, &doc)
	if err != nil {
		return nil, fmt.Errorf("render layout: %w", err)
	}
	return doc.Bytes(), nil
}

// rawComponent writes pre-rendered HTML.
func rawComponent(b []byte) Component {
	return ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := w.Write(b)
		return err
	})
}

// headComponent renders plugin styles as style elements.
func headComponent(styles []plugin.Style) Component {
	return ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		for _, s := range styles {
			b.WriteString("<style")
			if s.ID != "" {
				b.WriteString(` id="`)
				b.WriteString(html.EscapeString(s.ID))
				b.WriteByte('"')
			}
			if s.Media != "" {
				b.WriteString(` media="`)
				b.WriteString(html.EscapeString(s.Media))
				b.WriteByte('"')
			}
			b.WriteByte('>')
			b.WriteString(styleCloseTag.ReplaceAllString(s.CSS, `<\/style`))
			b.WriteString("</style>")
		}
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// handleError writes the error response for err unless the handler
// already started one.
func (a *App) handleError(c *requestContext, err error) {
	code := StatusCode(err)

	if c.Written() {
		c.LogError("error after response started", "error", err, "status", code)
		return
	}

	if a.errorHandler != nil {
		herr := a.errorHandler(c, err)
		if herr == nil || c.Written() {
			return
		}
		c.LogError("error handler failed", "error", herr)
	}

	a.renderErrorPage(c, err, code)
}

// renderErrorPage renders the manifest error pages, falling back to plain
// text when no page is configured or rendering the page fails.
func (a *App) renderErrorPage(c *requestContext, err error, code int) {
	if code >= http.StatusInternalServerError {
		c.LogError("request failed", "error", err, "status", code)
	} else {
		c.LogDebug("request rejected", "error", err, "status", code)
	}

	props := ErrorPageProps{
		Code:    code,
		Title:   http.StatusText(code),
		Message: DefaultErrorMessage,
		Err:     err,
		URL:     c.request.URL,
	}
	if httpErr := AsHTTPError(err); httpErr != nil {
		props.Title = httpErr.StatusText()
		if httpErr.Message != "" && code < http.StatusInternalServerError {
			props.Message = httpErr.Message
		}
	}

	page := a.errorPage
	if code == http.StatusNotFound && a.notFoundPage != nil {
		page = a.notFoundPage
	}
	if page == nil {
		http.Error(c.response, props.Message, code)
		return
	}

	doc, rerr := a.renderDocument(c.request.Context(), documentSpec{
		route: "",
		title: props.Title,
		body:  page(props),
	})
	if rerr != nil {
		c.LogError("error page failed", "error", rerr)
		http.Error(c.response, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if err := c.writeHTML(code, doc); err != nil {
		c.LogDebug("write error page", "error", err)
	}
}
