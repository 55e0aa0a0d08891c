package sanitizer

import (
	"html"
	"regexp"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// classPattern accepts utility class lists such as "p-4 md:flex hover:text-blue-600 w-1/2".
var classPattern = regexp.MustCompile(`^[a-zA-Z0-9_:/.\- ]+$`)

var (
	textPolicy     *bluemonday.Policy
	documentPolicy *bluemonday.Policy
	initOnce       sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()

		p := bluemonday.NewPolicy()
		p.AllowStandardURLs()
		p.AllowElements(
			"h1", "h2", "h3", "h4", "h5", "h6",
			"p", "br", "hr", "div", "span",
			"strong", "b", "em", "i", "del", "s",
			"ul", "ol", "li",
			"code", "pre", "blockquote",
			"table", "thead", "tbody", "tr", "th", "td",
		)
		p.AllowAttrs("href").OnElements("a")
		p.AllowAttrs("src", "alt", "title").OnElements("img")
		p.AllowAttrs("id").Matching(bluemonday.SpaceSeparatedTokens).OnElements("h1", "h2", "h3", "h4", "h5", "h6")
		p.AllowAttrs("align").Matching(regexp.MustCompile(`^(left|center|right)$`)).OnElements("th", "td")
		p.AllowAttrs("class").Matching(classPattern).Globally()
		p.AllowAttrs("type").Matching(regexp.MustCompile(`^checkbox$`)).OnElements("input")
		p.AllowAttrs("checked", "disabled").OnElements("input")
		p.RequireNoFollowOnFullyQualifiedLinks(true)
		p.AddTargetBlankToFullyQualifiedLinks(true)
		documentPolicy = p
	})
}

// Text strips all HTML and returns plain text with entities decoded.
// The result must be escaped again before it is written into a page.
func Text(s string) string {
	initPolicies()
	return html.UnescapeString(textPolicy.Sanitize(s))
}

// Document sanitizes HTML rendered from markdown.
// Scripts, event handlers, inline styles and javascript: URLs are removed.
// External links get rel="nofollow noopener" and target="_blank".
func Document(s string) string {
	initPolicies()
	return documentPolicy.Sanitize(s)
}

// DocumentBytes is Document for byte slices.
func DocumentBytes(b []byte) []byte {
	initPolicies()
	return documentPolicy.SanitizeBytes(b)
}

// Custom applies policy to s.
// Returns input unchanged if policy is nil.
func Custom(s string, policy *bluemonday.Policy) string {
	if policy == nil {
		return s
	}
	return policy.Sanitize(s)
}
