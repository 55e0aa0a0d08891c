package sanitizer_test

import (
	"testing"

	"github.com/microcosm-cc/bluemonday"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/sprout/pkg/sanitizer"
)

func TestText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "strips tags from title",
			input:    `Getting <em>started</em>`,
			expected: "Getting started",
		},
		{
			name:     "strips script injection",
			input:    `Docs<script>alert('xss')</script>`,
			expected: "Docs",
		},
		{
			name:     "strips javascript links",
			input:    `<a href="javascript:alert(1)">click</a>`,
			expected: "click",
		},
		{
			name:     "decodes entities",
			input:    `Fish &amp; <b>Chips</b>`,
			expected: "Fish & Chips",
		},
		{
			name:     "keeps plain text",
			input:    "Routing and layouts",
			expected: "Routing and layouts",
		},
		{
			name:     "handles empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.Text(tt.input))
		})
	}
}

func TestDocument(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "keeps headings with ids",
			input:    `<h2 id="routing">Routing</h2>`,
			expected: `<h2 id="routing">Routing</h2>`,
		},
		{
			name:     "keeps utility classes",
			input:    `<p class="p-4 md:flex hover:text-blue-600 w-1/2">hi</p>`,
			expected: `<p class="p-4 md:flex hover:text-blue-600 w-1/2">hi</p>`,
		},
		{
			name:     "drops class with unsafe characters",
			input:    `<p class="a&quot;onmouseover=&quot;x">hi</p>`,
			expected: `<p>hi</p>`,
		},
		{
			name:     "keeps code blocks with language class",
			input:    `<pre><code class="language-go">func main() {}</code></pre>`,
			expected: `<pre><code class="language-go">func main() {}</code></pre>`,
		},
		{
			name:     "keeps tables",
			input:    `<table><thead><tr><th>a</th></tr></thead><tbody><tr><td>1</td></tr></tbody></table>`,
			expected: `<table><thead><tr><th>a</th></tr></thead><tbody><tr><td>1</td></tr></tbody></table>`,
		},
		{
			name:     "keeps relative links untouched",
			input:    `<a href="/docs/routing">routing</a>`,
			expected: `<a href="/docs/routing">routing</a>`,
		},
		{
			name:     "strips scripts",
			input:    `<p>ok</p><script>alert('xss')</script>`,
			expected: `<p>ok</p>`,
		},
		{
			name:     "strips event handlers",
			input:    `<p onclick="alert('xss')">content</p>`,
			expected: `<p>content</p>`,
		},
		{
			name:     "strips style attribute",
			input:    `<p style="color:red">content</p>`,
			expected: `<p>content</p>`,
		},
		{
			name:     "strips javascript URLs",
			input:    `<a href="javascript:alert('xss')">click</a>`,
			expected: "click",
		},
		{
			name:     "strips iframes",
			input:    `<iframe src="https://evil.example"></iframe>text`,
			expected: "text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.Document(tt.input))
		})
	}

	t.Run("external links open in new tab without follow", func(t *testing.T) {
		t.Parallel()

		out := sanitizer.Document(`<a href="https://example.com">x</a>`)
		assert.Contains(t, out, `href="https://example.com"`)
		assert.Contains(t, out, `target="_blank"`)
		assert.Contains(t, out, "nofollow")
	})

	t.Run("bytes variant matches string variant", func(t *testing.T) {
		t.Parallel()

		in := `<h1 id="x" onclick="y">T</h1>`
		assert.Equal(t, sanitizer.Document(in), string(sanitizer.DocumentBytes([]byte(in))))
	})
}

func TestCustom(t *testing.T) {
	t.Parallel()

	t.Run("applies policy", func(t *testing.T) {
		t.Parallel()

		policy := bluemonday.NewPolicy()
		policy.AllowElements("b")
		assert.Equal(t, "<b>x</b>y", sanitizer.Custom(`<b>x</b><i>y</i>`, policy))
	})

	t.Run("nil policy returns input unchanged", func(t *testing.T) {
		t.Parallel()

		in := `<script>alert(1)</script>`
		assert.Equal(t, in, sanitizer.Custom(in, nil))
	})
}
