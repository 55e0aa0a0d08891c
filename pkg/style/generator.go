package style

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// pseudoVariants maps state variants to the selector suffix they add.
var pseudoVariants = map[string]string{
	"hover":         ":hover",
	"focus":         ":focus",
	"focus-visible": ":focus-visible",
	"active":        ":active",
	"disabled":      ":disabled",
	"first":         ":first-child",
	"last":          ":last-child",
}

// preflight is a small reset applied before utilities when enabled.
const preflight = `*,::before,::after{box-sizing:border-box;border-width:0;border-style:solid;border-color:currentColor}` +
	`html{line-height:1.5;-webkit-text-size-adjust:100%;tab-size:4}` +
	`body{margin:0;line-height:inherit}` +
	`h1,h2,h3,h4,h5,h6{font-size:inherit;font-weight:inherit}` +
	`a{color:inherit;text-decoration:inherit}` +
	`h1,h2,h3,h4,h5,h6,p,blockquote,pre,figure,hr{margin:0}` +
	`ol,ul{list-style:none;margin:0;padding:0}` +
	`img,svg,video{display:block;max-width:100%;height:auto}` +
	`button,input,select,textarea{font:inherit;color:inherit;margin:0}`

// Generator turns class names into a stylesheet.
// It is safe for concurrent use.
type Generator struct {
	theme     Theme
	preflight bool
}

// NewGenerator creates a Generator for theme.
func NewGenerator(theme Theme, withPreflight bool) *Generator {
	return &Generator{theme: theme, preflight: withPreflight}
}

type rule struct {
	class    string
	selector string
	decls    []decl
	media    int // index into theme breakpoints, -1 for none
}

// Generate returns CSS for the recognised classes. Unknown classes are skipped.
// The output depends only on the set of classes, not their order.
func (g *Generator) Generate(classes []string) string {
	rules := make([]rule, 0, len(classes))
	seen := make(map[string]struct{}, len(classes))

	for _, class := range classes {
		if _, dup := seen[class]; dup {
			continue
		}
		seen[class] = struct{}{}

		if r, ok := g.rule(class); ok {
			rules = append(rules, r)
		}
	}

	slices.SortFunc(rules, func(a, b rule) int {
		if c := cmp.Compare(a.media, b.media); c != 0 {
			return c
		}
		return cmp.Compare(a.class, b.class)
	})

	var b strings.Builder
	if g.preflight {
		b.WriteString(preflight)
		b.WriteByte('\n')
	}

	for i := 0; i < len(rules); {
		media := rules[i].media
		if media < 0 {
			writeRule(&b, rules[i])
			b.WriteByte('\n')
			i++
			continue
		}

		b.WriteString("@media (min-width:")
		b.WriteString(strconv.Itoa(g.theme.Breakpoints[media].MinWidth))
		b.WriteString("px){")
		for ; i < len(rules) && rules[i].media == media; i++ {
			writeRule(&b, rules[i])
		}
		b.WriteString("}\n")
	}

	return b.String()
}

// rule parses variants off class and resolves the remaining utility.
func (g *Generator) rule(class string) (rule, bool) {
	parts := strings.Split(class, ":")
	utility := parts[len(parts)-1]

	r := rule{class: class, media: -1}
	var pseudo strings.Builder
	for _, v := range parts[:len(parts)-1] {
		if suffix, ok := pseudoVariants[v]; ok {
			pseudo.WriteString(suffix)
			continue
		}
		if idx, ok := g.theme.breakpoint(v); ok && r.media < 0 {
			r.media = idx
			continue
		}
		return rule{}, false
	}

	decls, ok := g.theme.resolve(utility)
	if !ok {
		return rule{}, false
	}
	r.decls = decls
	r.selector = "." + escapeClass(class) + pseudo.String()
	return r, true
}

func writeRule(b *strings.Builder, r rule) {
	b.WriteString(r.selector)
	b.WriteByte('{')
	for i, dc := range r.decls {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(dc.prop)
		b.WriteByte(':')
		b.WriteString(dc.value)
	}
	b.WriteByte('}')
}
