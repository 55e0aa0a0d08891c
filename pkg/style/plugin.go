package style

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/dmitrymomot/sprout/pkg/cache"
	"github.com/dmitrymomot/sprout/pkg/plugin"
)

// StyleID is the id of the style element the plugin contributes.
const StyleID = "__sprout_style"

// Name is the plugin name.
const Name = "style"

// generatorVersion is part of every cache key. Bump it when the utility set
// or the CSS output format changes.
const generatorVersion = "1"

// Option configures the styling plugin.
type Option func(*Plugin)

// WithTheme merges t over the default theme.
func WithTheme(t Theme) Option {
	return func(p *Plugin) {
		p.theme = p.theme.Merge(t)
	}
}

// WithPreflight prepends a minimal CSS reset to every stylesheet.
func WithPreflight() Option {
	return func(p *Plugin) {
		p.preflight = true
	}
}

// WithCache replaces the stylesheet cache. A shared cache such as
// cache.Redis lets several instances reuse generated sheets.
func WithCache(c cache.Loader[string]) Option {
	return func(p *Plugin) {
		if c != nil {
			p.sheets = c
		}
	}
}

// Plugin generates a stylesheet for every rendered page.
type Plugin struct {
	gen       *Generator
	sheets    cache.Loader[string]
	theme     Theme
	preflight bool
	keyPrefix string
}

var _ plugin.Plugin = (*Plugin)(nil)

// New creates the styling plugin.
func New(opts ...Option) *Plugin {
	p := &Plugin{theme: DefaultTheme()}
	for _, opt := range opts {
		opt(p)
	}
	if p.sheets == nil {
		p.sheets = cache.NewMemory[string](cache.WithMaxEntries(512))
	}
	p.gen = NewGenerator(p.theme, p.preflight)
	p.keyPrefix = fingerprint(p.theme, p.preflight)
	return p
}

// Name implements plugin.Plugin.
func (p *Plugin) Name() string { return Name }

// Render implements plugin.Plugin.
func (p *Plugin) Render(ctx context.Context, rc plugin.RenderContext) (plugin.Result, error) {
	classes, err := Classes(rc.HTML)
	if err != nil {
		return plugin.Result{}, fmt.Errorf("style: extract classes: %w", err)
	}

	css, err := p.sheets.GetOrLoad(ctx, p.cacheKey(classes), func(context.Context) (string, error) {
		return p.gen.Generate(classes), nil
	})
	if err != nil {
		return plugin.Result{}, fmt.Errorf("style: %w", err)
	}
	if css == "" {
		return plugin.Result{}, nil
	}

	return plugin.Result{Styles: []plugin.Style{{ID: StyleID, CSS: css}}}, nil
}

// Stylesheet generates CSS for the classes in html without caching.
func (p *Plugin) Stylesheet(html []byte) (string, error) {
	classes, err := Classes(html)
	if err != nil {
		return "", err
	}
	return p.gen.Generate(classes), nil
}

// cacheKey is "{fingerprint}:{class hash}", so plugins sharing a cache only
// reuse sheets generated with the same theme, preflight and utility set.
func (p *Plugin) cacheKey(classes []string) string {
	sum := sha256.Sum256([]byte(strings.Join(classes, " ")))
	return p.keyPrefix + ":" + hex.EncodeToString(sum[:])
}

// fingerprint hashes everything besides the class set that shapes the
// generated sheet. fmt prints maps with sorted keys.
func fingerprint(t Theme, preflight bool) string {
	h := sha256.New()
	fmt.Fprintf(h, "v%s|%t|%+v", generatorVersion, preflight, t)
	return hex.EncodeToString(h.Sum(nil))[:16]
}
