// Package plugin defines the render hook contract between the sprout render
// pipeline and page plugins such as the styling plugin.
//
// A plugin receives the rendered body of a page before the layout is applied
// and returns styles that the layout places into the document head.
package plugin

import "context"

// Plugin hooks into page rendering.
type Plugin interface {
	// Name identifies the plugin in logs and errors.
	Name() string

	// Render inspects the rendered page body and returns head additions.
	Render(ctx context.Context, rc RenderContext) (Result, error)
}

// RenderContext describes the page being rendered.
type RenderContext struct {
	// Route is the route file of the page, empty for error pages.
	Route string

	// HTML is the rendered page body. Plugins must not retain or modify it.
	HTML []byte
}

// Result holds what a plugin contributes to the document.
type Result struct {
	Styles []Style
}

// Style is a stylesheet injected into the document head.
type Style struct {
	ID    string
	CSS   string
	Media string
}

// Func adapts a function to the Plugin interface.
type Func struct {
	Fn       func(ctx context.Context, rc RenderContext) (Result, error)
	PlugName string
}

// Name implements Plugin.
func (f Func) Name() string { return f.PlugName }

// Render implements Plugin.
func (f Func) Render(ctx context.Context, rc RenderContext) (Result, error) {
	return f.Fn(ctx, rc)
}
