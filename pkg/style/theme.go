package style

import (
	"maps"
	"strconv"
	"strings"
)

// Palette maps shade names ("50" through "900") to colour values.
type Palette map[string]string

// Breakpoint is a named min-width media query.
type Breakpoint struct {
	Name     string
	MinWidth int // pixels
}

// Theme holds the design tokens utilities resolve against.
type Theme struct {
	Colors      map[string]Palette
	Spacing     map[string]string
	Breakpoints []Breakpoint
	FontSans    string
	FontMono    string
}

// DefaultTheme returns a fresh copy of the built in theme.
func DefaultTheme() Theme {
	colors := make(map[string]Palette, len(defaultColors))
	for name, p := range defaultColors {
		colors[name] = maps.Clone(p)
	}
	return Theme{
		Colors:  colors,
		Spacing: map[string]string{"px": "1px"},
		Breakpoints: []Breakpoint{
			{Name: "sm", MinWidth: 640},
			{Name: "md", MinWidth: 768},
			{Name: "lg", MinWidth: 1024},
			{Name: "xl", MinWidth: 1280},
			{Name: "2xl", MinWidth: 1536},
		},
		FontSans: `ui-sans-serif,system-ui,-apple-system,"Segoe UI",Roboto,"Helvetica Neue",Arial,sans-serif`,
		FontMono: `ui-monospace,SFMono-Regular,Menlo,Monaco,Consolas,monospace`,
	}
}

// Merge returns t with the non-empty parts of o applied on top.
// Palettes are merged shade by shade; breakpoints are replaced as a whole.
func (t Theme) Merge(o Theme) Theme {
	out := t
	out.Colors = make(map[string]Palette, len(t.Colors)+len(o.Colors))
	for name, p := range t.Colors {
		out.Colors[name] = maps.Clone(p)
	}
	for name, p := range o.Colors {
		if out.Colors[name] == nil {
			out.Colors[name] = Palette{}
		}
		maps.Copy(out.Colors[name], p)
	}

	out.Spacing = maps.Clone(t.Spacing)
	if out.Spacing == nil {
		out.Spacing = map[string]string{}
	}
	maps.Copy(out.Spacing, o.Spacing)

	if len(o.Breakpoints) > 0 {
		out.Breakpoints = append([]Breakpoint(nil), o.Breakpoints...)
	}
	if o.FontSans != "" {
		out.FontSans = o.FontSans
	}
	if o.FontMono != "" {
		out.FontMono = o.FontMono
	}
	return out
}

// spacing resolves a spacing key. Explicit theme entries win; otherwise
// numeric keys in steps of 0.5 up to 96 map to multiples of 0.25rem.
func (t Theme) spacing(key string) (string, bool) {
	if v, ok := t.Spacing[key]; ok {
		return v, true
	}
	n, err := strconv.ParseFloat(key, 64)
	if err != nil || n < 0 || n > 96 || n*2 != float64(int(n*2)) || strconv.FormatFloat(n, 'f', -1, 64) != key {
		return "", false
	}
	if n == 0 {
		return "0", true
	}
	return strconv.FormatFloat(n*0.25, 'f', -1, 64) + "rem", true
}

// color resolves "blue-500" style keys plus a few keywords.
func (t Theme) color(key string) (string, bool) {
	switch key {
	case "white":
		return "#fff", true
	case "black":
		return "#000", true
	case "transparent":
		return "transparent", true
	case "current":
		return "currentColor", true
	}
	i := strings.LastIndexByte(key, '-')
	if i <= 0 {
		return "", false
	}
	p, ok := t.Colors[key[:i]]
	if !ok {
		return "", false
	}
	v, ok := p[key[i+1:]]
	return v, ok
}

func (t Theme) breakpoint(name string) (int, bool) {
	for i, bp := range t.Breakpoints {
		if bp.Name == name {
			return i, true
		}
	}
	return 0, false
}

var defaultColors = map[string]Palette{
	"slate": {
		"50": "#f8fafc", "100": "#f1f5f9", "200": "#e2e8f0", "300": "#cbd5e1", "400": "#94a3b8",
		"500": "#64748b", "600": "#475569", "700": "#334155", "800": "#1e293b", "900": "#0f172a",
	},
	"gray": {
		"50": "#f9fafb", "100": "#f3f4f6", "200": "#e5e7eb", "300": "#d1d5db", "400": "#9ca3af",
		"500": "#6b7280", "600": "#4b5563", "700": "#374151", "800": "#1f2937", "900": "#111827",
	},
	"red": {
		"50": "#fef2f2", "100": "#fee2e2", "200": "#fecaca", "300": "#fca5a5", "400": "#f87171",
		"500": "#ef4444", "600": "#dc2626", "700": "#b91c1c", "800": "#991b1b", "900": "#7f1d1d",
	},
	"amber": {
		"50": "#fffbeb", "100": "#fef3c7", "200": "#fde68a", "300": "#fcd34d", "400": "#fbbf24",
		"500": "#f59e0b", "600": "#d97706", "700": "#b45309", "800": "#92400e", "900": "#78350f",
	},
	"green": {
		"50": "#f0fdf4", "100": "#dcfce7", "200": "#bbf7d0", "300": "#86efac", "400": "#4ade80",
		"500": "#22c55e", "600": "#16a34a", "700": "#15803d", "800": "#166534", "900": "#14532d",
	},
	"blue": {
		"50": "#eff6ff", "100": "#dbeafe", "200": "#bfdbfe", "300": "#93c5fd", "400": "#60a5fa",
		"500": "#3b82f6", "600": "#2563eb", "700": "#1d4ed8", "800": "#1e40af", "900": "#1e3a8a",
	},
	"indigo": {
		"50": "#eef2ff", "100": "#e0e7ff", "200": "#c7d2fe", "300": "#a5b4fc", "400": "#818cf8",
		"500": "#6366f1", "600": "#4f46e5", "700": "#4338ca", "800": "#3730a3", "900": "#312e81",
	},
	"pink": {
		"50": "#fdf2f8", "100": "#fce7f3", "200": "#fbcfe8", "300": "#f9a8d4", "400": "#f472b6",
		"500": "#ec4899", "600": "#db2777", "700": "#be185d", "800": "#9d174d", "900": "#831843",
	},
}
