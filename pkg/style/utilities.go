package style

import (
	"strconv"
	"strings"
)

// decl is a single CSS declaration.
type decl struct {
	prop  string
	value string
}

func d(prop, value string) []decl { return []decl{{prop, value}} }

func d2(p1, p2, value string) []decl { return []decl{{p1, value}, {p2, value}} }

var staticUtilities = map[string][]decl{
	// display
	"block":        d("display", "block"),
	"inline-block": d("display", "inline-block"),
	"inline":       d("display", "inline"),
	"flex":         d("display", "flex"),
	"inline-flex":  d("display", "inline-flex"),
	"grid":         d("display", "grid"),
	"hidden":       d("display", "none"),

	// flexbox
	"flex-row":        d("flex-direction", "row"),
	"flex-col":        d("flex-direction", "column"),
	"flex-wrap":       d("flex-wrap", "wrap"),
	"flex-nowrap":     d("flex-wrap", "nowrap"),
	"flex-1":          d("flex", "1 1 0%"),
	"flex-auto":       d("flex", "1 1 auto"),
	"flex-none":       d("flex", "none"),
	"shrink-0":        d("flex-shrink", "0"),
	"grow":            d("flex-grow", "1"),
	"items-start":     d("align-items", "flex-start"),
	"items-center":    d("align-items", "center"),
	"items-end":       d("align-items", "flex-end"),
	"items-stretch":   d("align-items", "stretch"),
	"items-baseline":  d("align-items", "baseline"),
	"justify-start":   d("justify-content", "flex-start"),
	"justify-center":  d("justify-content", "center"),
	"justify-end":     d("justify-content", "flex-end"),
	"justify-between": d("justify-content", "space-between"),
	"justify-around":  d("justify-content", "space-around"),
	"justify-evenly":  d("justify-content", "space-evenly"),

	// sizing
	"mx-auto":         d2("margin-left", "margin-right", "auto"),
	"my-auto":         d2("margin-top", "margin-bottom", "auto"),
	"w-full":          d("width", "100%"),
	"w-screen":        d("width", "100vw"),
	"w-auto":          d("width", "auto"),
	"h-full":          d("height", "100%"),
	"h-screen":        d("height", "100vh"),
	"h-auto":          d("height", "auto"),
	"min-h-screen":    d("min-height", "100vh"),
	"max-w-xs":        d("max-width", "20rem"),
	"max-w-sm":        d("max-width", "24rem"),
	"max-w-md":        d("max-width", "28rem"),
	"max-w-lg":        d("max-width", "32rem"),
	"max-w-xl":        d("max-width", "36rem"),
	"max-w-2xl":       d("max-width", "42rem"),
	"max-w-3xl":       d("max-width", "48rem"),
	"max-w-4xl":       d("max-width", "56rem"),
	"max-w-5xl":       d("max-width", "64rem"),
	"max-w-prose":     d("max-width", "65ch"),
	"max-w-full":      d("max-width", "100%"),
	"max-w-screen-sm": d("max-width", "640px"),
	"max-w-screen-md": d("max-width", "768px"),
	"max-w-screen-lg": d("max-width", "1024px"),
	"max-w-screen-xl": d("max-width", "1280px"),

	// typography
	"font-thin":         d("font-weight", "100"),
	"font-light":        d("font-weight", "300"),
	"font-normal":       d("font-weight", "400"),
	"font-medium":       d("font-weight", "500"),
	"font-semibold":     d("font-weight", "600"),
	"font-bold":         d("font-weight", "700"),
	"font-extrabold":    d("font-weight", "800"),
	"text-left":         d("text-align", "left"),
	"text-center":       d("text-align", "center"),
	"text-right":        d("text-align", "right"),
	"underline":         d("text-decoration-line", "underline"),
	"no-underline":      d("text-decoration-line", "none"),
	"line-through":      d("text-decoration-line", "line-through"),
	"italic":            d("font-style", "italic"),
	"not-italic":        d("font-style", "normal"),
	"uppercase":         d("text-transform", "uppercase"),
	"lowercase":         d("text-transform", "lowercase"),
	"capitalize":        d("text-transform", "capitalize"),
	"leading-none":      d("line-height", "1"),
	"leading-tight":     d("line-height", "1.25"),
	"leading-normal":    d("line-height", "1.5"),
	"leading-relaxed":   d("line-height", "1.625"),
	"tracking-tight":    d("letter-spacing", "-0.025em"),
	"tracking-normal":   d("letter-spacing", "0"),
	"tracking-wide":     d("letter-spacing", "0.025em"),
	"whitespace-nowrap": d("white-space", "nowrap"),
	"truncate": {
		{"overflow", "hidden"},
		{"text-overflow", "ellipsis"},
		{"white-space", "nowrap"},
	},
	"list-none":    d("list-style-type", "none"),
	"list-disc":    d("list-style-type", "disc"),
	"list-decimal": d("list-style-type", "decimal"),

	// borders
	"border":        d("border-width", "1px"),
	"border-t":      d("border-top-width", "1px"),
	"border-r":      d("border-right-width", "1px"),
	"border-b":      d("border-bottom-width", "1px"),
	"border-l":      d("border-left-width", "1px"),
	"border-solid":  d("border-style", "solid"),
	"border-dashed": d("border-style", "dashed"),
	"rounded-none":  d("border-radius", "0"),
	"rounded-sm":    d("border-radius", "0.125rem"),
	"rounded":       d("border-radius", "0.25rem"),
	"rounded-md":    d("border-radius", "0.375rem"),
	"rounded-lg":    d("border-radius", "0.5rem"),
	"rounded-xl":    d("border-radius", "0.75rem"),
	"rounded-2xl":   d("border-radius", "1rem"),
	"rounded-full":  d("border-radius", "9999px"),
	"shadow-sm":     d("box-shadow", "0 1px 2px 0 rgb(0 0 0 / 0.05)"),
	"shadow":        d("box-shadow", "0 1px 3px 0 rgb(0 0 0 / 0.1), 0 1px 2px -1px rgb(0 0 0 / 0.1)"),
	"shadow-md":     d("box-shadow", "0 4px 6px -1px rgb(0 0 0 / 0.1), 0 2px 4px -2px rgb(0 0 0 / 0.1)"),
	"shadow-lg":     d("box-shadow", "0 10px 15px -3px rgb(0 0 0 / 0.1), 0 4px 6px -4px rgb(0 0 0 / 0.1)"),
	"shadow-none":   d("box-shadow", "none"),

	// layout
	"relative":        d("position", "relative"),
	"absolute":        d("position", "absolute"),
	"fixed":           d("position", "fixed"),
	"sticky":          d("position", "sticky"),
	"top-0":           d("top", "0"),
	"inset-0":         {{"top", "0"}, {"right", "0"}, {"bottom", "0"}, {"left", "0"}},
	"overflow-hidden": d("overflow", "hidden"),
	"overflow-auto":   d("overflow", "auto"),
	"overflow-x-auto": d("overflow-x", "auto"),
	"cursor-pointer":  d("cursor", "pointer"),
	"select-none":     d("user-select", "none"),
	"transition": {
		{"transition-property", "color,background-color,border-color,text-decoration-color,fill,stroke,opacity,box-shadow,transform"},
		{"transition-timing-function", "cubic-bezier(0.4,0,0.2,1)"},
		{"transition-duration", "150ms"},
	},
}

var fontSizes = map[string][]decl{
	"xs":   {{"font-size", "0.75rem"}, {"line-height", "1rem"}},
	"sm":   {{"font-size", "0.875rem"}, {"line-height", "1.25rem"}},
	"base": {{"font-size", "1rem"}, {"line-height", "1.5rem"}},
	"lg":   {{"font-size", "1.125rem"}, {"line-height", "1.75rem"}},
	"xl":   {{"font-size", "1.25rem"}, {"line-height", "1.75rem"}},
	"2xl":  {{"font-size", "1.5rem"}, {"line-height", "2rem"}},
	"3xl":  {{"font-size", "1.875rem"}, {"line-height", "2.25rem"}},
	"4xl":  {{"font-size", "2.25rem"}, {"line-height", "2.5rem"}},
	"5xl":  {{"font-size", "3rem"}, {"line-height", "1"}},
}

var borderWidths = map[string]string{"0": "0", "2": "2px", "4": "4px", "8": "8px"}

var fractions = map[string]string{
	"1/2": "50%", "1/3": "33.333333%", "2/3": "66.666667%",
	"1/4": "25%", "3/4": "75%", "1/5": "20%", "2/5": "40%", "3/5": "60%", "4/5": "80%",
}

// spacingProps maps spacing utility prefixes to the properties they set.
var spacingProps = map[string][]string{
	"p":     {"padding"},
	"px":    {"padding-left", "padding-right"},
	"py":    {"padding-top", "padding-bottom"},
	"pt":    {"padding-top"},
	"pr":    {"padding-right"},
	"pb":    {"padding-bottom"},
	"pl":    {"padding-left"},
	"m":     {"margin"},
	"mx":    {"margin-left", "margin-right"},
	"my":    {"margin-top", "margin-bottom"},
	"mt":    {"margin-top"},
	"mr":    {"margin-right"},
	"mb":    {"margin-bottom"},
	"ml":    {"margin-left"},
	"gap":   {"gap"},
	"gap-x": {"column-gap"},
	"gap-y": {"row-gap"},
	"w":     {"width"},
	"h":     {"height"},
	"min-w": {"min-width"},
	"top":   {"top"},
	"left":  {"left"},
	"right": {"right"},
}

// negatable lists the spacing prefixes that accept a leading "-".
var negatable = map[string]bool{
	"m": true, "mx": true, "my": true, "mt": true, "mr": true, "mb": true, "ml": true,
}

// resolve returns the declarations for a utility without variants.
func (t Theme) resolve(utility string) ([]decl, bool) {
	switch utility {
	case "font-sans":
		return d("font-family", t.FontSans), t.FontSans != ""
	case "font-mono":
		return d("font-family", t.FontMono), t.FontMono != ""
	}
	if decls, ok := staticUtilities[utility]; ok {
		return decls, true
	}

	negative := strings.HasPrefix(utility, "-")
	if negative {
		utility = utility[1:]
	}

	prefix, value, ok := splitUtility(utility)
	if !ok {
		return nil, false
	}

	if props, ok := spacingProps[prefix]; ok {
		v, ok := t.spacing(value)
		if !ok && (prefix == "w" || prefix == "h") {
			v, ok = fractions[value]
		}
		if !ok {
			return nil, false
		}
		if negative {
			if !negatable[prefix] || v == "0" {
				return nil, false
			}
			v = "-" + v
		}
		out := make([]decl, len(props))
		for i, p := range props {
			out[i] = decl{p, v}
		}
		return out, true
	}
	if negative {
		return nil, false
	}

	switch prefix {
	case "text":
		if decls, ok := fontSizes[value]; ok {
			return decls, true
		}
		if c, ok := t.color(value); ok {
			return d("color", c), true
		}
	case "bg":
		if c, ok := t.color(value); ok {
			return d("background-color", c), true
		}
	case "border":
		if w, ok := borderWidths[value]; ok {
			return d("border-width", w), true
		}
		if c, ok := t.color(value); ok {
			return d("border-color", c), true
		}
	case "grid-cols":
		if n, err := strconv.Atoi(value); err == nil && n >= 1 && n <= 12 && strconv.Itoa(n) == value {
			return d("grid-template-columns", "repeat("+value+",minmax(0,1fr))"), true
		}
	case "col-span":
		if n, err := strconv.Atoi(value); err == nil && n >= 1 && n <= 12 && strconv.Itoa(n) == value {
			return d("grid-column", "span "+value+" / span "+value), true
		}
	case "opacity":
		if n, err := strconv.Atoi(value); err == nil && n >= 0 && n <= 100 && n%5 == 0 && strconv.Itoa(n) == value {
			return d("opacity", strconv.FormatFloat(float64(n)/100, 'f', -1, 64)), true
		}
	case "z":
		switch value {
		case "0", "10", "20", "30", "40", "50":
			return d("z-index", value), true
		}
	}
	return nil, false
}

// splitUtility splits "gap-x-4" into ("gap-x", "4") and "text-blue-500"
// into ("text", "blue-500"). Multi word prefixes are matched first.
func splitUtility(s string) (prefix, value string, ok bool) {
	for _, p := range [...]string{"gap-x-", "gap-y-", "min-w-", "grid-cols-", "col-span-"} {
		if rest, found := strings.CutPrefix(s, p); found && rest != "" {
			return p[:len(p)-1], rest, true
		}
	}
	i := strings.IndexByte(s, '-')
	if i <= 0 || i == len(s)-1 {
		return "", "", false
	}
	return s[:i], s[i+1:], true
}
