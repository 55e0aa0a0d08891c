package style

import (
	"strconv"
	"strings"
)

// escapeClass escapes a class name for use in a CSS class selector,
// following the CSS.escape() algorithm.
func escapeClass(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)

	for i, r := range s {
		switch {
		case r == 0:
			b.WriteRune('�')
		case r < 0x20 || r == 0x7f:
			writeHexEscape(&b, r)
		case i == 0 && r >= '0' && r <= '9':
			writeHexEscape(&b, r)
		case i == 1 && r >= '0' && r <= '9' && s[0] == '-':
			writeHexEscape(&b, r)
		case i == 0 && r == '-' && len(s) == 1:
			b.WriteString(`\-`)
		case r >= 0x80, r == '-', r == '_',
			r >= '0' && r <= '9', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		default:
			b.WriteByte('\\')
			b.WriteRune(r)
		}
	}
	return b.String()
}

func writeHexEscape(b *strings.Builder, r rune) {
	b.WriteByte('\\')
	b.WriteString(strconv.FormatInt(int64(r), 16))
	b.WriteByte(' ')
}
