// Package static embeds the site's public assets.
package static

import "embed"

// FS holds the assets served under /static/.
//
//go:embed robots.txt logo.svg
var FS embed.FS
