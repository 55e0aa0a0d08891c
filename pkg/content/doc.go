// Package content serves markdown documents as pages.
//
// A [Store] reads "<slug>.md" files from an fs.FS, typically an embedded
// directory. Each file may start with YAML frontmatter:
//
//	---
//	title: Routing
//	description: How files map to URLs
//	order: 2
//	---
//	# Routing
//
//	Files under routes/ become pages.
//
// The body is converted with goldmark (GitHub flavoured markdown, heading
// ids, attribute lists) and sanitized with [sanitizer.Document]. Raw HTML and
// class attributes in markdown survive sanitization, so utility classes used
// in a document are picked up by the styling plugin like any other page.
//
// Parsed documents are cached per slug:
//
//	docs := content.NewStore(docsFS)
//	doc, err := docs.Load(ctx, "routing")
//	if errors.Is(err, content.ErrNotFound) {
//	    return sprout.ErrNotFound("no such document")
//	}
package content
