package content

import "errors"

var (
	// ErrNotFound is returned when no document exists for a slug.
	ErrNotFound = errors.New("content: document not found")

	// ErrInvalidSlug is returned for slugs outside [a-z0-9-].
	ErrInvalidSlug = errors.New("content: invalid slug")

	// ErrInvalidFrontmatter indicates malformed YAML frontmatter.
	ErrInvalidFrontmatter = errors.New("content: invalid frontmatter")

	// ErrRenderFailed indicates goldmark could not convert the document.
	ErrRenderFailed = errors.New("content: failed to render document")
)
