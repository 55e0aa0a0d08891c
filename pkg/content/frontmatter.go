package content

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

var delimiter = []byte("---")

// Meta is the frontmatter of a document.
type Meta struct {
	Extra       map[string]any `yaml:",inline"`
	Title       string         `yaml:"title"`
	Description string         `yaml:"description"`
	Order       int            `yaml:"order"`
	Draft       bool           `yaml:"draft"`
}

// SplitFrontmatter separates YAML frontmatter from the markdown body.
// Content without a leading delimiter has empty Meta and is returned whole.
func SplitFrontmatter(src []byte) (Meta, []byte, error) {
	var meta Meta

	if !bytes.HasPrefix(src, delimiter) {
		return meta, src, nil
	}

	rest := bytes.TrimLeft(bytes.TrimPrefix(src, delimiter), "\r\n")
	if len(rest) == 0 {
		return meta, nil, fmt.Errorf("%w: no content after opening delimiter", ErrInvalidFrontmatter)
	}

	var head []byte
	if bytes.HasPrefix(rest, delimiter) {
		// empty block
		head, rest = nil, rest[len(delimiter):]
	} else {
		end := bytes.Index(rest, append([]byte("\n"), delimiter...))
		if end == -1 {
			return meta, nil, fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
		}
		head, rest = rest[:end], rest[end+1+len(delimiter):]
	}

	switch {
	case bytes.HasPrefix(rest, []byte("\r\n")):
		rest = rest[2:]
	case bytes.HasPrefix(rest, []byte("\n")):
		rest = rest[1:]
	}

	if len(bytes.TrimSpace(head)) > 0 {
		if err := yaml.Unmarshal(head, &meta); err != nil {
			return Meta{}, nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
		}
	}

	return meta, rest, nil
}
