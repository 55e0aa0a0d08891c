package content

import (
	"bytes"
	"cmp"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"slices"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/sprout/pkg/cache"
	"github.com/dmitrymomot/sprout/pkg/sanitizer"
)

const ext = ".md"

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Document is a rendered markdown document.
type Document struct {
	Meta
	Slug string
	HTML string
}

// Summary describes a document for listings.
type Summary struct {
	Slug        string `yaml:"slug"`
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	Order       int    `yaml:"order"`
}

// Option configures a Store.
type Option func(*Store)

// WithDir sets the directory inside the filesystem that holds documents.
// Default: ".".
func WithDir(dir string) Option {
	return func(s *Store) {
		if dir != "" {
			s.dir = path.Clean(dir)
		}
	}
}

// WithCache replaces the document cache.
func WithCache(c *cache.Memory[*Document]) Option {
	return func(s *Store) {
		if c != nil {
			s.cache = c
		}
	}
}

// WithDrafts makes Load and Index return documents marked draft.
func WithDrafts(show bool) Option {
	return func(s *Store) {
		s.drafts = show
	}
}

// Store loads markdown documents from a filesystem.
type Store struct {
	fsys   fs.FS
	md     goldmark.Markdown
	cache  *cache.Memory[*Document]
	dir    string
	drafts bool
}

// NewStore creates a Store reading from fsys.
func NewStore(fsys fs.FS, opts ...Option) *Store {
	s := &Store{
		fsys: fsys,
		dir:  ".",
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
				parser.WithAttribute(),
			),
			goldmark.WithRendererOptions(
				// raw HTML is kept here and cleaned by the sanitizer
				html.WithUnsafe(),
			),
		),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.cache == nil {
		s.cache = cache.NewMemory[*Document](cache.WithMaxEntries(256))
	}
	return s
}

// Load returns the document for slug.
// Returns ErrInvalidSlug for malformed slugs and ErrNotFound when the file
// does not exist or is a draft.
func (s *Store) Load(ctx context.Context, slug string) (*Document, error) {
	if !ValidSlug(slug) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
	}

	doc, err := s.cache.GetOrLoad(ctx, slug, func(context.Context) (*Document, error) {
		return s.parse(slug)
	})
	if err != nil {
		return nil, err
	}
	if doc.Draft && !s.drafts {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, slug)
	}
	return doc, nil
}

// List returns the slugs of all documents, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := fs.ReadDir(s.fsys, s.dir)
	if err != nil {
		return nil, fmt.Errorf("content: read %s: %w", s.dir, err)
	}

	slugs := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ext {
			continue
		}
		slug := strings.TrimSuffix(e.Name(), ext)
		if ValidSlug(slug) {
			slugs = append(slugs, slug)
		}
	}
	slices.Sort(slugs)
	return slugs, nil
}

// Index loads every document and returns summaries ordered by their order
// field, then title. Drafts are skipped unless WithDrafts is set.
func (s *Store) Index(ctx context.Context) ([]Summary, error) {
	slugs, err := s.List()
	if err != nil {
		return nil, err
	}

	out := make([]Summary, 0, len(slugs))
	for _, slug := range slugs {
		doc, err := s.Load(ctx, slug)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, Summary{
			Slug:        doc.Slug,
			Title:       doc.Title,
			Description: doc.Description,
			Order:       doc.Order,
		})
	}

	slices.SortStableFunc(out, func(a, b Summary) int {
		if c := cmp.Compare(a.Order, b.Order); c != 0 {
			return c
		}
		return cmp.Compare(a.Title, b.Title)
	})
	return out, nil
}

// Healthcheck reports whether the document directory is readable.
func (s *Store) Healthcheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := fs.ReadDir(s.fsys, s.dir); err != nil {
		return fmt.Errorf("content: read %s: %w", s.dir, err)
	}
	return nil
}

func (s *Store) parse(slug string) (*Document, error) {
	src, err := fs.ReadFile(s.fsys, path.Join(s.dir, slug+ext))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, slug)
	}
	if err != nil {
		return nil, fmt.Errorf("content: read %s: %w", slug, err)
	}

	meta, body, err := SplitFrontmatter(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", slug, err)
	}

	var buf bytes.Buffer
	if err := s.md.Convert(body, &buf); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRenderFailed, slug, err)
	}

	meta.Title = sanitizer.Text(meta.Title)
	meta.Description = sanitizer.Text(meta.Description)
	if meta.Title == "" {
		meta.Title = titleFromSlug(slug)
	}

	return &Document{
		Meta: meta,
		Slug: slug,
		HTML: string(sanitizer.DocumentBytes(buf.Bytes())),
	}, nil
}

// ValidSlug reports whether slug is lowercase words joined by single dashes.
func ValidSlug(slug string) bool {
	return slugPattern.MatchString(slug)
}

func titleFromSlug(slug string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(slug, "-", " "))
}
