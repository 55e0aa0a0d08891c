package manifest

import (
	"cmp"
	"errors"
	"fmt"
	"path"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Reserved file names for the special pages of a manifest.
const (
	AppFile      = "_app"
	NotFoundFile = "_404"
	ErrorFile    = "_500"
)

// extensions stripped from route files before parsing.
var extensions = []string{".go", ".templ", ".md", ".html"}

// Param describes a dynamic segment of a route.
type Param struct {
	Name     string `yaml:"name"`
	CatchAll bool   `yaml:"catch_all,omitempty"`
}

// Key returns the chi URL parameter key holding the value of the segment.
func (p Param) Key() string {
	if p.CatchAll {
		return "*"
	}
	return p.Name
}

// Entry is a compiled route file.
type Entry struct {
	File    string  `yaml:"file"`
	Pattern string  `yaml:"pattern"`
	Params  []Param `yaml:"params,omitempty"`

	// rank holds one weighted segment per URL segment, used for ordering.
	rank []rankedSegment
}

type rankedSegment struct {
	text   string
	weight int
}

// segment weights: static routes sort before dynamic ones, catch-alls last.
const (
	weightStatic = iota
	weightParam
	weightCatchAll
)

// Parse converts a single route file name into an Entry.
func Parse(file string) (Entry, error) {
	name := strings.TrimSpace(file)
	if ext := path.Ext(name); slices.Contains(extensions, ext) {
		name = strings.TrimSuffix(name, ext)
	}
	name = strings.Trim(name, "/")

	if name == "" || strings.ContainsAny(name, `\?#`) {
		return Entry{}, fmt.Errorf("%w: %q", ErrInvalidFile, file)
	}

	segments := strings.Split(name, "/")
	parts := make([]string, 0, len(segments))
	entry := Entry{File: name}
	seen := make(map[string]bool)

	for i, seg := range segments {
		last := i == len(segments)-1

		switch {
		case seg == "" || seg == "." || seg == "..":
			return Entry{}, fmt.Errorf("%w: %q: empty or relative segment", ErrInvalidFile, file)

		case strings.HasPrefix(seg, "_"):
			return Entry{}, fmt.Errorf("%w: %q", ErrReserved, file)

		case strings.HasPrefix(seg, "(") && strings.HasSuffix(seg, ")"):
			if len(seg) == 2 {
				return Entry{}, fmt.Errorf("%w: %q: empty group", ErrInvalidFile, file)
			}
			if last {
				return Entry{}, fmt.Errorf("%w: %q: group cannot be a route", ErrInvalidFile, file)
			}

		case strings.HasPrefix(seg, "[...") && strings.HasSuffix(seg, "]"):
			pname := seg[4 : len(seg)-1]
			if !last {
				return Entry{}, fmt.Errorf("%w: %q: catch-all must be the last segment", ErrInvalidFile, file)
			}
			if !isIdent(pname) || seen[pname] {
				return Entry{}, fmt.Errorf("%w: %q: bad parameter %q", ErrInvalidFile, file, pname)
			}
			seen[pname] = true
			entry.Params = append(entry.Params, Param{Name: pname, CatchAll: true})
			entry.rank = append(entry.rank, rankedSegment{weight: weightCatchAll})
			parts = append(parts, "*")

		case strings.HasPrefix(seg, "[") && strings.HasSuffix(seg, "]"):
			pname := seg[1 : len(seg)-1]
			if !isIdent(pname) || seen[pname] {
				return Entry{}, fmt.Errorf("%w: %q: bad parameter %q", ErrInvalidFile, file, pname)
			}
			seen[pname] = true
			entry.Params = append(entry.Params, Param{Name: pname})
			entry.rank = append(entry.rank, rankedSegment{weight: weightParam})
			parts = append(parts, "{"+pname+"}")

		case seg == "index" && last:
			// index maps to its parent directory

		default:
			if !isStatic(seg) {
				return Entry{}, fmt.Errorf("%w: %q: bad segment %q", ErrInvalidFile, file, seg)
			}
			entry.rank = append(entry.rank, rankedSegment{text: seg, weight: weightStatic})
			parts = append(parts, seg)
		}
	}

	entry.Pattern = "/" + strings.Join(parts, "/")
	return entry, nil
}

// Compile parses all files, rejects duplicates and returns the entries
// ordered so that static routes precede dynamic and catch-all routes.
// All problems are reported together.
func Compile(files []string) ([]Entry, error) {
	entries := make([]Entry, 0, len(files))
	byPattern := make(map[string]string, len(files))
	var errs []error

	for _, f := range files {
		e, err := Parse(f)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if prev, ok := byPattern[e.Pattern]; ok {
			errs = append(errs, fmt.Errorf("%w: %q and %q both resolve to %s", ErrDuplicate, prev, e.File, e.Pattern))
			continue
		}
		byPattern[e.Pattern] = e.File
		entries = append(entries, e)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	slices.SortStableFunc(entries, compareEntries)
	return entries, nil
}

// compareEntries orders entries segment by segment: lower weight first,
// static segments alphabetically, shorter routes before longer ones.
func compareEntries(a, b Entry) int {
	for i := 0; i < len(a.rank) && i < len(b.rank); i++ {
		if c := cmp.Compare(a.rank[i].weight, b.rank[i].weight); c != 0 {
			return c
		}
		if c := strings.Compare(a.rank[i].text, b.rank[i].text); c != 0 {
			return c
		}
	}
	if c := cmp.Compare(len(a.rank), len(b.rank)); c != 0 {
		return c
	}
	return strings.Compare(a.Pattern, b.Pattern)
}

// IsReserved reports whether name is one of the special page files.
func IsReserved(name string) bool {
	switch strings.Trim(name, "/") {
	case AppFile, NotFoundFile, ErrorFile:
		return true
	}
	return false
}

// Title derives a human readable title from a route file.
// The last static segment is used; the root index becomes "Home".
//
//	Title("greet/[name]")   // "Greet"
//	Title("blog/my-post")   // "My Post"
//	Title("index")          // "Home"
func Title(file string) string {
	name := strings.Trim(file, "/")
	if ext := path.Ext(name); slices.Contains(extensions, ext) {
		name = strings.TrimSuffix(name, ext)
	}

	title := ""
	for seg := range strings.SplitSeq(name, "/") {
		switch {
		case seg == "", seg == "index":
		case strings.HasPrefix(seg, "(") || strings.HasPrefix(seg, "["):
		default:
			title = seg
		}
	}
	if title == "" {
		return "Home"
	}

	title = strings.NewReplacer("-", " ", "_", " ").Replace(title)
	// Casers hold state and are not safe for concurrent use.
	return cases.Title(language.English).String(title)
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

func isStatic(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.', r == '~':
		default:
			return false
		}
	}
	return s != ""
}
