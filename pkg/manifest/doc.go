// Package manifest implements the file-based routing convention used by sprout.
//
// A route is declared by the relative path of the file that would hold it,
// without extension. The package turns those names into chi URL patterns and
// rejects names that would collide or that the framework reserves.
//
// # Convention
//
//	index            -> /
//	about            -> /about
//	blog/index       -> /blog
//	greet/[name]     -> /greet/{name}
//	docs/[...path]   -> /docs/*
//	(marketing)/team -> /team
//
// Segments in square brackets are dynamic. A "[...name]" segment is a
// catch-all and must be the last one. Segments in parentheses group files
// without affecting the URL. Names starting with an underscore ("_app",
// "_404", "_500") are reserved for the layout and error pages.
//
// # Usage
//
//	entries, err := manifest.Compile([]string{"index", "greet/[name]"})
//	if err != nil {
//	    return err
//	}
//	for _, e := range entries {
//	    fmt.Println(e.Pattern, e.File)
//	}
package manifest
