// Package sprout is a small server-side rendering framework with file-based
// routing and a utility-class styling plugin.
//
// A sprout application is described by a [Manifest]: route files mapped to
// page components, optional API handlers, a root layout and error pages.
// Pages are plain [Component] values, so templ components work directly.
//
// # Quick Start
//
//	app := sprout.New(
//	    sprout.WithManifest(&sprout.Manifest{
//	        App:   views.App,
//	        Error: views.ErrorPage,
//	        Routes: []sprout.Route{
//	            {File: "index", Page: views.Home},
//	            {File: "greet/[name]", Page: views.Greet},
//	        },
//	    }),
//	    sprout.WithPlugins(style.New()),
//	)
//
//	if err := app.Run(":8000"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Route Files
//
// Route files follow the directory convention of file-routed frameworks:
//
//	index                → /
//	docs/index           → /docs
//	greet/[name]         → /greet/{name}
//	docs/[...path]       → /docs/*        (catch-all, last segment only)
//	(marketing)/pricing  → /pricing       (groups are dropped)
//
// Names starting with an underscore are reserved: the layout, not-found and
// error pages are set on the Manifest fields App, NotFound and Error.
//
// # Loading Data
//
// A route with a GET handler loads its data and renders the page with it:
//
//	{
//	    File: "docs/[slug]",
//	    Page: views.Doc,
//	    Handlers: map[string]sprout.HandlerFunc{
//	        http.MethodGet: func(c sprout.Context) error {
//	            doc, err := store.Load(c, c.Param("slug"))
//	            if errors.Is(err, content.ErrNotFound) {
//	                return sprout.ErrNotFound("No such document.")
//	            }
//	            if err != nil {
//	                return err
//	            }
//	            c.SetTitle(doc.Title)
//	            return c.RenderPage(http.StatusOK, doc)
//	        },
//	    },
//	}
//
// # Errors
//
// Handlers return errors. An error reaches, in order, the custom
// [ErrorHandler], the manifest NotFound page for 404s or the Error page, and
// finally a plain text response. Server errors always show
// [DefaultErrorMessage].
//
// # Shutdown
//
// Run handles SIGINT/SIGTERM for graceful shutdown.
// Register cleanup functions with ShutdownHook:
//
//	app.Run(":8000",
//	    sprout.ShutdownHook(func(ctx context.Context) error {
//	        return sheets.Close()
//	    }),
//	)
package sprout
