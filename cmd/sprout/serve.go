package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/sprout"
	"github.com/dmitrymomot/sprout/config"
	"github.com/dmitrymomot/sprout/middlewares"
	"github.com/dmitrymomot/sprout/pkg/cache"
	"github.com/dmitrymomot/sprout/pkg/content"
	"github.com/dmitrymomot/sprout/pkg/redis"
	"github.com/dmitrymomot/sprout/pkg/style"
	"github.com/dmitrymomot/sprout/routes"
	"github.com/dmitrymomot/sprout/static"
)

// compressionLevel is the gzip level for compressed responses.
const compressionLevel = 5

// docsReloadTTL bounds how long a DOCS_DIR document is cached in development.
const docsReloadTTL = 2 * time.Second

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long:  `Start the HTTP server. It binds to PORT when that holds a valid port, else to 8000.`,
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}

	cmd.Flags().Int("port", config.DefaultPort, "listen port (env: PORT)")
	cmd.Flags().String("host", "", "listen host (env: HOST)")
	cmd.Flags().String("log-level", "", "debug, info, warn or error (env: LOG_LEVEL)")
	cmd.Flags().String("log-format", "", "json, pretty or text (env: LOG_FORMAT)")
	cmd.Flags().Duration("request-timeout", 0, "per-request deadline, 0 disables it (env: REQUEST_TIMEOUT)")
	cmd.Flags().String("docs-dir", "", "serve docs from this directory instead of the embedded copy (env: DOCS_DIR)")
	cmd.Flags().String("redis-url", "", "share generated stylesheets through Redis (env: REDIS_URL)")

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, flush := newLogger(cfg, cmd.OutOrStdout())
	slog.SetDefault(log)

	app, cleanup, err := newApp(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}

	return app.Run(cfg.Address(),
		sprout.WithContext(cmd.Context()),
		sprout.ShutdownTimeout(cfg.ShutdownTimeout),
		sprout.StartupHook(func(_ context.Context, addr net.Addr) error {
			log.Info("server started", "addr", addr.String(), "env", cfg.Env, "version", version)
			return nil
		}),
		sprout.ShutdownHook(cleanup),
		sprout.ShutdownHook(func(context.Context) error {
			flush()
			return nil
		}),
	)
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// newApp assembles the site: manifest, styling plugin, middlewares, static
// assets and readiness checks. The returned cleanup closes the docs
// directory and the Redis client, whichever were opened.
func newApp(ctx context.Context, cfg *config.Config, log *slog.Logger) (*sprout.App, func(context.Context) error, error) {
	var closers []func(context.Context) error
	cleanup := func(ctx context.Context) error {
		var errs []error
		for _, c := range closers {
			errs = append(errs, c(ctx))
		}
		return errors.Join(errs...)
	}

	docs, closeDocs, err := newDocsStore(cfg)
	if err != nil {
		return nil, nil, err
	}
	closers = append(closers, closeDocs)

	checks := []sprout.HealthOption{
		sprout.WithReadinessCheck("docs", docs.Healthcheck),
	}

	var sheets cache.Loader[string] = cache.NewMemory[string](cache.WithMaxEntries(512))
	if cfg.RedisURL != "" {
		client, err := redis.Open(ctx, cfg.RedisURL)
		if err != nil {
			_ = cleanup(ctx)
			return nil, nil, fmt.Errorf("open redis: %w", err)
		}
		sheets = cache.NewRedis[string](client, cache.WithPrefix("sprout:css"), cache.WithRedisTTL(24*time.Hour))
		checks = append(checks, sprout.WithReadinessCheck("redis", redis.Healthcheck(client)))
		closers = append(closers, redis.Shutdown(client))
		log.Info("stylesheet cache uses redis")
	}

	mw := []sprout.Middleware{
		middlewares.RequestID(),
		middlewares.Logger(middlewares.WithLoggerSkipPaths("/health/live", "/health/ready")),
		middlewares.Recover(),
	}
	if cfg.RequestTimeout > 0 {
		mw = append(mw, middlewares.Timeout(cfg.RequestTimeout))
	}

	opts := []sprout.Option{
		sprout.WithCustomLogger(log),
		sprout.WithManifest(routes.Manifest(docs)),
		sprout.WithPlugins(style.New(style.WithPreflight(), style.WithCache(sheets))),
		sprout.WithMiddleware(mw...),
		sprout.WithStaticFiles("/static/", static.FS, "."),
		sprout.WithHandlers(robots{}),
		sprout.WithHealthChecks(checks...),
	}
	if cfg.Compress {
		opts = append(opts, sprout.WithCompression(compressionLevel))
	}

	return sprout.New(opts...), cleanup, nil
}

// newDocsStore serves the embedded docs, or DOCS_DIR when set. In development
// documents from DOCS_DIR are re-read after docsReloadTTL so edits show up
// without a restart. The returned func closes the directory.
func newDocsStore(cfg *config.Config) (*content.Store, func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }
	if cfg.DocsDir == "" {
		return content.NewStore(routes.Docs, content.WithDir(routes.DocsDir)), noop, nil
	}

	root, err := os.OpenRoot(cfg.DocsDir)
	if err != nil {
		return nil, nil, fmt.Errorf("open docs dir: %w", err)
	}

	opts := []content.Option{content.WithDrafts(cfg.IsDevelopment())}
	if cfg.IsDevelopment() {
		opts = append(opts, content.WithCache(cache.NewMemory[*content.Document](
			cache.WithMaxEntries(256),
			cache.WithTTL(docsReloadTTL),
		)))
	}
	return content.NewStore(root.FS(), opts...), func(context.Context) error { return root.Close() }, nil
}

// robots serves /robots.txt from the embedded assets.
type robots struct{}

func (robots) Routes(r sprout.Router) {
	r.GET("/robots.txt", func(c sprout.Context) error {
		http.ServeFileFS(c.Response(), c.Request(), static.FS, "robots.txt")
		return nil
	})
}
