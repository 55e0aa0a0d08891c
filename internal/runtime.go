package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/sprout/pkg/logger"
)

// DefaultAddress is used when Run is called with an empty address.
const DefaultAddress = ":8000"

// runServer serves handler on addr until the base context is cancelled or
// the process receives SIGINT or SIGTERM, then shuts down gracefully.
func runServer(addr string, handler http.Handler, cfg *runConfig) error {
	if addr == "" {
		addr = DefaultAddress
	}
	log := cfg.logger
	if log == nil {
		log = logger.NewNope()
	}
	base := cfg.baseCtx
	if base == nil {
		base = context.Background()
	}

	ctx, stop := signal.NotifyContext(base, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := listen(addr, cfg.listener)
	if err != nil {
		return err
	}
	if err := runStartupHooks(ctx, ln, cfg.startupHooks); err != nil {
		_ = ln.Close()
		return err
	}

	server := &http.Server{
		Handler:           handler,
		ReadTimeout:       defaultReadTimeout,
		WriteTimeout:      defaultWriteTimeout,
		IdleTimeout:       defaultIdleTimeout,
		ReadHeaderTimeout: defaultReadHeaderTimeout,
		MaxHeaderBytes:    defaultMaxHeaderBytes,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("server starting", slog.String("address", ln.Addr().String()))
		err := server.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		serveErr <- err
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	return shutdown(server, cfg, log)
}

// listen returns ln when set, else a new TCP listener on addr.
func listen(addr string, ln net.Listener) (net.Listener, error) {
	if ln != nil {
		return ln, nil
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", addr, err)
	}
	return ln, nil
}

func runStartupHooks(ctx context.Context, ln net.Listener, hooks []func(context.Context, net.Addr) error) error {
	for _, hook := range hooks {
		if err := hook(ctx, ln.Addr()); err != nil {
			return fmt.Errorf("startup hook: %w", err)
		}
	}
	return nil
}

// shutdown drains the server, then runs the shutdown hooks in order.
// All hooks run; their errors are joined.
func shutdown(server *http.Server, cfg *runConfig, log *slog.Logger) error {
	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.shutdownTimeout)
	defer cancel()

	var errs []error
	if err := server.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown: %w", err))
	}
	for _, hook := range cfg.shutdownHooks {
		if err := hook(ctx); err != nil {
			log.Error("shutdown hook failed", slog.Any("error", err))
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		log.Error("shutdown completed with errors")
		return err
	}
	log.Info("shutdown completed")
	return nil
}
