package internal_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sprout/internal"
)

func TestApp_Run(t *testing.T) {
	t.Parallel()

	t.Run("serves until the base context is cancelled", func(t *testing.T) {
		t.Parallel()

		app := internal.New(internal.WithManifest(testManifest()))
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		addrCh := make(chan net.Addr, 1)
		var hookCalls int
		errCh := make(chan error, 1)
		go func() {
			errCh <- app.Run("127.0.0.1:0",
				internal.WithContext(ctx),
				internal.ShutdownTimeout(time.Second),
				internal.StartupHook(func(_ context.Context, addr net.Addr) error {
					addrCh <- addr
					return nil
				}),
				internal.ShutdownHook(func(context.Context) error {
					hookCalls++
					return nil
				}),
			)
		}()

		addr := <-addrCh
		resp, err := http.Get(fmt.Sprintf("http://%s/", addr))
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, resp.Body.Close())
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Contains(t, string(body), "<main>home</main>")

		cancel()
		select {
		case err := <-errCh:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("Run did not return after cancellation")
		}
		require.Equal(t, 1, hookCalls)
	})

	t.Run("binds the given listener", func(t *testing.T) {
		t.Parallel()

		ln, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		err = internal.New().Run("",
			internal.WithContext(ctx),
			internal.Listener(ln),
			internal.StartupHook(func(_ context.Context, addr net.Addr) error {
				defer cancel()
				if addr.String() != ln.Addr().String() {
					return fmt.Errorf("bound %s, want %s", addr, ln.Addr())
				}
				return nil
			}),
		)
		require.NoError(t, err)
	})

	t.Run("failing startup hook aborts", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("warmup failed")
		err := internal.New().Run("127.0.0.1:0",
			internal.StartupHook(func(context.Context, net.Addr) error { return boom }),
		)
		require.ErrorIs(t, err, boom)
	})

	t.Run("shutdown hook errors are joined", func(t *testing.T) {
		t.Parallel()

		first, second := errors.New("first"), errors.New("second")
		ctx, cancel := context.WithCancel(context.Background())
		err := internal.New().Run("127.0.0.1:0",
			internal.WithContext(ctx),
			internal.StartupHook(func(context.Context, net.Addr) error {
				cancel()
				return nil
			}),
			internal.ShutdownHook(func(context.Context) error { return first }),
			internal.ShutdownHook(func(context.Context) error { return second }),
		)
		require.ErrorIs(t, err, first)
		require.ErrorIs(t, err, second)
	})

	t.Run("address in use", func(t *testing.T) {
		t.Parallel()

		ln, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		defer ln.Close()

		err = internal.New().Run(ln.Addr().String())
		require.Error(t, err)
	})
}
