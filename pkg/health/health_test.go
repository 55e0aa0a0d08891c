package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sprout/pkg/health"
)

func TestLivenessHandler(t *testing.T) {
	t.Parallel()

	t.Run("plain text", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		health.LivenessHandler()(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
		assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	})

	t.Run("json via query", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		health.LivenessHandler()(rec, httptest.NewRequest(http.MethodGet, "/health/live?format=json", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
	})
}

func TestReadinessHandler(t *testing.T) {
	t.Parallel()

	t.Run("healthy without checks", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		health.ReadinessHandler(nil)(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
	})

	t.Run("unhealthy when a check fails", func(t *testing.T) {
		t.Parallel()

		h := health.ReadinessHandler(health.Checks{
			"docs":   func(context.Context) error { return nil },
			"assets": func(context.Context) error { return errors.New("missing") },
		})

		req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
		req.Header.Set("Accept", "application/json")
		rec := httptest.NewRecorder()
		h(rec, req)

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var resp health.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, health.StatusUnhealthy, resp.Status)
		assert.Equal(t, health.StatusHealthy, resp.Checks["docs"].Status)
		assert.Equal(t, health.StatusUnhealthy, resp.Checks["assets"].Status)
		assert.Equal(t, "missing", resp.Checks["assets"].Error)
		assert.NotEmpty(t, resp.Checks["docs"].Duration)
	})

	t.Run("plain text failure", func(t *testing.T) {
		t.Parallel()

		h := health.ReadinessHandler(health.Checks{
			"x": func(context.Context) error { return errors.New("down") },
		})
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "Service Unavailable", rec.Body.String())
	})
}

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("runs checks concurrently", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		started := make(chan struct{}, 2)
		wait := func(ctx context.Context) error {
			started <- struct{}{}
			<-release
			return nil
		}

		done := make(chan *health.Response)
		go func() {
			done <- health.Run(context.Background(), health.Checks{"a": wait, "b": wait})
		}()

		<-started
		<-started
		close(release)

		resp := <-done
		assert.Equal(t, health.StatusHealthy, resp.Status)
		assert.NoError(t, resp.Err())
	})

	t.Run("slow check times out", func(t *testing.T) {
		t.Parallel()

		resp := health.Run(context.Background(), health.Checks{
			"slow": func(ctx context.Context) error {
				<-ctx.Done()
				return ctx.Err()
			},
		}, health.WithTimeout(10*time.Millisecond))

		assert.Equal(t, health.StatusUnhealthy, resp.Status)
		assert.Contains(t, resp.Checks["slow"].Error, health.ErrCheckTimeout.Error())

		err := resp.Err()
		require.ErrorIs(t, err, health.ErrCheckFailed)
		assert.Contains(t, err.Error(), "slow")
	})
}
