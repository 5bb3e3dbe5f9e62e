package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordlang/internal/platform/config"
	phttp "wordlang/internal/platform/net/http"
)

func TestNewServer_Addr(t *testing.T) {
	assert.Equal(t, ":4000", phttp.NewServer(config.New().Prefix("WL_")).Addr())

	t.Setenv("WL_PORT", "8080")
	assert.Equal(t, ":8080", phttp.NewServer(config.New().Prefix("WL_")).Addr())

	t.Setenv("WL_PORT", "127.0.0.1:9000")
	assert.Equal(t, "127.0.0.1:9000", phttp.NewServer(config.New().Prefix("WL_")).Addr())
}

func TestServer_RunStopsWithContext(t *testing.T) {
	t.Setenv("PORT", "127.0.0.1:0")
	srv := phttp.NewServer(config.New())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestServer_RunReportsListenError(t *testing.T) {
	t.Setenv("PORT", "256.0.0.1:bad")
	err := phttp.NewServer(config.New()).Run(context.Background())
	assert.Error(t, err)
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	return rr
}

func TestMountMetricsAndProfiler(t *testing.T) {
	srv := phttp.NewServer(config.New())
	r := srv.Router()
	phttp.MountMetrics(r, "/metrics", true)
	phttp.MountProfiler(r, "/debug", true)

	rr := get(srv.Handler(), "/metrics")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), "go_goroutines"))

	assert.Equal(t, http.StatusOK, get(srv.Handler(), "/debug/pprof/").Code)
}

func TestMountMetricsAndProfiler_Disabled(t *testing.T) {
	srv := phttp.NewServer(config.New())
	r := srv.Router()
	phttp.MountMetrics(r, "/metrics", false)
	phttp.MountProfiler(r, "/debug", false)

	assert.Equal(t, http.StatusNotFound, get(srv.Handler(), "/metrics").Code)
	assert.Equal(t, http.StatusNotFound, get(srv.Handler(), "/debug/pprof/").Code)
}
