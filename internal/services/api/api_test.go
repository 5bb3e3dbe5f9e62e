package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordlang/internal/modkit/module"
	"wordlang/internal/platform/config"
	phttp "wordlang/internal/platform/net/http"
	detectdom "wordlang/internal/services/detect/domain"
)

func newAPI(t *testing.T) http.Handler {
	t.Helper()
	module.Reset()
	t.Cleanup(module.Reset)

	mux := chi.NewRouter()
	require.NoError(t, Mount(phttp.AdaptChi(mux), Options{
		Config:        config.New(),
		EnableSwagger: true,
		EnableMetrics: true,
	}))
	return mux
}

func serve(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	h.ServeHTTP(rr, req)
	return rr
}

func TestMount_DetectRoundTrip(t *testing.T) {
	h := newAPI(t)

	rr := serve(h, http.MethodPost, "/api/v1/detect/text", `{"text":"Καλημέρα σας"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var env struct {
		RequestID string           `json:"request_id"`
		Data      detectdom.Result `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	assert.Equal(t, "el", env.Data.Best)
	assert.NotEmpty(t, env.RequestID)
}

func TestMount_Meta(t *testing.T) {
	h := newAPI(t)

	rr := serve(h, http.MethodGet, "/api/v1/meta/ready", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"ok"`)
	assert.Contains(t, rr.Body.String(), `"name":"detector"`)

	rr = serve(h, http.MethodGet, "/api/v1/meta/detector", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"languages":`)
}

func TestMount_RegistersPorts(t *testing.T) {
	newAPI(t)
	_, ok := module.PortsAs[any]("detect")
	assert.True(t, ok)
}

func TestMount_Extras(t *testing.T) {
	h := newAPI(t)

	serve(h, http.MethodGet, "/api/v1/detect/languages", "")
	rr := serve(h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "wordlang_http_requests_total")

	rr = serve(h, http.MethodGet, "/api/docs/doc.json", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "/detect/text")

	assert.Equal(t, http.StatusNotFound, serve(h, http.MethodGet, "/debug/pprof/", "").Code)
}
