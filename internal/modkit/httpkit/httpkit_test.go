package httpkit

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	perr "wordlang/internal/platform/errors"
	phttp "wordlang/internal/platform/net/http"
)

type textReq struct {
	Text string `json:"text" validate:"required"`
}

func newMux(mount func(Router)) *chi.Mux {
	mux := chi.NewRouter()
	mount(phttp.AdaptChi(mux))
	return mux
}

func send(t *testing.T, h http.Handler, method, path, body string, hdr ...string) (*httptest.ResponseRecorder, phttp.Envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for i := 0; i+1 < len(hdr); i += 2 {
		req.Header.Set(hdr[i], hdr[i+1])
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	var env phttp.Envelope
	if rr.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env), rr.Body.String())
	}
	return rr, env
}

func TestPostJSON(t *testing.T) {
	mux := newMux(func(r Router) {
		PostJSON(r, "/text", func(_ *http.Request, in textReq) (any, error) {
			return strings.ToUpper(in.Text), nil
		}, JSONOptions{MaxBytes: 32, DisallowUnknown: true})
	})

	rr, env := send(t, mux, http.MethodPost, "/text", `{"text":"київ"}`)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "КИЇВ", env.Data)

	rr, env = send(t, mux, http.MethodPost, "/text", `{}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, perr.ErrorCodeValidation, env.Code)
	assert.Equal(t, "text", env.Field)

	rr, _ = send(t, mux, http.MethodPost, "/text", `{"text":"`+strings.Repeat("a", 40)+`"}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
}

func TestGetAndPost(t *testing.T) {
	mux := newMux(func(r Router) {
		Get(r, "/languages", func(*http.Request) (any, error) { return []string{"uk"}, nil })
		Post(r, "/raw", func(*http.Request) (any, error) { return nil, perr.UTF8f("bad byte") })
		Get(r, "/custom", func(*http.Request) (any, error) {
			return phttp.Response{Status: http.StatusAccepted, Body: "queued"}, nil
		})
		Get(r, "/plain", func(*http.Request) (any, error) { return nil, errors.New("boom") })
	})

	rr, env := send(t, mux, http.MethodGet, "/languages", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []any{"uk"}, env.Data)

	rr, env = send(t, mux, http.MethodPost, "/raw", "\xff")
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, perr.ErrorCodeUTF8, env.Code)

	rr, env = send(t, mux, http.MethodGet, "/custom", "")
	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.Equal(t, "queued", env.Data)

	rr, env = send(t, mux, http.MethodGet, "/plain", "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "boom", env.Error)
}

func TestMountAPI(t *testing.T) {
	var hit string
	mw := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hit = r.URL.Path
			next.ServeHTTP(w, r)
		})
	}
	mux := newMux(func(r Router) {
		MountAPI(r, "/v2/", []func(http.Handler) http.Handler{mw}, func(api Router) {
			Get(api, "/ping", func(*http.Request) (any, error) { return "pong", nil })
		})
		MountAPIV1(r, nil, func(api Router) {
			Get(api, "/ping", func(*http.Request) (any, error) { return "pong", nil })
		})
	})

	rr, _ := send(t, mux, http.MethodGet, "/api/v2/ping", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "/api/v2/ping", hit)

	hit = ""
	rr, _ = send(t, mux, http.MethodGet, "/api/v1/ping", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, hit)
}

func TestCommonStack(t *testing.T) {
	mux := newMux(func(r Router) {
		MountAPIV1(r, CommonStack(StackOptions{Origins: []string{"https://app.example"}}), func(api Router) {
			Get(api, "/ok", func(*http.Request) (any, error) { return "ok", nil })
			Get(api, "/panic", func(*http.Request) (any, error) { panic("table missing") })
		})
	})

	rr, env := send(t, mux, http.MethodGet, "/api/v1/ok/", "", "X-Request-Id", "req-9")
	assert.Equal(t, http.StatusOK, rr.Code, "trailing slash is stripped")
	assert.Equal(t, "req-9", env.RequestID)
	assert.Contains(t, rr.Header().Get("Cache-Control"), "no-cache")

	rr, env = send(t, mux, http.MethodGet, "/api/v1/panic", "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, perr.ErrorCodePanic, env.Code)
	assert.NotEmpty(t, env.RequestID)

	rr, _ = send(t, mux, http.MethodOptions, "/api/v1/ok", "",
		"Origin", "https://app.example", "Access-Control-Request-Method", http.MethodGet)
	assert.Equal(t, "https://app.example", rr.Header().Get("Access-Control-Allow-Origin"))
}
