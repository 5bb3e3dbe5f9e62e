package modkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	phttp "wordlang/internal/platform/net/http"
)

func ok(body string) phttp.Handler {
	return func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte(body)) }
}

func TestBuild_LaterOptionsWin(t *testing.T) {
	b := Build(WithName("detect"), WithPrefix("/detect"), WithName("lang"), WithPrefix("lang/"))
	assert.Equal(t, "lang", b.Name())
	assert.Equal(t, "/lang", b.Prefix())
}

func TestBuild_RequiresNameAndPrefix(t *testing.T) {
	b := Build()
	assert.Panics(t, func() { b.Name() })
	assert.Panics(t, func() { b.Prefix() })
}

func TestMountRoutes(t *testing.T) {
	var order []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}
	b := Build(
		WithName("detect"),
		WithPrefix("/detect"),
		WithMiddlewares(tag("a")),
		WithMiddlewares(tag("b")),
		WithRoutes(func(r phttp.Router) { r.Get("/languages", ok("langs")) }),
		WithRoutes(func(r phttp.Router) { r.Post("/text", ok("text")) }),
	)
	assert.Len(t, b.Middlewares(), 2)

	mux := chi.NewRouter()
	b.MountRoutes(phttp.AdaptChi(mux))

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/detect/languages", nil))
	assert.Equal(t, "langs", rr.Body.String())
	assert.Equal(t, []string{"a", "b"}, order)

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/detect/text", nil))
	assert.Equal(t, "text", rr.Body.String())

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/languages", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
