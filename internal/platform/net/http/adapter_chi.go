package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	perr "wordlang/internal/platform/errors"
)

type chiRouter struct{ r chi.Router }

// AdaptChi wraps m as a Router. Unknown routes and methods answer with envelopes
func AdaptChi(m *chi.Mux) Router {
	m.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, perr.NotFoundf("no route for %s", r.URL.Path))
	})
	m.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, perr.NotFoundf("no route for %s %s", r.Method, r.URL.Path))
	})
	return chiRouter{r: m}
}

func (c chiRouter) Get(p string, h Handler)  { c.r.Get(p, h) }
func (c chiRouter) Post(p string, h Handler) { c.r.Post(p, h) }

func (c chiRouter) Handle(p string, h http.Handler) { c.r.Handle(p, h) }

func (c chiRouter) Use(mw ...func(http.Handler) http.Handler) { c.r.Use(mw...) }

func (c chiRouter) Route(pattern string, fn func(Router)) {
	c.r.Route(pattern, func(sub chi.Router) { fn(chiRouter{r: sub}) })
}
