// Package modkit builds API modules: a name, a route prefix, middlewares and
// the functions that register the module's routes
package modkit

import (
	"net/http"

	"wordlang/internal/modkit/module"
	"wordlang/internal/platform/config"
	"wordlang/internal/platform/logger"
	phttp "wordlang/internal/platform/net/http"
	str "wordlang/internal/platform/strings"
)

// Module is the surface the API mounts
type Module = module.Module

// Deps are shared by every module
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
}

// Option adjusts a module while it is built
type Option func(*Built)

// WithName sets the module name used in logs and the port registry
func WithName(name string) Option { return func(b *Built) { b.name = name } }

// WithPrefix sets the mount path, eg "/detect"
func WithPrefix(prefix string) Option { return func(b *Built) { b.prefix = prefix } }

// WithMiddlewares appends module scoped middlewares
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Built) { b.mw = append(b.mw, mw...) }
}

// WithRoutes appends a route registration, run in order on mount
func WithRoutes(fn func(phttp.Router)) Option {
	return func(b *Built) { b.routes = append(b.routes, fn) }
}

// Built holds a module's resolved wiring and implements the routing half
// of Module. Modules embed it and add Ports
type Built struct {
	name   string
	prefix string
	mw     []func(http.Handler) http.Handler
	routes []func(phttp.Router)
}

// Build applies opts in order, later options win
func Build(opts ...Option) Built {
	var b Built
	for _, o := range opts {
		o(&b)
	}
	return b
}

// Name returns the module name, panicking when none was set
func (b Built) Name() string { return str.MustString(b.name, "module name") }

// Prefix returns the normalized mount path
func (b Built) Prefix() string { return str.MustPrefix(b.prefix) }

// Middlewares returns the module scoped middlewares
func (b Built) Middlewares() []func(http.Handler) http.Handler { return b.mw }

// MountRoutes mounts the module under its prefix
func (b Built) MountRoutes(r phttp.Router) {
	r.Route(b.Prefix(), func(sub phttp.Router) {
		if len(b.mw) > 0 {
			sub.Use(b.mw...)
		}
		for _, fn := range b.routes {
			fn(sub)
		}
	})
}
