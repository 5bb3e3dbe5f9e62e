// Package module mounts the meta endpoints
package module

import (
	"time"

	modkit "wordlang/internal/modkit"
	"wordlang/internal/modkit/httpkit"
	metahttp "wordlang/internal/services/api/meta/http"
)

// Module serves /meta
type Module struct {
	modkit.Built
}

// New builds the meta module. checks back the readiness probe
func New(deps modkit.Deps, checks []metahttp.Check, opts ...modkit.Option) *Module {
	d := metahttp.Deps{
		ServiceName: deps.Cfg.Prefix("CORE_API_").MayString("SERVICE_NAME", "wordlang-api"),
		StartedAt:   time.Now(),
		Checks:      checks,
	}
	base := []modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
		modkit.WithRoutes(func(r httpkit.Router) { metahttp.Register(r, d) }),
	}
	return &Module{Built: modkit.Build(append(base, opts...)...)}
}

// Ports is empty, meta exposes nothing to other modules
func (m *Module) Ports() any { return nil }
