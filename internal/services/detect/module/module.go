// Package module wires the detect service and its HTTP transport into the API
package module

import (
	modkit "wordlang/internal/modkit"
	"wordlang/internal/modkit/httpkit"
	detecthttp "wordlang/internal/services/detect/http"
	detectsvc "wordlang/internal/services/detect/service"
)

// Module serves /detect
type Module struct {
	modkit.Built
	ports Ports
}

// New builds the detect module. opt is usually FromConfig(deps.Cfg)
func New(deps modkit.Deps, opt Options, opts ...modkit.Option) (*Module, error) {
	svc, err := detectsvc.New(opt.Service)
	if err != nil {
		return nil, err
	}
	m := &Module{ports: Ports{Detector: svc}}

	base := []modkit.Option{
		modkit.WithName("detect"),
		modkit.WithPrefix("/detect"),
		modkit.WithRoutes(func(r httpkit.Router) { detecthttp.Register(r, svc, opt.HTTP) }),
	}
	m.Built = modkit.Build(append(base, opts...)...)

	deps.Log.Info().
		Str("granularity", string(opt.Service.Granularity)).
		Uint32("margin", opt.Service.Margin).
		Int("workers", opt.Service.Workers).
		Int64("max_bytes", opt.HTTP.MaxBytes).
		Msg("detect module ready")
	return m, nil
}
