// Package api provides the HTTP API for the application
package api

import (
	"context"
	"time"

	"wordlang/internal/core/version"
	"wordlang/internal/platform/config"
	"wordlang/internal/platform/logger"
	phttp "wordlang/internal/platform/net/http"

	"wordlang/internal/modkit"
	"wordlang/internal/modkit/httpkit"
	"wordlang/internal/modkit/module"
	"wordlang/internal/modkit/swaggerkit"

	metahttp "wordlang/internal/services/api/meta/http"
	metamod "wordlang/internal/services/api/meta/module"
	detectdom "wordlang/internal/services/detect/domain"
	detectmod "wordlang/internal/services/detect/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	Origins        []string
	Timeout        time.Duration
	SlowRequest    time.Duration
	EnableSwagger  bool
	EnableProfiler bool
	EnableMetrics  bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) error {
	deps := modkit.Deps{Log: *logger.Named("api"), Cfg: opt.Config}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	dopt := detectmod.FromConfig(deps.Cfg)
	if len(dopt.HTTP.Origins) == 0 {
		dopt.HTTP.Origins = opt.Origins
	}
	detect, err := detectmod.New(deps, dopt)
	if err != nil {
		return err
	}
	det := module.MustPortsOf[detectdom.DetectorPort](detect)

	mods := []module.Module{
		metamod.New(deps, []metahttp.Check{{Name: "detector", Fn: probe(det)}}),
		detect,
	}

	swaggerkit.Register(func(spec map[string]any) {
		if info, ok := spec["info"].(map[string]any); ok {
			info["version"] = version.Info().Version
		}
	})

	stack := httpkit.CommonStack(httpkit.StackOptions{
		Origins: opt.Origins,
		Timeout: opt.Timeout,
		Slow:    opt.SlowRequest,
	})

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
		phttp.MountMetrics(r, "/metrics", opt.EnableMetrics)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
	return nil
}

// probe runs a tiny detection so readiness covers the resolver tables
func probe(det detectdom.DetectorPort) func(context.Context) error {
	return func(ctx context.Context) error {
		_, err := det.Detect(ctx, detectdom.DetectInput{Text: "ok"})
		return err
	}
}
