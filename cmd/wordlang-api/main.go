// @title         wordlang API
// @version       0.1.0
// @description   Word segmentation and candidate language detection

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wordlang/internal/platform/config"
	"wordlang/internal/platform/logger"
	phttp "wordlang/internal/platform/net/http"

	"wordlang/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// http server (reads CORE_API_PORT)
	srv := phttp.NewServer(apiCfg)

	// mount our API, detect itself reads CORE_DETECT_*
	err := api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Logger:         l,
			Origins:        apiCfg.MayCSV("CORS_ORIGINS", nil),
			Timeout:        apiCfg.MayDuration("TIMEOUT", 30*time.Second),
			SlowRequest:    apiCfg.MayDuration("SLOW", time.Second),
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
			EnableMetrics:  apiCfg.MayBool("METRICS", true),
		},
	)
	if err != nil {
		l.Panic().Err(err).Msg("api.Mount failed")
	}

	// run until signalled
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
