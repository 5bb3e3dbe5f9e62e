package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"wordlang/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	// Origins allowed by CORS, empty means same origin only
	Origins []string
	// Timeout bounds a request, 0 means 30s. Stream sessions detach from it
	Timeout time.Duration
	// Slow requests log at warn
	Slow time.Duration
}

// CommonStack is the middleware chain in front of every API route
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	timeout := o.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return []func(http.Handler) http.Handler{
		middleware.RequestID,
		middleware.LogContext,
		middleware.RealIP,
		middleware.NoCache,
		middleware.AccessLog(o.Slow),
		middleware.Metrics,
		middleware.Recover,
		middleware.CORS(o.Origins),
		middleware.Compress(flate.BestSpeed),
		middleware.StripSlashes,
		middleware.Timeout(timeout),
	}
}
