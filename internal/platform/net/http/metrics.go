package http

import "github.com/prometheus/client_golang/prometheus/promhttp"

// MountMetrics serves the default prometheus registry at path when enabled
func MountMetrics(r Router, path string, enabled bool) {
	if enabled {
		r.Handle(path, promhttp.Handler())
	}
}
