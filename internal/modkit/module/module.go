// Package module holds the module contract and the port registry used to
// wire modules together at startup
package module

import phttp "wordlang/internal/platform/net/http"

// Module can mount routes and hands out a port set
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
