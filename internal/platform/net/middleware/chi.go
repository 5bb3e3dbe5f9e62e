// Package middleware holds the HTTP middlewares of the API stack. chi and
// go-chi/cors stay behind this package
package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
)

// chi middlewares used as is
var (
	// RequestID takes X-Request-Id or generates one
	RequestID = chimw.RequestID
	// RealIP trusts X-Forwarded-For and X-Real-IP
	RealIP = chimw.RealIP
	// NoCache marks every response uncacheable
	NoCache = chimw.NoCache
	// StripSlashes routes /detect/text/ like /detect/text
	StripSlashes = chimw.StripSlashes
)

// Timeout cancels the request context after d
func Timeout(d time.Duration) func(http.Handler) http.Handler { return chimw.Timeout(d) }

// Compress gzips and deflates responses at level
func Compress(level int) func(http.Handler) http.Handler { return chimw.Compress(level) }

// CORS allows origins to call the API from a browser. No origins means same origin only
func CORS(origins []string) func(http.Handler) http.Handler {
	return chicors.Handler(chicors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", chimw.RequestIDHeader},
		ExposedHeaders: []string{chimw.RequestIDHeader},
		MaxAge:         300,
	})
}
