package middleware

import (
	"net/http"

	"wordlang/internal/platform/logger"
	pnet "wordlang/internal/platform/net"
)

// LogContext hands the request id to logger.C. Mount after RequestID
func LogContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.WithRequest(r.Context(), pnet.RequestID(r.Context()), "")
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
