package middleware

import (
	"net/http"
	"runtime/debug"

	perr "wordlang/internal/platform/errors"
	"wordlang/internal/platform/logger"
	phttp "wordlang/internal/platform/net/http"
)

// Recover turns a handler panic into a 500 envelope with the panic code and
// logs the stack
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}
			logger.C(r.Context()).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")
			phttp.WriteError(w, r, perr.PanicErrf("internal error"))
		}()
		next.ServeHTTP(w, r)
	})
}
