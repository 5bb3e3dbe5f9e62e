// Package net holds request context helpers shared by the HTTP and websocket transports
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type sessionKey struct{}

// WithRequest stores the request id where chi's RequestID middleware keeps it,
// and the websocket session id. Empty ids are skipped
func WithRequest(ctx context.Context, reqID, sessionID string) context.Context {
	if reqID != "" {
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	if sessionID != "" {
		ctx = context.WithValue(ctx, sessionKey{}, sessionID)
	}
	return ctx
}

// RequestID returns the request id or ""
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }

// SessionID returns the stream session id or ""
func SessionID(ctx context.Context) string {
	s, _ := ctx.Value(sessionKey{}).(string)
	return s
}
