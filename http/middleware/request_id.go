package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/xy-planning-network/override"
)

// RequestID adds a uuid to the request context under override.RequestIDKey.
func RequestID() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), override.RequestIDKey, uuid.NewString())
			h.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
