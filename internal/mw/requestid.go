package mw

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey string

const RequestIDCtxKey contextKey = "request_id"

const requestIDHeader = "X-Request-Id"

// RequestID assigns every request an id, honoring one the caller already
// sent, and echoes it back on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set(requestIDHeader, id)

		ctx := context.WithValue(r.Context(), RequestIDCtxKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDCtxKey).(string); ok {
		return id
	}
	return ""
}
