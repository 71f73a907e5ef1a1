package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/pawerflow/question-service/pkg/ctxutil"
)

// RequestIDHeader carries the request correlation ID in both directions.
const RequestIDHeader = "X-Request-Id"

const maxRequestIDLength = 128

// RequestID propagates the caller's X-Request-Id or generates a UUID when it
// is missing or oversized. The ID is echoed on the response.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" || len(id) > maxRequestIDLength {
				id = uuid.New().String()
			}
			ctx := ctxutil.WithRequestID(r.Context(), id)
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
