package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/promisinganuj/kids-vocabulary-app/pkg/ctxutil"
)

const requestIDHeader = "X-Request-Id"

// RequestID tags every request with an identifier. An incoming
// X-Request-Id is trusted so IDs survive proxy hops; otherwise a fresh
// UUID is generated. The ID goes into the context and the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
	})
}
