package middleware

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey int

const tokenKey ctxKey = 1

// BearerToken extracts the raw token from the Authorization header and
// stores it in the request context. Validation happens in the services,
// so a missing or garbled header simply flows through as a value that
// will not resolve.
func BearerToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authz := r.Header.Get("Authorization")
		token := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))
		ctx := context.WithValue(r.Context(), tokenKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
