// Package middleware provides HTTP middleware for authentication.
package middleware

import (
	"net/http"
	"strings"
)

// TokenValidator validates bearer tokens. It is an interface so the
// middleware does not depend on a concrete JWT implementation.
type TokenValidator interface {
	ValidateToken(tokenString string) error
}

// Auth creates middleware that requires a valid Bearer token on every
// request it wraps.
func Auth(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			token := strings.TrimSpace(parts[1])
			if token == "" || validator.ValidateToken(token) != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
