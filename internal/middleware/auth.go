package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/mercato/mercato-api/internal/model"
)

type contextKey string

const userKey contextKey = "user"

// Resolver turns a bearer token into an authenticated user.
// *service.AuthService satisfies it.
type Resolver interface {
	Resolve(ctx context.Context, token string) (*model.User, error)
}

// Auth returns middleware that extracts a Bearer token from the
// Authorization header, resolves it to a user, and stores the user in
// the request context. Every failure mode gets the same 401 body so a
// caller cannot tell a bad token from a vanished account.
func Auth(resolver Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || token == "" {
				writeUnauthorized(w)
				return
			}

			user, err := resolver.Resolve(r.Context(), token)
			if err != nil {
				writeUnauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext extracts the authenticated user from the request context.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(userKey).(*model.User)
	return user, ok
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "Token inválido ou expirado"})
}
