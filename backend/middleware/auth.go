// ABOUTME: Bearer token authentication middleware
// ABOUTME: Verifies access tokens and injects the subject username into context

package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
)

// TokenVerifier validates an access token and returns its subject username.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// contextKey is a private type for context keys to avoid collisions
type contextKey string

const usernameKey contextKey = "username"

// RequireAuth returns middleware that rejects requests without a valid
// Bearer token. The verified subject username is stored in the request
// context for handlers to read via Username.
func RequireAuth(verifier TokenVerifier) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				slog.Debug("Auth rejected: no credentials", "path", r.URL.Path)
				w.Header().Set("WWW-Authenticate", "Bearer")
				writeJSONError(w, "Not authenticated", http.StatusUnauthorized)
				return
			}

			if !strings.HasPrefix(authHeader, "Bearer ") {
				slog.Debug("Auth rejected: invalid format", "path", r.URL.Path)
				w.Header().Set("WWW-Authenticate", "Bearer")
				writeJSONError(w, "Not authenticated", http.StatusUnauthorized)
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			username, err := verifier.Verify(token)
			if err != nil {
				slog.Debug("Auth rejected: invalid token", "path", r.URL.Path, "error", err.Error())
				w.Header().Set("WWW-Authenticate", "Bearer")
				writeJSONError(w, "Could not validate credentials", http.StatusUnauthorized)
				return
			}

			slog.Debug("Auth: valid bearer token", "path", r.URL.Path, "user", username)
			ctx := context.WithValue(r.Context(), usernameKey, username)
			next(w, r.WithContext(ctx))
		}
	}
}

// Username extracts the authenticated username from the request context.
// Returns the empty string if the request did not pass RequireAuth.
func Username(r *http.Request) string {
	username, _ := r.Context().Value(usernameKey).(string)
	return username
}
