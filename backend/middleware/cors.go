// ABOUTME: CORS middleware for browser clients of the API
// ABOUTME: Echoes allowed origins with credentials and handles preflight OPTIONS

package middleware

import (
	"net/http"
	"slices"
)

// CORS returns middleware that adds CORS headers for the configured origins.
// An origin not on the allow list gets no CORS headers, which makes the
// browser block the response. OPTIONS preflights are answered directly.
func CORS(allowedOrigins []string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" && slices.Contains(allowedOrigins, origin) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
				w.Header().Set("Vary", "Origin")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next(w, r)
		}
	}
}
