// ABOUTME: Declarative route table for API endpoints
// ABOUTME: Defines all routes with their HTTP methods, handlers, and middleware

package handlers

import (
	"net/http"
	"time"

	"github.com/palomiteras-org/BestChallenges/backend/middleware"
)

// Route defines an API endpoint with its HTTP method and handler.
type Route struct {
	Method  string           // HTTP method (GET, POST, etc.)
	Path    string           // URL path (e.g., "/api/auth/me")
	Handler http.HandlerFunc // Handler function, already wrapped with route middleware
}

// Routes returns all API routes for registration. Route-specific middleware
// (rate limiting on login, bearer auth on protected endpoints) is applied
// here; global middleware (logging, CORS) is applied at registration time.
func (h *Handler) Routes(verifier middleware.TokenVerifier) []Route {
	var loginLimiter *middleware.RateLimiter
	if h.cfg == nil || h.cfg.RateLimitEnabled {
		limit := 5
		if h.cfg != nil {
			limit = h.cfg.RateLimitLogin
		}
		loginLimiter = middleware.NewRateLimiter(limit, time.Minute)
	}

	limitLogin := middleware.RateLimit(loginLimiter, middleware.ClientIP)
	requireAuth := middleware.RequireAuth(verifier)

	return []Route{
		// Liveness & welcome
		{Method: http.MethodGet, Path: "/{$}", Handler: h.Root},
		{Method: http.MethodGet, Path: "/health", Handler: h.Health},

		// Auth
		{Method: http.MethodPost, Path: "/api/auth/login", Handler: limitLogin(h.Login)},
		{Method: http.MethodPost, Path: "/api/auth/login/json", Handler: limitLogin(h.LoginJSON)},
		{Method: http.MethodGet, Path: "/api/auth/me", Handler: requireAuth(h.Me)},

		// Dashboard
		{Method: http.MethodGet, Path: "/api/dashboard", Handler: requireAuth(h.Dashboard)},
	}
}

// NewMux builds the API mux with global middleware applied to every route.
func (h *Handler) NewMux(verifier middleware.TokenVerifier) *http.ServeMux {
	mux := http.NewServeMux()
	for _, route := range h.Routes(verifier) {
		wrapped := middleware.Chain(route.Handler,
			middleware.LogRequest,
			middleware.CORS(h.corsOrigins()),
		)
		mux.HandleFunc(route.Method+" "+route.Path, wrapped)

		// Preflight requests arrive as OPTIONS and must reach the CORS
		// middleware rather than 405 at the mux. Even GET endpoints get
		// preflighted when the request carries an Authorization header.
		mux.HandleFunc(http.MethodOptions+" "+route.Path, wrapped)
	}
	return mux
}

func (h *Handler) corsOrigins() []string {
	if h.cfg == nil {
		return nil
	}
	return h.cfg.CORSAllowedOrigins
}
