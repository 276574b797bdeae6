// ABOUTME: Shared test fixtures for the handlers package
// ABOUTME: Builds a fully wired mux over in-memory services

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/palomiteras-org/BestChallenges/backend/cache"
	"github.com/palomiteras-org/BestChallenges/backend/config"
	"github.com/palomiteras-org/BestChallenges/backend/services"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:               "8000",
		CORSAllowedOrigins: []string{"http://localhost:3000"},
		JWTSecret:          "test-secret",
		TokenExpireMinutes: 30,
		RateLimitEnabled:   false,
		RateLimitLogin:     5,
		DashboardTTL:       30,
	}
}

// newTestMux builds the full API mux over in-memory services, so tests
// exercise routing, middleware, and handlers together.
func newTestMux(t *testing.T, cfg *config.Config) (*http.ServeMux, *services.TokenService) {
	t.Helper()

	users := services.NewInMemoryUserStore()
	tokens := services.NewTokenService(cfg.JWTSecret, time.Duration(cfg.TokenExpireMinutes)*time.Minute)
	auth := services.NewAuthService(users, tokens)

	h := NewHandler(cfg, cache.New(time.Duration(cfg.DashboardTTL)*time.Second), auth)
	return h.NewMux(tokens), tokens
}

func doJSON(t *testing.T, mux *http.ServeMux, req *http.Request) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	var body map[string]interface{}
	if len(rec.Body.Bytes()) > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid JSON body %q: %v", rec.Body.String(), err)
		}
	}
	return rec, body
}

func TestHealth(t *testing.T) {
	mux, _ := newTestMux(t, testConfig())

	rec, body := doJSON(t, mux, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rec.Code)
	}
	if body["status"] != "healthy" {
		t.Errorf("got status field %v, want healthy", body["status"])
	}
}

func TestRoot(t *testing.T) {
	mux, _ := newTestMux(t, testConfig())

	rec, body := doJSON(t, mux, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rec.Code)
	}
	if body["message"] != "Welcome to BestChallenges API" {
		t.Errorf("unexpected welcome message: %v", body["message"])
	}
}

func TestPreflightOnProtectedRoute(t *testing.T) {
	mux, _ := newTestMux(t, testConfig())

	req := httptest.NewRequest(http.MethodOptions, "/api/auth/me", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	req.Header.Set("Access-Control-Request-Headers", "Authorization")

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	// Preflights carry no credentials, so they must not hit the auth check.
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "http://localhost:3000" {
		t.Error("expected CORS headers on preflight response")
	}
}

func TestUnknownPath(t *testing.T) {
	mux, _ := newTestMux(t, testConfig())

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("got status %d, want 404", rec.Code)
	}
}
