// ABOUTME: Tests for the login and current-user endpoints
// ABOUTME: Exercises both login bodies, error details, and bearer auth on /me

package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func jsonLogin(t *testing.T, mux *http.ServeMux, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login/json", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return doJSON(t, mux, req)
}

func TestLoginJSONWithUsername(t *testing.T) {
	mux, _ := newTestMux(t, testConfig())

	rec, body := jsonLogin(t, mux, `{"username":"testuser","password":"password123"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	if body["access_token"] == "" || body["access_token"] == nil {
		t.Error("expected access_token in response")
	}
	if body["token_type"] != "bearer" {
		t.Errorf("got token_type %v, want bearer", body["token_type"])
	}
}

func TestLoginJSONWithEmail(t *testing.T) {
	mux, _ := newTestMux(t, testConfig())

	rec, _ := jsonLogin(t, mux, `{"email":"john@example.com","password":"securepass"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
}

func TestLoginJSONWrongPassword(t *testing.T) {
	mux, _ := newTestMux(t, testConfig())

	rec, body := jsonLogin(t, mux, `{"username":"testuser","password":"nope12345"}`)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("got status %d, want 401", rec.Code)
	}
	if body["detail"] != "Incorrect username/email or password" {
		t.Errorf("got detail %v, want incorrect-credentials message", body["detail"])
	}
	if rec.Header().Get("WWW-Authenticate") != "Bearer" {
		t.Error("expected WWW-Authenticate: Bearer header")
	}
}

func TestLoginJSONMissingIdentifier(t *testing.T) {
	mux, _ := newTestMux(t, testConfig())

	rec, body := jsonLogin(t, mux, `{"password":"password123"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", rec.Code)
	}
	if body["detail"] != "Username or email is required" {
		t.Errorf("got detail %v, want missing-identifier message", body["detail"])
	}
}

func TestLoginJSONMalformedBody(t *testing.T) {
	mux, _ := newTestMux(t, testConfig())

	rec, _ := jsonLogin(t, mux, `{"username":`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("got status %d, want 400", rec.Code)
	}
}

func TestLoginForm(t *testing.T) {
	mux, _ := newTestMux(t, testConfig())

	form := url.Values{"username": {"testuser"}, "password": {"password123"}}
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec, body := doJSON(t, mux, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	if body["access_token"] == nil {
		t.Error("expected access_token in response")
	}
}

func TestLoginFormMissingFields(t *testing.T) {
	mux, _ := newTestMux(t, testConfig())

	form := url.Values{"username": {"testuser"}}
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec, body := doJSON(t, mux, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", rec.Code)
	}
	if body["detail"] != "Username and password are required" {
		t.Errorf("got detail %v, want missing-fields message", body["detail"])
	}
}

func TestMeWithToken(t *testing.T) {
	mux, tokens := newTestMux(t, testConfig())

	token, err := tokens.Issue("testuser")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec, body := doJSON(t, mux, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	if body["username"] != "testuser" {
		t.Errorf("got username %v, want testuser", body["username"])
	}
	if body["email"] != "test@example.com" {
		t.Errorf("got email %v, want test@example.com", body["email"])
	}
	if _, leaked := body["hashed_password"]; leaked {
		t.Error("response must not contain the password hash")
	}
}

func TestMeWithoutToken(t *testing.T) {
	mux, _ := newTestMux(t, testConfig())

	rec, body := doJSON(t, mux, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("got status %d, want 401", rec.Code)
	}
	if body["detail"] != "Not authenticated" {
		t.Errorf("got detail %v, want %q", body["detail"], "Not authenticated")
	}
}

func TestMeWithStaleSubject(t *testing.T) {
	mux, tokens := newTestMux(t, testConfig())

	// Token is valid but its subject no longer exists in the store.
	token, err := tokens.Issue("deleted-user")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec, body := doJSON(t, mux, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("got status %d, want 401", rec.Code)
	}
	if body["detail"] != "Could not validate credentials" {
		t.Errorf("got detail %v, want %q", body["detail"], "Could not validate credentials")
	}
}

func TestLoginRateLimited(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitEnabled = true
	cfg.RateLimitLogin = 2
	mux, _ := newTestMux(t, cfg)

	for i := 0; i < 2; i++ {
		rec, _ := jsonLogin(t, mux, `{"username":"testuser","password":"wrong-pass"}`)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("attempt %d: got status %d, want 401", i+1, rec.Code)
		}
	}

	rec, body := jsonLogin(t, mux, `{"username":"testuser","password":"wrong-pass"}`)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("got status %d, want 429", rec.Code)
	}
	if body["detail"] != "Rate limit exceeded" {
		t.Errorf("got detail %v, want %q", body["detail"], "Rate limit exceeded")
	}
}
