// ABOUTME: Tests for the whoami and logout commands
// ABOUTME: Uses a temp config dir so the real token file is never touched

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/palomiteras-org/BestChallenges/cli/internal/client"
	"github.com/palomiteras-org/BestChallenges/cli/internal/session"
)

// withTempConfig points the session file store at a temp directory.
func withTempConfig(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func saveToken(t *testing.T, token string) {
	t.Helper()
	store := session.NewFileStore(session.DefaultConfigDir())
	if err := store.Save(token); err != nil {
		t.Fatalf("failed to seed token: %v", err)
	}
}

func TestWhoami_NotLoggedIn(t *testing.T) {
	withTempConfig(t)

	var buf bytes.Buffer
	exitCode := runWhoami(context.Background(), &buf)

	if exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", exitCode)
	}
	if !bytes.Contains(buf.Bytes(), []byte("Not logged in")) {
		t.Error("expected not-logged-in message")
	}
}

func TestWhoami_ValidToken(t *testing.T) {
	withTempConfig(t)
	saveToken(t, "tok-valid")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-valid" {
			t.Errorf("expected bearer header, got %q", got)
		}
		json.NewEncoder(w).Encode(client.User{ID: 1, Username: "testuser", Email: "test@example.com", IsActive: true})
	}))
	defer server.Close()

	apiURL = server.URL
	defer func() { apiURL = "" }()

	var buf bytes.Buffer
	exitCode := runWhoami(context.Background(), &buf)

	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d (output %s)", exitCode, buf.String())
	}
	if !bytes.Contains(buf.Bytes(), []byte("testuser <test@example.com>")) {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func TestWhoami_RejectedToken(t *testing.T) {
	withTempConfig(t)
	saveToken(t, "tok-stale")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Could not validate credentials"})
	}))
	defer server.Close()

	apiURL = server.URL
	defer func() { apiURL = "" }()

	var buf bytes.Buffer
	exitCode := runWhoami(context.Background(), &buf)

	if exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", exitCode)
	}
	if !bytes.Contains(buf.Bytes(), []byte("Not logged in")) {
		t.Error("expected not-logged-in message for rejected token")
	}

	// The stale token must be gone.
	store := session.NewFileStore(session.DefaultConfigDir())
	token, _ := store.Load()
	if token != "" {
		t.Error("expected rejected token to be cleared")
	}
}

func TestLogout(t *testing.T) {
	withTempConfig(t)
	saveToken(t, "tok-1")

	var buf bytes.Buffer
	exitCode := runLogout(&buf)

	if exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", exitCode)
	}
	if !bytes.Contains(buf.Bytes(), []byte("Logged out")) {
		t.Error("expected logged-out message")
	}

	store := session.NewFileStore(session.DefaultConfigDir())
	token, _ := store.Load()
	if token != "" {
		t.Error("expected token to be removed")
	}

	// Logging out again still succeeds.
	if exitCode := runLogout(&buf); exitCode != 0 {
		t.Errorf("expected idempotent logout, got exit code %d", exitCode)
	}
}
