// ABOUTME: Auth handlers for login and current-user endpoints
// ABOUTME: Issues bearer tokens and resolves the authenticated user

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/palomiteras-org/BestChallenges/backend/middleware"
	"github.com/palomiteras-org/BestChallenges/backend/models"
	"github.com/palomiteras-org/BestChallenges/backend/services"
)

// Login authenticates form-encoded credentials (username, password) and
// returns an access token. The username field accepts a username or email.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		h.writeError(w, "Username and password are required", http.StatusBadRequest)
		return
	}

	h.login(w, username, password)
}

// LoginJSON authenticates JSON credentials and returns an access token.
// Exactly one of username/email is expected; either resolves the account.
func (h *Handler) LoginJSON(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	usernameOrEmail := req.Username
	if usernameOrEmail == "" {
		usernameOrEmail = req.Email
	}
	if usernameOrEmail == "" {
		h.writeError(w, "Username or email is required", http.StatusBadRequest)
		return
	}

	h.login(w, usernameOrEmail, req.Password)
}

func (h *Handler) login(w http.ResponseWriter, usernameOrEmail, password string) {
	user, err := h.auth.Authenticate(usernameOrEmail, password)
	if err != nil {
		slog.Warn("Authentication failed", "identifier", usernameOrEmail)
		w.Header().Set("WWW-Authenticate", "Bearer")
		h.writeError(w, "Incorrect username/email or password", http.StatusUnauthorized)
		return
	}

	token, err := h.auth.IssueToken(user)
	if err != nil {
		slog.Error("Failed to issue token", "error", err)
		h.writeError(w, "Failed to create access token", http.StatusInternalServerError)
		return
	}

	slog.Info("User logged in", "username", user.Username)
	h.writeJSON(w, http.StatusOK, token)
}

// Me returns the authenticated user's record. RequireAuth has already
// verified the token and stored the subject username in the context.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	username := middleware.Username(r)
	user, err := h.auth.UserByUsername(username)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			h.writeError(w, "Could not validate credentials", http.StatusUnauthorized)
			return
		}
		h.writeError(w, "Failed to load user", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, user)
}
