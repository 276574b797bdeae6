// ABOUTME: Health and root handlers
// ABOUTME: Liveness probe and API welcome message

package handlers

import "net/http"

// Health returns the liveness status probed by deploy tooling and e2e tests.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// Root returns the API welcome message.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"message": "Welcome to BestChallenges API"})
}
