// ABOUTME: Dashboard handler serving per-user card summaries
// ABOUTME: Responses are cached briefly to keep repeated renders cheap

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/palomiteras-org/BestChallenges/backend/middleware"
)

// Dashboard returns the profile, friends, and challenges summary for the
// authenticated user.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	username := middleware.Username(r)

	cacheKey := "dashboard:" + username
	if cached, found := h.cache.Get(cacheKey); found {
		slog.Debug("Dashboard cache hit", "user", username)
		h.writeJSON(w, http.StatusOK, cached)
		return
	}

	user, err := h.auth.UserByUsername(username)
	if err != nil {
		h.writeError(w, "Could not validate credentials", http.StatusUnauthorized)
		return
	}

	resp := h.dashboard.ForUser(user)
	h.cache.SetWithTTL(cacheKey, resp, h.dashboardTTL())

	h.writeJSON(w, http.StatusOK, resp)
}
