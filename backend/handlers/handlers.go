// ABOUTME: HTTP handlers for the BestChallenges API endpoints
// ABOUTME: Provides shared handler state and JSON response helpers

package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/palomiteras-org/BestChallenges/backend/cache"
	"github.com/palomiteras-org/BestChallenges/backend/config"
	"github.com/palomiteras-org/BestChallenges/backend/models"
	"github.com/palomiteras-org/BestChallenges/backend/services"
)

type Handler struct {
	cfg       *config.Config
	cache     *cache.Cache
	auth      *services.AuthService
	dashboard *services.DashboardService
}

// NewHandler wires the handler set with its services.
func NewHandler(cfg *config.Config, c *cache.Cache, auth *services.AuthService) *Handler {
	return &Handler{
		cfg:       cfg,
		cache:     c,
		auth:      auth,
		dashboard: services.NewDashboardService(),
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) writeError(w http.ResponseWriter, detail string, code int) {
	h.writeJSON(w, code, models.ErrorResponse{Detail: detail})
}

// dashboardTTL returns the configured dashboard cache TTL.
func (h *Handler) dashboardTTL() time.Duration {
	if h.cfg == nil {
		return 30 * time.Second
	}
	return time.Duration(h.cfg.DashboardTTL) * time.Second
}
