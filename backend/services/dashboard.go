// ABOUTME: Dashboard data service producing per-user card summaries
// ABOUTME: Serves demo stats until real challenge tracking lands

package services

import (
	"hash/fnv"

	"github.com/palomiteras-org/BestChallenges/backend/models"
)

// DashboardService builds the dashboard payload for a user.
type DashboardService struct{}

// NewDashboardService creates a dashboard service.
func NewDashboardService() *DashboardService {
	return &DashboardService{}
}

// ForUser returns the dashboard summary for the given user. The numbers are
// demo data derived deterministically from the username so different
// accounts see different (but stable) cards.
func (s *DashboardService) ForUser(user *models.User) *models.DashboardResponse {
	seed := usernameSeed(user.Username)

	return &models.DashboardResponse{
		Profile: models.Profile{
			Points:            1200 + int(seed%800),
			Perseverance:      40 + int(seed%60),
			Level:             3 + int(seed%7),
			ResistancePoints:  100 + int(seed%150),
			MindPoints:        90 + int(seed%120),
			ForcePoints:       80 + int(seed%140),
			FlexibilityPoints: 70 + int(seed%110),
		},
		Friends:    models.Friends{Count: 2 + int(seed%12)},
		Challenges: models.Challenges{Count: 1 + int(seed%5)},
	}
}

func usernameSeed(username string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(username))
	return h.Sum32()
}
