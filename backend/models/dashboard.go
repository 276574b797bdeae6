// ABOUTME: Dashboard payload models for the post-login landing page
// ABOUTME: Profile stats, friend count, and challenge count per user

package models

// Profile holds the gamification stats shown on the dashboard profile card.
type Profile struct {
	Points            int `json:"points"`
	Perseverance      int `json:"perseverance"`
	Level             int `json:"level"`
	ResistancePoints  int `json:"resistance_points"`
	MindPoints        int `json:"mind_points"`
	ForcePoints       int `json:"force_points"`
	FlexibilityPoints int `json:"flexibility_points"`
}

// Friends holds the friends card summary.
type Friends struct {
	Count int `json:"count"`
}

// Challenges holds the challenges card summary.
type Challenges struct {
	Count int `json:"count"`
}

// DashboardResponse is the full dashboard payload for one user.
type DashboardResponse struct {
	Profile    Profile    `json:"profile"`
	Friends    Friends    `json:"friends"`
	Challenges Challenges `json:"challenges"`
}
