// ABOUTME: User domain model for the BestChallenges API
// ABOUTME: The stored password hash is never serialized in responses

package models

import "time"

// User represents an account in the user store.
type User struct {
	ID             int       `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
