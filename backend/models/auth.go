// ABOUTME: Auth request/response models for login and current-user endpoints
// ABOUTME: Error responses use the {"detail": ...} shape the frontend expects

package models

// LoginRequest represents JSON login credentials.
// Exactly one of Username/Email is expected to be populated.
type LoginRequest struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

// Token represents a successful login response.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ErrorResponse represents an API error body.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
