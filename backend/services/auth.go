// ABOUTME: Authentication service for the login and current-user flows
// ABOUTME: Resolves users by username or email and checks bcrypt password hashes

package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/palomiteras-org/BestChallenges/backend/models"
)

// Errors returned by the auth service. Handlers map these to HTTP responses.
var (
	ErrInvalidCredentials = errors.New("incorrect username/email or password")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService authenticates users and resolves the current user from a token.
type AuthService struct {
	users  UserStore
	tokens *TokenService
}

// NewAuthService creates an auth service over the given stores.
func NewAuthService(users UserStore, tokens *TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Authenticate looks a user up by username, then by email, and checks the
// password. Returns ErrInvalidCredentials when either step fails; the caller
// cannot distinguish an unknown account from a wrong password.
func (s *AuthService) Authenticate(usernameOrEmail, password string) (*models.User, error) {
	user, ok := s.users.GetByUsername(usernameOrEmail)
	if !ok {
		user, ok = s.users.GetByEmail(usernameOrEmail)
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// IssueToken creates an access token for an authenticated user.
func (s *AuthService) IssueToken(user *models.User) (*models.Token, error) {
	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return nil, err
	}
	return &models.Token{AccessToken: token, TokenType: "bearer"}, nil
}

// UserByUsername resolves a user record for an already-verified username.
func (s *AuthService) UserByUsername(username string) (*models.User, error) {
	user, ok := s.users.GetByUsername(username)
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}
