// ABOUTME: User repository with an in-memory implementation
// ABOUTME: Seeds the demo accounts the frontend and e2e tests rely on

package services

import (
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/palomiteras-org/BestChallenges/backend/models"
)

// UserStore provides lookup access to user accounts.
type UserStore interface {
	GetByUsername(username string) (*models.User, bool)
	GetByEmail(email string) (*models.User, bool)
}

// InMemoryUserStore keeps users in a map. Good enough for the demo app;
// a database-backed store would implement the same interface.
type InMemoryUserStore struct {
	mu     sync.RWMutex
	users  map[int]*models.User
	nextID int
}

// NewInMemoryUserStore creates a store pre-populated with the demo accounts.
func NewInMemoryUserStore() *InMemoryUserStore {
	s := &InMemoryUserStore{
		users:  make(map[int]*models.User),
		nextID: 1,
	}

	now := time.Now().UTC()
	s.create(&models.User{
		Username:       "testuser",
		Email:          "test@example.com",
		HashedPassword: mustHash("password123"),
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	s.create(&models.User{
		Username:       "johndoe",
		Email:          "john@example.com",
		HashedPassword: mustHash("securepass"),
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	})

	return s
}

func (s *InMemoryUserStore) create(u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = s.nextID
	s.users[u.ID] = u
	s.nextID++
}

// GetByUsername returns the user with the given username.
func (s *InMemoryUserStore) GetByUsername(username string) (*models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return u, true
		}
	}
	return nil, false
}

// GetByEmail returns the user with the given email.
func (s *InMemoryUserStore) GetByEmail(email string) (*models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}
	return nil, false
}

// mustHash bcrypt-hashes a seed password. Only called at startup with
// known-good input, so a failure is a programming error.
func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}
