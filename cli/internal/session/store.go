// ABOUTME: Token persistence for the session manager
// ABOUTME: Stores the access token in the XDG config directory

package session

import (
	"os"
	"path/filepath"
	"strings"
)

// Store persists the access token across process restarts.
type Store interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileStore keeps the token in a file under the user's config directory.
type FileStore struct {
	configDir string
}

// NewFileStore creates a store rooted at the given config directory.
func NewFileStore(configDir string) *FileStore {
	return &FileStore{configDir: configDir}
}

// DefaultConfigDir returns the default config directory following XDG spec
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "bestchallenges")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "bestchallenges")
}

func (fs *FileStore) tokenFile() string {
	return filepath.Join(fs.configDir, "token")
}

// Load reads the persisted token. A missing file means no token.
func (fs *FileStore) Load() (string, error) {
	data, err := os.ReadFile(fs.tokenFile())
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// Save writes the token with owner-only permissions.
func (fs *FileStore) Save(token string) error {
	if err := os.MkdirAll(fs.configDir, 0700); err != nil {
		return err
	}
	return os.WriteFile(fs.tokenFile(), []byte(token), 0600)
}

// Clear removes the persisted token. Clearing an absent token is not an error.
func (fs *FileStore) Clear() error {
	err := os.Remove(fs.tokenFile())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// MemStore keeps the token in memory. Used in tests and for one-shot
// commands that should not touch the config directory.
type MemStore struct {
	token string
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

func (ms *MemStore) Load() (string, error) {
	return ms.token, nil
}

func (ms *MemStore) Save(token string) error {
	ms.token = token
	return nil
}

func (ms *MemStore) Clear() error {
	ms.token = ""
	return nil
}
