// Package store provides file-backed persistence for user accounts and
// uploaded documents.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"pdf-replace-engine/internal/domain"
)

const usersFileName = "users.json"

// FileCredentialStore keeps user records in a single JSON file. Every
// registration rewrites the whole file, which is fine for the expected
// write volume. The mutex serializes the load+mutate+save cycle so two
// racing registrations cannot lose a record.
type FileCredentialStore struct {
	path   string
	hasher domain.PasswordHasher
	logger domain.Logger

	mu sync.Mutex
}

// NewFileCredentialStore creates a credential store persisted under dir.
func NewFileCredentialStore(dir string, hasher domain.PasswordHasher, logger domain.Logger) *FileCredentialStore {
	return &FileCredentialStore{
		path:   filepath.Join(dir, usersFileName),
		hasher: hasher,
		logger: logger,
	}
}

// Register creates a new account. The username is normalized to
// lowercase before any lookup or write.
func (s *FileCredentialStore) Register(username, password string) (*domain.User, error) {
	username = normalizeUsername(username)

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return nil, err
	}

	if _, exists := users[username]; exists {
		return nil, domain.ErrUsernameTaken
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	users[username] = user

	if err := s.save(users); err != nil {
		return nil, err
	}

	s.logger.Info("User registered", "username", username)
	return &user, nil
}

// Verify checks a username/password pair against the stored hash.
func (s *FileCredentialStore) Verify(username, password string) (*domain.User, error) {
	username = normalizeUsername(username)

	s.mu.Lock()
	users, err := s.load()
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	user, exists := users[username]
	if !exists {
		return nil, domain.ErrInvalidCredentials
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	return &user, nil
}

// Exists reports whether a username resolves to a registered account.
func (s *FileCredentialStore) Exists(username string) bool {
	username = normalizeUsername(username)

	s.mu.Lock()
	users, err := s.load()
	s.mu.Unlock()
	if err != nil {
		return false
	}

	_, exists := users[username]
	return exists
}

// load reads the whole user file. A missing file means no users yet.
func (s *FileCredentialStore) load() (map[string]domain.User, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]domain.User), nil
		}
		return nil, fmt.Errorf("failed to read user store: %w", err)
	}

	users := make(map[string]domain.User)
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("failed to decode user store: %w", err)
	}
	return users, nil
}

// save rewrites the whole user file. The data goes to a scratch file
// first and is renamed into place, so a crash or write error mid-save
// never truncates the live store; at most the in-flight write is lost.
func (s *FileCredentialStore) save(users map[string]domain.User) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode user store: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write user store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace user store: %w", err)
	}
	return nil
}

func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
