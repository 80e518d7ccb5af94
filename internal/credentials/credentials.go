package credentials

import (
	"fmt"

	"auction-house/internal/auctionerrors"
)

// Store maps username -> secret. The auction engine reads it to authorize
// logins and writes to it only through Insert during signup.
//
// Secrets are held as opaque strings; hashing them is the concern of an
// external auth collaborator.
type Store interface {
	// Lookup returns the secret for the username, and whether it exists.
	Lookup(username string) (string, bool)
	// Insert adds the user if the username is free, otherwise fails with
	// ErrUsernameTaken.
	Insert(username, secret string) error
	// All returns a copy of every credential, for persistence.
	All() map[string]string
	// Restore replaces the store contents, for loading and rollback.
	Restore(users map[string]string)
}

// MemoryStore is an in-memory Store implementation.
type MemoryStore struct {
	users map[string]string
}

// NewMemoryStore creates a MemoryStore seeded with the given users.
func NewMemoryStore(users map[string]string) *MemoryStore {
	s := &MemoryStore{users: make(map[string]string, len(users))}
	for name, secret := range users {
		s.users[name] = secret
	}
	return s
}

// Lookup returns the secret for the username, and whether it exists.
func (s *MemoryStore) Lookup(username string) (string, bool) {
	secret, ok := s.users[username]
	return secret, ok
}

// Insert adds the user unless the username is already present.
func (s *MemoryStore) Insert(username, secret string) error {
	if _, exists := s.users[username]; exists {
		return fmt.Errorf("insert user %s: %w", username, auctionerrors.ErrUsernameTaken)
	}
	s.users[username] = secret
	return nil
}

// All returns a copy of every credential.
func (s *MemoryStore) All() map[string]string {
	out := make(map[string]string, len(s.users))
	for name, secret := range s.users {
		out[name] = secret
	}
	return out
}

// Restore replaces the store contents.
func (s *MemoryStore) Restore(users map[string]string) {
	s.users = make(map[string]string, len(users))
	for name, secret := range users {
		s.users[name] = secret
	}
}
