// Package store provides the volatile user registry storage. State lives for
// the process lifetime only; there is no persistence behind it.
package store

import (
	"context"
	"sync"

	"github.com/Shozab-N18/StreamingServiceAPI/internal/user/models"
	"github.com/Shozab-N18/StreamingServiceAPI/pkg/platform/sentinel"
)

// InMemory keeps users in a map keyed by email, guarded by a single RWMutex.
// Create performs its uniqueness checks and the insert under one write lock
// so two racing registrations for the same username or email cannot both
// succeed.
type InMemory struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewInMemory() *InMemory {
	return &InMemory{users: make(map[string]models.User)}
}

// Create inserts the user if both uniqueness invariants hold. The username
// scan runs before the email key check so callers see conflicts in the
// contract order. Nothing is written on failure.
func (s *InMemory) Create(_ context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == user.Username {
			return sentinel.ErrUsernameTaken
		}
	}
	if _, ok := s.users[user.Email]; ok {
		return sentinel.ErrEmailTaken
	}

	s.users[user.Email] = user.Clone()
	return nil
}

// FindByEmail returns a deep copy of the stored record, or ErrNotFound.
func (s *InMemory) FindByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if user, ok := s.users[email]; ok {
		return user.Clone(), nil
	}
	return models.User{}, sentinel.ErrNotFound
}

// List returns copies of all stored users in unspecified order.
func (s *InMemory) List(_ context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, 0, len(s.users))
	for _, user := range s.users {
		out = append(out, user.Clone())
	}
	return out, nil
}
