// Package auth holds the session gate. There is no token model: the
// currently signed-in user is a single record persisted in the store, at
// most one per deployment.
package auth

import (
	"context"
	"encoding/json"
	"fmt"

	"festiva/internal/model"
	"festiva/internal/store"
)

// SessionStore defines the interface for the current-session slot.
type SessionStore interface {
	Current(ctx context.Context) (model.User, bool)
	Set(ctx context.Context, user model.User) error
	Clear(ctx context.Context) error
}

type sessionStore struct {
	kv store.KV
}

// Ensure sessionStore implements SessionStore
var _ SessionStore = (*sessionStore)(nil)

// NewSessionStore creates a session store over the session key.
func NewSessionStore(kv store.KV) SessionStore {
	return &sessionStore{kv: kv}
}

// Current returns the active session user, if any. Absent or unreadable
// session data reads as no session.
func (s *sessionStore) Current(ctx context.Context) (model.User, bool) {
	data, err := s.kv.Get(ctx, store.KeySession)
	if err != nil || len(data) == 0 {
		return model.User{}, false
	}
	var user model.User
	if err := json.Unmarshal(data, &user); err != nil || user.ID == "" {
		return model.User{}, false
	}
	return user, true
}

// Set replaces the active session with user.
func (s *sessionStore) Set(ctx context.Context, user model.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return s.kv.Set(ctx, store.KeySession, payload)
}

// Clear removes the active session unconditionally.
func (s *sessionStore) Clear(ctx context.Context) error {
	return s.kv.Delete(ctx, store.KeySession)
}
