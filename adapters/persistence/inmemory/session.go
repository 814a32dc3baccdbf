package inmemory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/khoahotran/favorite-food/internal/domain/session"
)

// SessionStore drops sessions lazily once they expire.
type SessionStore struct {
	mu    sync.RWMutex
	items map[string]session.Session
	now   func() time.Time
}

func NewSessionStore() *SessionStore {
	return &SessionStore{items: make(map[string]session.Session), now: time.Now}
}

func (s *SessionStore) Create(_ context.Context, sess session.Session) error {
	if sess.ID == "" {
		return errors.New("session: missing id")
	}
	if sess.Expired(s.now()) {
		return errors.New("session: expires_at must be in the future")
	}

	s.mu.Lock()
	s.items[sess.ID] = sess
	s.mu.Unlock()
	return nil
}

func (s *SessionStore) Get(_ context.Context, id string) (*session.Session, error) {
	s.mu.RLock()
	sess, ok := s.items[id]
	s.mu.RUnlock()
	if !ok {
		return nil, session.ErrSessionNotFound
	}

	if sess.Expired(s.now()) {
		s.mu.Lock()
		delete(s.items, id)
		s.mu.Unlock()
		return nil, session.ErrSessionNotFound
	}
	return &sess, nil
}

func (s *SessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.items, id)
	s.mu.Unlock()
	return nil
}
