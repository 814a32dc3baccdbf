package auth

import (
	"context"
	"errors"
	"sync"

	"github.com/khoahotran/favorite-food/internal/domain/audit"
	"github.com/khoahotran/favorite-food/internal/domain/session"
	"github.com/khoahotran/favorite-food/internal/domain/user"
)

type fakeUserRepo struct {
	mu      sync.Mutex
	byEmail map[string]*user.User
	err     error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*user.User)}
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.byEmail[user.NormalizeEmail(email)]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	key := user.NormalizeEmail(u.Email)
	if _, ok := r.byEmail[key]; ok {
		return user.ErrEmailTaken
	}
	cp := *u
	r.byEmail[key] = &cp
	return nil
}

func (r *fakeUserRepo) UpsertPassword(_ context.Context, u *user.User) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := user.NormalizeEmail(u.Email)
	if existing, ok := r.byEmail[key]; ok {
		existing.PasswordHash = u.PasswordHash
		cp := *existing
		return &cp, nil
	}
	cp := *u
	r.byEmail[key] = &cp
	return u, nil
}

type fakeSessionStore struct {
	mu        sync.Mutex
	sessions  map[string]session.Session
	createErr error
	deleteErr error
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]session.Session)}
}

func (s *fakeSessionStore) Create(_ context.Context, sess session.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return s.createErr
	}
	s.sessions[sess.ID] = sess
	return nil
}

func (s *fakeSessionStore) Get(_ context.Context, id string) (*session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, session.ErrSessionNotFound
	}
	return &sess, nil
}

func (s *fakeSessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.sessions, id)
	return nil
}

func (s *fakeSessionStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

type fakePublisher struct {
	events chan audit.Event
	err    error
}

func newFakePublisher() *fakePublisher {
	return &fakePublisher{events: make(chan audit.Event, 16)}
}

func (p *fakePublisher) Publish(_ context.Context, e audit.Event) error {
	p.events <- e
	return p.err
}

var errDB = errors.New("connection refused")
