package inmemory

import (
	"context"
	"sync"

	"github.com/khoahotran/favorite-food/internal/domain/user"
)

type UserRepo struct {
	mu      sync.RWMutex
	byEmail map[string]user.User
}

func NewUserRepo() *UserRepo {
	return &UserRepo{byEmail: make(map[string]user.User)}
}

func (r *UserRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	r.mu.RLock()
	u, ok := r.byEmail[user.NormalizeEmail(email)]
	r.mu.RUnlock()
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return &u, nil
}

func (r *UserRepo) Create(_ context.Context, u *user.User) error {
	key := user.NormalizeEmail(u.Email)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[key]; ok {
		return user.ErrEmailTaken
	}
	stored := *u
	stored.Email = key
	r.byEmail[key] = stored
	return nil
}

func (r *UserRepo) UpsertPassword(_ context.Context, u *user.User) (*user.User, error) {
	key := user.NormalizeEmail(u.Email)

	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.byEmail[key]
	if ok {
		stored.PasswordHash = u.PasswordHash
	} else {
		stored = *u
		stored.Email = key
	}
	r.byEmail[key] = stored
	return &stored, nil
}
