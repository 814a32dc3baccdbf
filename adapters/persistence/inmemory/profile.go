package inmemory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/khoahotran/favorite-food/internal/domain/profile"
)

type ProfileRepo struct {
	mu    sync.RWMutex
	items map[uuid.UUID]profile.Profile
}

func NewProfileRepo() *ProfileRepo {
	return &ProfileRepo{items: make(map[uuid.UUID]profile.Profile)}
}

func (r *ProfileRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*profile.Profile, error) {
	r.mu.RLock()
	p, ok := r.items[userID]
	r.mu.RUnlock()
	if !ok {
		return nil, profile.ErrProfileNotFound
	}
	return &p, nil
}

func (r *ProfileRepo) Put(_ context.Context, p *profile.Profile) error {
	r.mu.Lock()
	r.items[p.UserID] = *p
	r.mu.Unlock()
	return nil
}
