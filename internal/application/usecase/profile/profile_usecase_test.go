package profile

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/favorite-food/internal/domain/audit"
	"github.com/khoahotran/favorite-food/internal/domain/profile"
	"github.com/khoahotran/favorite-food/pkg/apperror"
	"github.com/khoahotran/favorite-food/pkg/logger"
)

type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]profile.Profile
	err      error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[uuid.UUID]profile.Profile)}
}

func (r *fakeProfileRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*profile.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	p, ok := r.profiles[userID]
	if !ok {
		return nil, profile.ErrProfileNotFound
	}
	return &p, nil
}

func (r *fakeProfileRepo) Put(_ context.Context, p *profile.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.profiles[p.UserID] = *p
	return nil
}

type chanPublisher chan audit.Event

func (c chanPublisher) Publish(_ context.Context, e audit.Event) error {
	c <- e
	return nil
}

func TestGetProfile_NotFound(t *testing.T) {
	uc := NewProfileUseCase(newFakeProfileRepo(), nil, logger.NewNop())

	_, err := uc.ExecuteGetProfile(context.Background(), GetProfileInput{UserID: uuid.New()})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Equal(t, apperror.CodeProfileNotFound, apperror.From(err).Code)
}

func TestUpdateThenGet(t *testing.T) {
	repo := newFakeProfileRepo()
	events := make(chanPublisher, 4)
	uc := NewProfileUseCase(repo, events, logger.NewNop())
	userID := uuid.New()

	first, err := uc.ExecuteUpdateProfile(context.Background(), UpdateProfileInput{
		UserID: userID, GivenName: " Ana ", FamilyName: "García", FavoriteFood: "Tacos  ",
	})
	require.NoError(t, err)
	assert.Equal(t, " Ana ", first.Profile.GivenName, "fields are stored as typed")
	assert.Equal(t, "Tacos  ", repo.profiles[userID].FavoriteFood)

	out, err := uc.ExecuteUpdateProfile(context.Background(), UpdateProfileInput{
		UserID: userID, GivenName: "Ana", FavoriteFood: "Mole",
	})
	require.NoError(t, err)
	assert.Equal(t, "", out.Profile.FamilyName)

	got, err := uc.ExecuteGetProfile(context.Background(), GetProfileInput{UserID: userID})
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Profile.GivenName)
	assert.Equal(t, "", got.Profile.FamilyName, "update replaces the whole document")
	assert.Equal(t, "Mole", got.Profile.FavoriteFood)
	assert.False(t, got.Profile.UpdatedAt.IsZero())

	for i := 0; i < 2; i++ {
		select {
		case e := <-events:
			assert.Equal(t, audit.EventProfileUpdated, e.Type)
			assert.Equal(t, userID, e.UserID)
		case <-time.After(2 * time.Second):
			t.Fatal("expected profile.updated event")
		}
	}
}

func TestUpdateProfile_TooLong(t *testing.T) {
	repo := newFakeProfileRepo()
	uc := NewProfileUseCase(repo, nil, logger.NewNop())

	_, err := uc.ExecuteUpdateProfile(context.Background(), UpdateProfileInput{
		UserID: uuid.New(), FavoriteFood: strings.Repeat("x", 101),
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.Empty(t, repo.profiles)
}

func TestProfile_RepoFailures(t *testing.T) {
	repo := newFakeProfileRepo()
	repo.err = errors.New("db down")
	uc := NewProfileUseCase(repo, nil, logger.NewNop())

	_, err := uc.ExecuteGetProfile(context.Background(), GetProfileInput{UserID: uuid.New()})
	assert.ErrorIs(t, err, apperror.ErrInternal)

	_, err = uc.ExecuteUpdateProfile(context.Background(), UpdateProfileInput{UserID: uuid.New()})
	assert.ErrorIs(t, err, apperror.ErrInternal)
}
