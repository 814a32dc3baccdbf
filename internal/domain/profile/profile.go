package profile

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrProfileNotFound = errors.New("profile not found")

// Profile is the per-user document. Writes replace every field.
type Profile struct {
	UserID       uuid.UUID `json:"userId"`
	GivenName    string    `json:"givenName"`
	FamilyName   string    `json:"familyName"`
	FavoriteFood string    `json:"favoriteFood"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type Repository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Profile, error)
	Put(ctx context.Context, p *Profile) error
}
