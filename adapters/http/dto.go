package http

import (
	"time"

	"github.com/khoahotran/favorite-food/internal/application/usecase/auth"
	"github.com/khoahotran/favorite-food/internal/domain/audit"
	"github.com/khoahotran/favorite-food/internal/domain/profile"
)

// Auth DTOs

type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	AccessToken string    `json:"accessToken"`
	UserID      string    `json:"userId"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

func ToAuthResponse(out *auth.AuthOutput) AuthResponse {
	return AuthResponse{
		AccessToken: out.AccessToken,
		UserID:      out.UserID.String(),
		ExpiresAt:   out.ExpiresAt,
	}
}

// Profile DTOs

type ProfileDTO struct {
	GivenName    string    `json:"givenName"`
	FamilyName   string    `json:"familyName"`
	FavoriteFood string    `json:"favoriteFood"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type UpdateProfileRequest struct {
	GivenName    string `json:"givenName"`
	FamilyName   string `json:"familyName"`
	FavoriteFood string `json:"favoriteFood"`
}

func ToProfileDTO(p *profile.Profile) ProfileDTO {
	return ProfileDTO{
		GivenName:    p.GivenName,
		FamilyName:   p.FamilyName,
		FavoriteFood: p.FavoriteFood,
		UpdatedAt:    p.UpdatedAt,
	}
}

// Account DTOs

type AccountEventDTO struct {
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurredAt"`
}

type AccountEventsResponse struct {
	Events []AccountEventDTO `json:"events"`
}

func ToAccountEventsResponse(entries []*audit.Entry) AccountEventsResponse {
	out := AccountEventsResponse{Events: make([]AccountEventDTO, 0, len(entries))}
	for _, e := range entries {
		out.Events = append(out.Events, AccountEventDTO{Type: string(e.EventType), OccurredAt: e.OccurredAt})
	}
	return out
}
