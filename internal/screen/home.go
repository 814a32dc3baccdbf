package screen

import (
	"context"
	"errors"
	"time"

	"github.com/khoahotran/favorite-food/pkg/client"
	"github.com/khoahotran/favorite-food/pkg/logger"
	"github.com/khoahotran/favorite-food/pkg/validation"
)

type HomeScreen struct {
	GivenName    string
	FamilyName   string
	FavoriteFood string
	UpdatedAt    time.Time

	FormErrors map[string]string
	Error      string
	Notice     string
	Loading    bool

	backend Backend
	msgs    *Catalog
	log     logger.Logger
}

func NewHomeScreen(backend Backend, msgs *Catalog, log logger.Logger) *HomeScreen {
	return &HomeScreen{
		FormErrors: map[string]string{},
		backend:    backend,
		msgs:       msgs,
		log:        log,
	}
}

// Load fills the fields from the stored profile. A user without a profile
// keeps empty fields.
func (s *HomeScreen) Load(ctx context.Context) {
	s.Loading = true
	defer func() { s.Loading = false }()
	s.Error = ""

	p, err := s.backend.GetProfile(ctx)
	if errors.Is(err, client.ErrProfileNotFound) {
		s.log.Info("No profile stored for this user yet")
		return
	}
	if err != nil {
		s.log.Error("Failed to load profile", err)
		s.Error = s.msgs.Text(MsgLoadProfile)
		return
	}
	s.apply(p)
}

// Update writes all three fields, replacing the stored profile.
func (s *HomeScreen) Update(ctx context.Context) {
	s.Loading = true
	defer func() { s.Loading = false }()
	s.Error = ""
	s.Notice = ""

	errs := validation.ValidateProfile(s.GivenName, s.FamilyName, s.FavoriteFood)
	s.FormErrors = localize(s.msgs, "home", errs)
	if !errs.Valid() {
		s.Error = s.msgs.Text(MsgUpdateProfile)
		return
	}

	p, err := s.backend.PutProfile(ctx, client.Profile{
		GivenName:    s.GivenName,
		FamilyName:   s.FamilyName,
		FavoriteFood: s.FavoriteFood,
	})
	if err != nil {
		s.log.Error("Failed to update profile", err)
		s.Error = s.msgs.Text(MsgUpdateProfile)
		return
	}
	s.apply(p)
	s.Notice = s.msgs.Text(MsgProfileUpdated)
}

func (s *HomeScreen) SignOut(ctx context.Context) Navigation {
	s.Error = ""
	if err := s.backend.SignOut(ctx); err != nil {
		s.log.Error("Failed to sign out", err)
		s.Error = s.msgs.Text(MsgSignOutFailed)
		return NavNone
	}
	return NavLogin
}

func (s *HomeScreen) apply(p *client.Profile) {
	s.GivenName = p.GivenName
	s.FamilyName = p.FamilyName
	s.FavoriteFood = p.FavoriteFood
	s.UpdatedAt = p.UpdatedAt
}
