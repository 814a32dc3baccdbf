package screen

import (
	"context"

	"go.uber.org/zap"

	"github.com/khoahotran/favorite-food/pkg/client"
	"github.com/khoahotran/favorite-food/pkg/logger"
	"github.com/khoahotran/favorite-food/pkg/validation"
)

type LoginScreen struct {
	Email    string
	Password string

	FormErrors map[string]string
	FormValid  bool
	Error      string
	Loading    bool

	backend Backend
	msgs    *Catalog
	log     logger.Logger
}

func NewLoginScreen(backend Backend, msgs *Catalog, log logger.Logger) *LoginScreen {
	return &LoginScreen{
		FormErrors: map[string]string{},
		backend:    backend,
		msgs:       msgs,
		log:        log,
	}
}

// Validate recomputes FormErrors and FormValid from the current fields.
func (s *LoginScreen) Validate() bool {
	errs := validation.ValidateLogin(s.Email, s.Password)
	s.FormErrors = localize(s.msgs, "login", errs)
	s.FormValid = errs.Valid()
	return s.FormValid
}

func (s *LoginScreen) Submit(ctx context.Context) Navigation {
	s.Loading = true
	defer func() { s.Loading = false }()

	if !s.Validate() {
		return NavNone
	}

	if _, err := s.backend.SignIn(ctx, s.Email, s.Password); err != nil {
		s.log.Warn("Sign-in failed", zap.String("code", client.CodeOf(err)), zap.Error(err))
		if client.CodeOf(err) == client.CodeInvalidCredential {
			s.Error = s.msgs.Text(MsgInvalidCredential)
		} else {
			s.Error = s.msgs.Text(MsgSignInFailed)
		}
		return NavNone
	}

	s.Error = ""
	return NavHome
}

func (s *LoginScreen) GoToRegister() Navigation {
	return NavRegister
}
