package screen

import (
	"context"

	"go.uber.org/zap"

	"github.com/khoahotran/favorite-food/pkg/client"
	"github.com/khoahotran/favorite-food/pkg/logger"
	"github.com/khoahotran/favorite-food/pkg/validation"
)

type RegisterScreen struct {
	Email           string
	Password        string
	ConfirmPassword string

	FormErrors map[string]string
	FormValid  bool
	Error      string
	Loading    bool

	backend Backend
	msgs    *Catalog
	log     logger.Logger
}

func NewRegisterScreen(backend Backend, msgs *Catalog, log logger.Logger) *RegisterScreen {
	return &RegisterScreen{
		FormErrors: map[string]string{},
		backend:    backend,
		msgs:       msgs,
		log:        log,
	}
}

func (s *RegisterScreen) Validate() bool {
	errs := validation.ValidateRegister(s.Email, s.Password, s.ConfirmPassword)
	s.FormErrors = localize(s.msgs, "register", errs)
	s.FormValid = errs.Valid()
	return s.FormValid
}

func (s *RegisterScreen) Submit(ctx context.Context) Navigation {
	s.Loading = true
	defer func() { s.Loading = false }()

	if !s.Validate() {
		return NavNone
	}

	if _, err := s.backend.SignUp(ctx, s.Email, s.Password); err != nil {
		s.log.Warn("Sign-up failed", zap.String("code", client.CodeOf(err)), zap.Error(err))
		s.Error = s.msgs.Text(MsgRegisterFailed) + ": " + serverMessage(err)
		return NavNone
	}

	s.Error = ""
	return NavHome
}

func (s *RegisterScreen) GoToLogin() Navigation {
	return NavLogin
}
