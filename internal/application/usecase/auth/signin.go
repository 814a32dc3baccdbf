package auth

import (
	"context"
	"errors"
	"sync"

	"go.opentelemetry.io/otel/attribute"

	"github.com/khoahotran/favorite-food/internal/application/service"
	"github.com/khoahotran/favorite-food/internal/domain/audit"
	"github.com/khoahotran/favorite-food/internal/domain/session"
	"github.com/khoahotran/favorite-food/internal/domain/user"
	"github.com/khoahotran/favorite-food/pkg/apperror"
	"github.com/khoahotran/favorite-food/pkg/auth"
	"github.com/khoahotran/favorite-food/pkg/logger"
	"github.com/khoahotran/favorite-food/pkg/validation"
)

// Compared against when the email is unknown so both failures cost a bcrypt check.
var dummyHash = sync.OnceValue(func() string {
	h, _ := auth.HashPassword("not-a-real-password")
	return h
})

type SignInUseCase struct {
	userRepo  user.Repository
	sessions  session.Store
	jwtSvc    *auth.JWTService
	publisher service.EventPublisher
	logger    logger.Logger
}

func NewSignInUseCase(repo user.Repository, sessions session.Store, jwtSvc *auth.JWTService, publisher service.EventPublisher, log logger.Logger) *SignInUseCase {
	return &SignInUseCase{
		userRepo:  repo,
		sessions:  sessions,
		jwtSvc:    jwtSvc,
		publisher: publisher,
		logger:    log,
	}
}

type SignInInput struct {
	Email    string
	Password string
}

func (uc *SignInUseCase) Execute(ctx context.Context, input SignInInput) (*AuthOutput, error) {
	ctx, span := tracer.Start(ctx, "SignIn")
	defer span.End()

	if err := credentialError(validation.ValidateLogin(input.Email, input.Password)); err != nil {
		span.RecordError(err)
		return nil, err
	}

	u, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			auth.CheckPasswordHash(input.Password, dummyHash())
			err = apperror.NewInvalidCredential("unknown email", nil)
		} else {
			uc.logger.Error("Failed to look up user", err)
			err = apperror.NewInternal("failed to look up user", err)
		}
		span.RecordError(err)
		return nil, err
	}

	if !auth.CheckPasswordHash(input.Password, u.PasswordHash) {
		err := apperror.NewInvalidCredential("incorrect password", nil)
		span.RecordError(err)
		return nil, err
	}

	out, err := openSession(ctx, uc.sessions, uc.jwtSvc, u.ID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.String("user_id", u.ID.String()))
	service.PublishAsync(uc.publisher, uc.logger, audit.NewEvent(audit.EventSignedIn, u.ID))

	return out, nil
}
