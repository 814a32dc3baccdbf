package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/favorite-food/internal/application/service"
	"github.com/khoahotran/favorite-food/internal/domain/audit"
	"github.com/khoahotran/favorite-food/internal/domain/session"
	"github.com/khoahotran/favorite-food/internal/domain/user"
	"github.com/khoahotran/favorite-food/pkg/apperror"
	"github.com/khoahotran/favorite-food/pkg/auth"
	"github.com/khoahotran/favorite-food/pkg/logger"
	"github.com/khoahotran/favorite-food/pkg/validation"
)

type SignUpUseCase struct {
	userRepo  user.Repository
	sessions  session.Store
	jwtSvc    *auth.JWTService
	publisher service.EventPublisher
	logger    logger.Logger
}

func NewSignUpUseCase(repo user.Repository, sessions session.Store, jwtSvc *auth.JWTService, publisher service.EventPublisher, log logger.Logger) *SignUpUseCase {
	return &SignUpUseCase{
		userRepo:  repo,
		sessions:  sessions,
		jwtSvc:    jwtSvc,
		publisher: publisher,
		logger:    log,
	}
}

type SignUpInput struct {
	Email    string
	Password string
}

func (uc *SignUpUseCase) Execute(ctx context.Context, input SignUpInput) (*AuthOutput, error) {
	ctx, span := tracer.Start(ctx, "SignUp")
	defer span.End()

	if err := credentialError(validation.ValidateCredentials(input.Email, input.Password)); err != nil {
		span.RecordError(err)
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		err = apperror.NewInternal("failed to hash password", err)
		span.RecordError(err)
		return nil, err
	}

	u := &user.User{
		ID:           uuid.New(),
		Email:        user.NormalizeEmail(input.Email),
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := uc.userRepo.Create(ctx, u); err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			err = apperror.NewConflict(apperror.CodeEmailInUse, "An account", "email", u.Email)
		} else {
			uc.logger.Error("Failed to create user", err, zap.String("email", u.Email))
			err = apperror.NewInternal("failed to create user", err)
		}
		span.RecordError(err)
		return nil, err
	}

	out, err := openSession(ctx, uc.sessions, uc.jwtSvc, u.ID)
	if err != nil {
		uc.logger.Error("Failed to open session after sign up", err, zap.String("user_id", u.ID.String()))
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.String("user_id", u.ID.String()))
	uc.logger.Info("Account created", zap.String("user_id", u.ID.String()))
	service.PublishAsync(uc.publisher, uc.logger, audit.NewEvent(audit.EventSignedUp, u.ID))

	return out, nil
}
