package profile

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/favorite-food/internal/application/service"
	"github.com/khoahotran/favorite-food/internal/domain/audit"
	"github.com/khoahotran/favorite-food/internal/domain/profile"
	"github.com/khoahotran/favorite-food/pkg/apperror"
	"github.com/khoahotran/favorite-food/pkg/logger"
	"github.com/khoahotran/favorite-food/pkg/validation"
)

var tracer = otel.Tracer("profile_usecase")

type ProfileUseCase struct {
	profileRepo profile.Repository
	publisher   service.EventPublisher
	logger      logger.Logger
}

func NewProfileUseCase(repo profile.Repository, publisher service.EventPublisher, log logger.Logger) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: repo,
		publisher:   publisher,
		logger:      log,
	}
}

type GetProfileInput struct {
	UserID uuid.UUID
}

type GetProfileOutput struct {
	Profile *profile.Profile
}

func (uc *ProfileUseCase) ExecuteGetProfile(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	ctx, span := tracer.Start(ctx, "GetProfile")
	defer span.End()
	span.SetAttributes(attribute.String("user_id", input.UserID.String()))

	p, err := uc.profileRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, apperror.NewNotFound(apperror.CodeProfileNotFound, "profile", input.UserID.String())
		}
		uc.logger.Error("Failed to load profile", err, zap.String("user_id", input.UserID.String()))
		err = apperror.NewInternal("get profile failed", err)
		span.RecordError(err)
		return nil, err
	}
	return &GetProfileOutput{Profile: p}, nil
}

type UpdateProfileInput struct {
	UserID       uuid.UUID
	GivenName    string
	FamilyName   string
	FavoriteFood string
}

type UpdateProfileOutput struct {
	Profile *profile.Profile
}

// ExecuteUpdateProfile overwrites the stored profile with input, storing the
// fields exactly as given.
func (uc *ProfileUseCase) ExecuteUpdateProfile(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	ctx, span := tracer.Start(ctx, "UpdateProfile")
	defer span.End()
	span.SetAttributes(attribute.String("user_id", input.UserID.String()))

	if errs := validation.ValidateProfile(input.GivenName, input.FamilyName, input.FavoriteFood); !errs.Valid() {
		return nil, apperror.NewInvalidInput(apperror.CodeInvalidArgument, "Profile fields must be at most 100 characters", formatErrors(errs), nil)
	}

	p := &profile.Profile{
		UserID:       input.UserID,
		GivenName:    input.GivenName,
		FamilyName:   input.FamilyName,
		FavoriteFood: input.FavoriteFood,
		UpdatedAt:    time.Now().UTC(),
	}

	if err := uc.profileRepo.Put(ctx, p); err != nil {
		uc.logger.Error("Failed to store profile", err, zap.String("user_id", input.UserID.String()))
		err = apperror.NewInternal("update profile failed", err)
		span.RecordError(err)
		return nil, err
	}

	service.PublishAsync(uc.publisher, uc.logger, audit.NewEvent(audit.EventProfileUpdated, input.UserID))

	return &UpdateProfileOutput{Profile: p}, nil
}

func formatErrors(errs validation.Errors) string {
	parts := make([]string, 0, len(errs))
	for field, reason := range errs {
		parts = append(parts, field+": "+reason)
	}
	return strings.Join(parts, ", ")
}
