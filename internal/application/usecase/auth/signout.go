package auth

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/khoahotran/favorite-food/internal/application/service"
	"github.com/khoahotran/favorite-food/internal/domain/audit"
	"github.com/khoahotran/favorite-food/internal/domain/session"
	"github.com/khoahotran/favorite-food/pkg/apperror"
	"github.com/khoahotran/favorite-food/pkg/logger"
)

type SignOutUseCase struct {
	sessions  session.Store
	publisher service.EventPublisher
	logger    logger.Logger
}

func NewSignOutUseCase(sessions session.Store, publisher service.EventPublisher, log logger.Logger) *SignOutUseCase {
	return &SignOutUseCase{sessions: sessions, publisher: publisher, logger: log}
}

type SignOutInput struct {
	SessionID string
	UserID    uuid.UUID
}

// Execute ends the session. Ending an already-ended session succeeds.
func (uc *SignOutUseCase) Execute(ctx context.Context, input SignOutInput) error {
	ctx, span := tracer.Start(ctx, "SignOut")
	defer span.End()
	span.SetAttributes(attribute.String("user_id", input.UserID.String()))

	if err := uc.sessions.Delete(ctx, input.SessionID); err != nil {
		err = apperror.NewInternal("failed to delete session", err)
		span.RecordError(err)
		return err
	}

	service.PublishAsync(uc.publisher, uc.logger, audit.NewEvent(audit.EventSignedOut, input.UserID))
	return nil
}
