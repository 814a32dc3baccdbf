package audit

import (
	"context"
	"strconv"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/favorite-food/internal/domain/audit"
	"github.com/khoahotran/favorite-food/pkg/apperror"
	"github.com/khoahotran/favorite-food/pkg/logger"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

type ListEventsUseCase struct {
	repo   audit.Repository
	logger logger.Logger
}

func NewListEventsUseCase(repo audit.Repository, log logger.Logger) *ListEventsUseCase {
	return &ListEventsUseCase{repo: repo, logger: log}
}

type ListEventsInput struct {
	UserID uuid.UUID
	// Limit of zero means DefaultListLimit.
	Limit int
}

type ListEventsOutput struct {
	Entries []*audit.Entry
}

// Execute returns the caller's most recent account events, newest first.
func (uc *ListEventsUseCase) Execute(ctx context.Context, input ListEventsInput) (*ListEventsOutput, error) {
	ctx, span := tracer.Start(ctx, "ListEvents")
	defer span.End()
	span.SetAttributes(attribute.String("user_id", input.UserID.String()))

	limit := input.Limit
	if limit == 0 {
		limit = DefaultListLimit
	}
	if limit < 0 || limit > MaxListLimit {
		return nil, apperror.NewInvalidInput(apperror.CodeInvalidArgument,
			"limit must be between 1 and "+strconv.Itoa(MaxListLimit),
			"limit: "+strconv.Itoa(input.Limit), nil)
	}

	entries, err := uc.repo.ListByUser(ctx, input.UserID, limit)
	if err != nil {
		uc.logger.Error("Failed to list account events", err, zap.String("user_id", input.UserID.String()))
		err = apperror.NewInternal("list account events failed", err)
		span.RecordError(err)
		return nil, err
	}
	return &ListEventsOutput{Entries: entries}, nil
}
