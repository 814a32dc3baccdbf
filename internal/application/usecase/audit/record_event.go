package audit

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/khoahotran/favorite-food/internal/domain/audit"
	"github.com/khoahotran/favorite-food/pkg/logger"
)

var tracer = otel.Tracer("audit_usecase")

type RecordEventUseCase struct {
	repo   audit.Repository
	logger logger.Logger
}

func NewRecordEventUseCase(repo audit.Repository, log logger.Logger) *RecordEventUseCase {
	return &RecordEventUseCase{repo: repo, logger: log}
}

// Execute appends e to the audit trail. Events that can never be stored are
// skipped so the consumer can move past them.
func (uc *RecordEventUseCase) Execute(ctx context.Context, e audit.Event) error {
	ctx, span := tracer.Start(ctx, "RecordEvent",
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(attribute.String("event_type", string(e.Type))),
	)
	defer span.End()

	if !e.Type.Known() {
		uc.logger.Warn("Skipping unknown account event", zap.String("event_type", string(e.Type)))
		return nil
	}
	if e.UserID == uuid.Nil {
		uc.logger.Warn("Skipping account event without user", zap.String("event_type", string(e.Type)))
		return nil
	}

	entry := &audit.Entry{
		UserID:     e.UserID,
		EventType:  e.Type,
		OccurredAt: e.OccurredAt,
	}
	if err := uc.repo.Append(ctx, entry); err != nil {
		span.SetStatus(codes.Error, "append failed")
		return fmt.Errorf("record %s for %s: %w", e.Type, e.UserID, err)
	}

	uc.logger.Debug("Recorded account event",
		zap.String("event_type", string(e.Type)),
		zap.String("user_id", e.UserID.String()),
		zap.Int64("entry_id", entry.ID),
	)
	return nil
}
