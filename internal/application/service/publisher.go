package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/khoahotran/favorite-food/internal/domain/audit"
	"github.com/khoahotran/favorite-food/pkg/logger"
)

type EventPublisher interface {
	Publish(ctx context.Context, e audit.Event) error
}

// PublishAsync sends e in the background. Failures are only logged.
func PublishAsync(p EventPublisher, log logger.Logger, e audit.Event) {
	if p == nil {
		return
	}
	go func() {
		if err := p.Publish(context.Background(), e); err != nil {
			log.Error("Failed to publish account event", err,
				zap.String("event_type", string(e.Type)),
				zap.String("user_id", e.UserID.String()),
			)
		}
	}()
}
