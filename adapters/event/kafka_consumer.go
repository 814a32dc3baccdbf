package event

import (
	"context"
	"errors"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/favorite-food/internal/config"
	"github.com/khoahotran/favorite-food/internal/domain/audit"
	"github.com/khoahotran/favorite-food/pkg/logger"
)

const AccountAuditGroup = "account-audit-group"

const maxRetryDelay = 30 * time.Second

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type AccountEventHandler func(ctx context.Context, e audit.Event) error

type AccountEventConsumer struct {
	reader  messageReader
	logger  logger.Logger
	backoff func(attempt int) time.Duration
}

func NewAccountEventConsumer(cfg config.Config, log logger.Logger) *AccountEventConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    TopicAccountEvents,
		GroupID:  AccountAuditGroup,
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	return &AccountEventConsumer{reader: reader, logger: log, backoff: retryDelay}
}

func retryDelay(attempt int) time.Duration {
	d := 500 * time.Millisecond << min(attempt-1, 6)
	return min(d, maxRetryDelay)
}

// Run feeds every account event to handle until ctx is done. A message is
// committed once handled or when its payload cannot be decoded. A handler
// error retries the same message with backoff; the partition does not move
// past a message until it is handled.
func (c *AccountEventConsumer) Run(ctx context.Context, handle AccountEventHandler) error {
	c.logger.Info("Worker listening", zap.String("topic", TopicAccountEvents), zap.String("group", AccountAuditGroup))

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return nil
			}
			c.logger.Error("Failed to read message from Kafka", err)
			continue
		}

		fields := []zap.Field{
			zap.String("key", string(msg.Key)),
			zap.Int("partition", msg.Partition),
			zap.Int64("offset", msg.Offset),
		}

		e, err := DecodeAccountEvent(msg.Value)
		if err != nil {
			c.logger.Error("Skipping undecodable account event", err, fields...)
			c.commit(ctx, msg)
			continue
		}

		fields = append(fields, zap.String("event_type", string(e.Type)))
		if !c.handleUntilDone(ctx, handle, e, fields) {
			return nil
		}

		c.logger.Debug("Processed account event", fields...)
		c.commit(ctx, msg)
	}
}

// handleUntilDone reports false when ctx ended before handle succeeded.
func (c *AccountEventConsumer) handleUntilDone(ctx context.Context, handle AccountEventHandler, e audit.Event, fields []zap.Field) bool {
	for attempt := 1; ; attempt++ {
		err := handle(ctx, e)
		if err == nil {
			return true
		}
		if ctx.Err() != nil {
			return false
		}
		delay := c.backoff(attempt)
		c.logger.Error("Failed to process account event, retrying", err,
			append(fields, zap.Int("attempt", attempt), zap.Duration("retry_in", delay))...)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return false
		case <-timer.C:
		}
	}
}

func (c *AccountEventConsumer) commit(ctx context.Context, msg kafka.Message) {
	if err := c.reader.CommitMessages(ctx, msg); err != nil {
		c.logger.Error("Failed to commit message", err, zap.Int64("offset", msg.Offset))
	}
}

func (c *AccountEventConsumer) Close() error {
	return c.reader.Close()
}
