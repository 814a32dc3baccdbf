package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/khoahotran/favorite-food/internal/config"
	"github.com/khoahotran/favorite-food/internal/domain/audit"
	"github.com/khoahotran/favorite-food/pkg/logger"
)

const (
	TopicAccountEvents = "account.events"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaProducerClient struct {
	AccountEventsWriter messageWriter
	logger              logger.Logger
}

func NewKafkaProducerClient(cfg config.Config, log logger.Logger) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	accountWriter := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  TopicAccountEvents,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}

	log.Info("Initialize Kafka Producers successfully.")

	return &KafkaProducerClient{
		AccountEventsWriter: accountWriter,
		logger:              log,
	}, nil
}

// Publish writes e keyed by user id so one user's events stay ordered.
func (c *KafkaProducerClient) Publish(ctx context.Context, e audit.Event) error {
	value, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal account event: %w", err)
	}

	err = c.AccountEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(e.UserID.String()),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("write account event: %w", err)
	}
	return nil
}

func (c *KafkaProducerClient) Close() {
	if c.AccountEventsWriter != nil {
		if err := c.AccountEventsWriter.Close(); err != nil {
			c.logger.Error("Failed to close Kafka writer", err)
		}
	}
	c.logger.Info("Closed Kafka Producers")
}

// DecodeAccountEvent parses a message value written by Publish.
func DecodeAccountEvent(value []byte) (audit.Event, error) {
	var e audit.Event
	if err := json.Unmarshal(value, &e); err != nil {
		return audit.Event{}, fmt.Errorf("unmarshal account event: %w", err)
	}
	return e, nil
}
