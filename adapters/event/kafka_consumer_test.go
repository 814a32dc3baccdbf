package event

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/favorite-food/internal/domain/audit"
	"github.com/khoahotran/favorite-food/pkg/logger"
)

// scriptedReader replays steps in order, then cancels the run.
type scriptedReader struct {
	steps     []readStep
	cancel    context.CancelFunc
	committed []int64
}

type readStep struct {
	msg kafka.Message
	err error
}

func (r *scriptedReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.steps) == 0 {
		r.cancel()
		<-ctx.Done()
		return kafka.Message{}, ctx.Err()
	}
	step := r.steps[0]
	r.steps = r.steps[1:]
	return step.msg, step.err
}

func (r *scriptedReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func (r *scriptedReader) Close() error { return nil }

func eventMessage(t *testing.T, offset int64, e audit.Event) kafka.Message {
	t.Helper()
	value, err := json.Marshal(e)
	require.NoError(t, err)
	return kafka.Message{Offset: offset, Key: []byte(e.UserID.String()), Value: value}
}

func noDelay(int) time.Duration { return 0 }

func TestAccountEventConsumer_Run(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	good := audit.NewEvent(audit.EventSignedUp, uuid.New())
	flaky := audit.NewEvent(audit.EventSignedIn, uuid.New())
	last := audit.NewEvent(audit.EventSignedOut, uuid.New())

	reader := &scriptedReader{
		cancel: cancel,
		steps: []readStep{
			{msg: eventMessage(t, 1, good)},
			{err: errors.New("transient broker error")},
			{msg: kafka.Message{Offset: 2, Value: []byte("{garbage")}},
			{msg: eventMessage(t, 3, flaky)},
			{msg: eventMessage(t, 4, last)},
		},
	}
	c := &AccountEventConsumer{reader: reader, logger: logger.NewNop(), backoff: noDelay}

	var handled []audit.Event
	flakyFailures := 2
	err := c.Run(ctx, func(_ context.Context, e audit.Event) error {
		handled = append(handled, e)
		if e.UserID == flaky.UserID && flakyFailures > 0 {
			flakyFailures--
			return errors.New("db down")
		}
		return nil
	})
	require.NoError(t, err)

	require.Len(t, handled, 5)
	assert.Equal(t, good.UserID, handled[0].UserID)
	for _, e := range handled[1:4] {
		assert.Equal(t, flaky.UserID, e.UserID, "a failed event is retried before the next one is fetched")
	}
	assert.Equal(t, last.UserID, handled[4].UserID)
	assert.Equal(t, []int64{1, 2, 3, 4}, reader.committed)
	assert.NoError(t, c.Close())
}

func TestAccountEventConsumer_FailingEventIsNeverCommitted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stuck := audit.NewEvent(audit.EventProfileUpdated, uuid.New())
	reader := &scriptedReader{
		cancel: cancel,
		steps: []readStep{
			{msg: eventMessage(t, 7, stuck)},
			{msg: eventMessage(t, 8, audit.NewEvent(audit.EventSignedIn, uuid.New()))},
		},
	}
	attempts := 0
	c := &AccountEventConsumer{reader: reader, logger: logger.NewNop(), backoff: noDelay}

	err := c.Run(ctx, func(_ context.Context, e audit.Event) error {
		attempts++
		if attempts == 5 {
			cancel()
		}
		return errors.New("db down")
	})
	require.NoError(t, err)

	assert.Equal(t, 5, attempts)
	assert.Empty(t, reader.committed, "offset 8 must not be committed past the failing offset 7")
	assert.Len(t, reader.steps, 1, "the next message is not fetched while one is failing")
}

func TestRetryDelay(t *testing.T) {
	assert.Equal(t, 500*time.Millisecond, retryDelay(1))
	assert.Equal(t, time.Second, retryDelay(2))
	assert.Equal(t, 16*time.Second, retryDelay(6))
	assert.Equal(t, maxRetryDelay, retryDelay(7))
	assert.Equal(t, maxRetryDelay, retryDelay(50))
}
