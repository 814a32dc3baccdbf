package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventSignedUp       EventType = "account.signed_up"
	EventSignedIn       EventType = "account.signed_in"
	EventSignedOut      EventType = "account.signed_out"
	EventProfileUpdated EventType = "profile.updated"
)

func (t EventType) Known() bool {
	switch t {
	case EventSignedUp, EventSignedIn, EventSignedOut, EventProfileUpdated:
		return true
	}
	return false
}

type Entry struct {
	ID         int64     `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	EventType  EventType `json:"event_type"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Repository interface {
	Append(ctx context.Context, e *Entry) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*Entry, error)
}

// Event is what gets published on the account events topic.
type Event struct {
	Type       EventType `json:"type"`
	UserID     uuid.UUID `json:"user_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewEvent(t EventType, userID uuid.UUID) Event {
	return Event{Type: t, UserID: userID, OccurredAt: time.Now().UTC()}
}
