package inmemory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/khoahotran/favorite-food/internal/domain/audit"
)

// AuditLog stands in for both the event publisher and the audit table when
// the server runs without Kafka and Postgres.
type AuditLog struct {
	mu      sync.Mutex
	entries []audit.Entry
}

func NewAuditLog() *AuditLog {
	return &AuditLog{}
}

func (l *AuditLog) Publish(_ context.Context, e audit.Event) error {
	return l.Append(context.Background(), &audit.Entry{UserID: e.UserID, EventType: e.Type, OccurredAt: e.OccurredAt})
}

func (l *AuditLog) Append(_ context.Context, e *audit.Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	e.ID = int64(len(l.entries) + 1)
	l.entries = append(l.entries, *e)
	return nil
}

func (l *AuditLog) ListByUser(_ context.Context, userID uuid.UUID, limit int) ([]*audit.Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]*audit.Entry, 0)
	for i := range l.entries {
		if l.entries[i].UserID == userID {
			e := l.entries[i]
			out = append(out, &e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].OccurredAt.Equal(out[j].OccurredAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].OccurredAt.After(out[j].OccurredAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
