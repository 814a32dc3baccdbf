package persistence

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/favorite-food/internal/domain/audit"
)

type postgresAuditRepo struct {
	db *pgxpool.Pool
}

func NewPostgresAuditRepo(db *pgxpool.Pool) audit.Repository {
	return &postgresAuditRepo{db: db}
}

func (r *postgresAuditRepo) Append(ctx context.Context, e *audit.Entry) error {
	query, args, err := psql.
		Insert("account_audit").
		Columns("user_id", "event_type", "occurred_at").
		Values(e.UserID, string(e.EventType), e.OccurredAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build append audit query: %w", err)
	}

	if err := r.db.QueryRow(ctx, query, args...).Scan(&e.ID); err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}
	return nil
}

func (r *postgresAuditRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*audit.Entry, error) {
	query, args, err := psql.
		Select("id", "user_id", "event_type", "occurred_at").
		From("account_audit").
		Where("user_id = ?", userID).
		OrderBy("occurred_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list audit query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	defer rows.Close()

	entries := make([]*audit.Entry, 0)
	for rows.Next() {
		e := &audit.Entry{}
		var eventType string
		if err := rows.Scan(&e.ID, &e.UserID, &eventType, &e.OccurredAt); err != nil {
			return nil, fmt.Errorf("failed to scan audit row: %w", err)
		}
		e.EventType = audit.EventType(eventType)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audit rows: %w", err)
	}
	return entries, nil
}
