package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/favorite-food/internal/domain/profile"
	"github.com/khoahotran/favorite-food/pkg/logger"
)

type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, log logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: log}
}

func (r *postgresProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*profile.Profile, error) {
	query, args, err := psql.
		Select("user_id", "given_name", "family_name", "favorite_food", "updated_at").
		From("profiles").
		Where("user_id = ?", userID).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get profile query: %w", err)
	}

	p := &profile.Profile{}
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&p.UserID,
		&p.GivenName,
		&p.FamilyName,
		&p.FavoriteFood,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, profile.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to query profile: %w", err)
	}

	return p, nil
}

// Put replaces the whole document.
func (r *postgresProfileRepo) Put(ctx context.Context, p *profile.Profile) error {
	query, args, err := psql.
		Insert("profiles").
		Columns("user_id", "given_name", "family_name", "favorite_food", "updated_at").
		Values(p.UserID, p.GivenName, p.FamilyName, p.FavoriteFood, p.UpdatedAt).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			given_name = EXCLUDED.given_name,
			family_name = EXCLUDED.family_name,
			favorite_food = EXCLUDED.favorite_food,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build put profile query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}
