package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/favorite-food/internal/domain/user"
	"github.com/khoahotran/favorite-food/pkg/logger"
)

type postgresUserRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresUserRepo(db *pgxpool.Pool, log logger.Logger) user.Repository {
	return &postgresUserRepo{db: db, logger: log}
}

func (r *postgresUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	query, args, err := psql.
		Select("id", "email", "password_hash", "created_at").
		From("users").
		Where("email = ?", user.NormalizeEmail(email)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find user query: %w", err)
	}

	u := &user.User{}
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("error when query user: %w", err)
	}

	return u, nil
}

func (r *postgresUserRepo) Create(ctx context.Context, u *user.User) error {
	query, args, err := psql.
		Insert("users").
		Columns("id", "email", "password_hash", "created_at").
		Values(u.ID, user.NormalizeEmail(u.Email), u.PasswordHash, u.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert user query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return user.ErrEmailTaken
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *postgresUserRepo) UpsertPassword(ctx context.Context, u *user.User) (*user.User, error) {
	query, args, err := psql.
		Insert("users").
		Columns("id", "email", "password_hash", "created_at").
		Values(u.ID, user.NormalizeEmail(u.Email), u.PasswordHash, u.CreatedAt).
		Suffix("ON CONFLICT (email) DO UPDATE SET password_hash = EXCLUDED.password_hash RETURNING id, email, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build upsert user query: %w", err)
	}

	out := &user.User{PasswordHash: u.PasswordHash}
	if err := r.db.QueryRow(ctx, query, args...).Scan(&out.ID, &out.Email, &out.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}
	return out, nil
}
