package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"studenthub-core/internal/domain/entity"
)

const createUsersTable = `CREATE TABLE IF NOT EXISTS users (
	id          BIGSERIAL PRIMARY KEY,
	phone       TEXT NOT NULL UNIQUE,
	location    TEXT,
	is_verified BOOLEAN NOT NULL DEFAULT FALSE,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

const upsertVerifiedUser = `INSERT INTO users (phone, location, is_verified)
VALUES ($1, $2, TRUE)
ON CONFLICT (phone) DO UPDATE SET location = EXCLUDED.location, is_verified = TRUE
RETURNING id, phone, location, is_verified`

type PostgresUserRepository struct {
	db *sql.DB
}

// OpenPostgres opens a pooled connection through the pgx stdlib driver and pings it.
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createUsersTable); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	return nil
}

// UpsertVerified creates the user as verified, or marks an existing one verified.
// The stored location is always replaced, including with NULL.
func (r *PostgresUserRepository) UpsertVerified(ctx context.Context, phone string, location *string) (*entity.User, error) {
	var loc sql.NullString
	if location != nil {
		loc = sql.NullString{String: *location, Valid: true}
	}

	var (
		u      entity.User
		stored sql.NullString
	)
	err := r.db.QueryRowContext(ctx, upsertVerifiedUser, phone, loc).
		Scan(&u.ID, &u.Phone, &stored, &u.IsVerified)
	if err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}
	if stored.Valid {
		u.Location = &stored.String
	}
	return &u, nil
}
