package state

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// PostgresStorage persists conversation contexts in PostgreSQL so they
// survive process restarts.
type PostgresStorage struct {
	db  *sql.DB
	log *slog.Logger
}

// NewPostgresStorage creates a SQL-backed Storage implementation.
// The user_contexts table is created by the migrations in migrations/.
func NewPostgresStorage(db *sql.DB, log *slog.Logger) Storage {
	if log == nil {
		log = slog.Default()
	}

	return &PostgresStorage{
		db:  db,
		log: log,
	}
}

// GetContext returns the stored context or ErrContextNotFound when absent.
func (s *PostgresStorage) GetContext(ctx context.Context, psid string) (*UserContext, error) {
	const query = `
		SELECT psid, current_context, updated_at
		FROM user_contexts
		WHERE psid = $1
	`

	row := s.db.QueryRowContext(ctx, query, psid)

	var userCtx UserContext
	if err := row.Scan(&userCtx.PSID, &userCtx.Current, &userCtx.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrContextNotFound
		}

		s.log.Error("failed to fetch user context", slog.String("psid", psid), slog.Any("error", err))
		return nil, fmt.Errorf("select user context: %w", err)
	}

	return &userCtx, nil
}

// SetContext upserts the context entry for the user.
func (s *PostgresStorage) SetContext(ctx context.Context, psid string, userCtx *UserContext) error {
	const query = `
		INSERT INTO user_contexts (psid, current_context, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (psid)
		DO UPDATE SET current_context = EXCLUDED.current_context, updated_at = EXCLUDED.updated_at
	`

	userCtx.UpdatedAt = time.Now().UTC()

	if _, err := s.db.ExecContext(ctx, query, psid, string(userCtx.Current), userCtx.UpdatedAt); err != nil {
		s.log.Error("failed to save user context", slog.String("psid", psid), slog.Any("error", err))
		return fmt.Errorf("upsert user context: %w", err)
	}

	return nil
}

// ClearContext removes the stored context for the given user.
func (s *PostgresStorage) ClearContext(ctx context.Context, psid string) error {
	const query = `DELETE FROM user_contexts WHERE psid = $1`

	if _, err := s.db.ExecContext(ctx, query, psid); err != nil {
		s.log.Error("failed to clear user context", slog.String("psid", psid), slog.Any("error", err))
		return fmt.Errorf("delete user context: %w", err)
	}

	return nil
}
