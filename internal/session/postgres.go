package session

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

const createSessionsTable = `CREATE TABLE IF NOT EXISTS console_sessions (
	id           TEXT PRIMARY KEY,
	access_token TEXT NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// PostgresStore keeps sessions in the console_sessions table.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates the sessions table when missing.
func NewPostgresStore(ctx context.Context, db *sql.DB) (*PostgresStore, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if _, err := db.ExecContext(ctx, createSessionsTable); err != nil {
		return nil, err
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Get(ctx context.Context, id string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var token string
	err := s.db.QueryRowContext(ctx, `SELECT access_token FROM console_sessions WHERE id = $1`, id).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return token, true, nil
}

func (s *PostgresStore) Set(ctx context.Context, id, token string) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := s.db.ExecContext(ctx, `INSERT INTO console_sessions (id, access_token) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET access_token = EXCLUDED.access_token`, id, token)
	return err
}

func (s *PostgresStore) Clear(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := s.db.ExecContext(ctx, `DELETE FROM console_sessions WHERE id = $1`, id)
	return err
}
