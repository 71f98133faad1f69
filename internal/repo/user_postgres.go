package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rogerio-castellano/sales-console/internal/models"
)

// PostgresUserRepository reads the directory from the console_users table.
type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// Migrate creates console_users when it does not exist and seeds it with defaults if empty.
func (r *PostgresUserRepository) Migrate(ctx context.Context, defaults []models.User) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS console_users (
		id    INTEGER PRIMARY KEY,
		login TEXT NOT NULL UNIQUE,
		role  TEXT NOT NULL DEFAULT ''
	)`); err != nil {
		return fmt.Errorf("failed to create console_users: %w", err)
	}

	for _, u := range defaults {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO console_users (id, login, role) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
			u.ID, u.Login, u.Role); err != nil {
			return fmt.Errorf("failed to seed console_users: %w", err)
		}
	}
	return nil
}

func (r *PostgresUserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT id, login, role FROM console_users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Login, &u.Role); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
