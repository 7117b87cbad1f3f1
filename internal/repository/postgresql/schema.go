package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/database"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            UUID PRIMARY KEY,
		username      VARCHAR(150) NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS punches (
		id         UUID PRIMARY KEY,
		kind       VARCHAR(3) NOT NULL CHECK (kind IN ('IN', 'OUT')),
		punched_at TIMESTAMPTZ NOT NULL,
		user_id    UUID NOT NULL REFERENCES users (id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_punches_user_time ON punches (user_id, punched_at)`,
	`CREATE TABLE IF NOT EXISTS vacations (
		id         UUID PRIMARY KEY,
		start_date DATE NOT NULL,
		end_date   DATE NOT NULL,
		user_id    UUID NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CHECK (start_date <= end_date)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_vacations_user ON vacations (user_id, start_date)`,
}

// Migrate creates the tables that are missing. It is safe to run repeatedly.
func Migrate(ctx context.Context, db *database.DB) error {
	return NewTransactor(db).WithTransaction(ctx, func(ctx context.Context) error {
		q := GetQuerier(ctx, db)
		for _, stmt := range schema {
			if _, err := q.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("apply schema: %w", err)
			}
		}
		return nil
	})
}
