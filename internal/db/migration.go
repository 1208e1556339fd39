package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// The UNIQUE constraint on users.email is load-bearing: registration does a
// check-then-insert without a transaction, so the index is what actually
// prevents two concurrent registrations from both succeeding.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		full_name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS trades (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id),
		trade_date DATE NOT NULL,
		pair TEXT NOT NULL,
		direction TEXT NOT NULL,
		entry_price NUMERIC NOT NULL,
		exit_price NUMERIC NOT NULL,
		lot_size NUMERIC NOT NULL,
		stop_loss NUMERIC,
		take_profit NUMERIC,
		profit_loss NUMERIC NOT NULL,
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_trades_user_date ON trades (user_id, trade_date)`,
	`CREATE TABLE IF NOT EXISTS journal_entries (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id),
		entry_date DATE NOT NULL,
		emotion_before TEXT NOT NULL,
		emotion_after TEXT NOT NULL,
		lesson_learned TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_journal_user_date ON journal_entries (user_id, entry_date)`,
}

// Migrate creates the schema if it does not exist. Statements are
// idempotent, so running at every startup is safe.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
