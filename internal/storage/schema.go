package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// Migrate creates the save schema. Dates are stored as YYYY-MM-DD text;
// a NULL last_completed means the habit was never completed.
func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS player (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			name TEXT NOT NULL,
			level INTEGER NOT NULL DEFAULT 1,
			xp INTEGER NOT NULL DEFAULT 0,
			total_xp INTEGER NOT NULL DEFAULT 0,
			gold INTEGER NOT NULL DEFAULT 0,
			strength INTEGER NOT NULL DEFAULT 5,
			intelligence INTEGER NOT NULL DEFAULT 5,
			charisma INTEGER NOT NULL DEFAULT 5,
			vitality INTEGER NOT NULL DEFAULT 5,
			discipline INTEGER NOT NULL DEFAULT 5,
			last_login TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS habits (
			position INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			stat TEXT NOT NULL,
			xp_reward INTEGER NOT NULL,
			difficulty TEXT NOT NULL,
			streak INTEGER NOT NULL DEFAULT 0,
			total_completions INTEGER NOT NULL DEFAULT 0,
			last_completed TEXT,
			created_date TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS quests (
			position INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			xp_reward INTEGER NOT NULL,
			gold_reward INTEGER NOT NULL,
			stat_reward TEXT,
			difficulty TEXT NOT NULL,
			completed INTEGER NOT NULL DEFAULT 0,
			created_date TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS achievements (
			position INTEGER PRIMARY KEY,
			id TEXT NOT NULL UNIQUE
		);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
