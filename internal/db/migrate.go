package db

import (
	"database/sql"
	"fmt"
)

// migrations are run in order on every open. Each statement must be safe to
// re-run (CREATE IF NOT EXISTS), so opening an existing store is a no-op.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS planner_states (
		storage_key TEXT PRIMARY KEY,
		payload     TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS store_meta (
		storage_key TEXT PRIMARY KEY REFERENCES planner_states(storage_key) ON DELETE CASCADE,
		save_count  INTEGER NOT NULL DEFAULT 0,
		last_saved  TEXT NOT NULL
	)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
