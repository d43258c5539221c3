package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent so the
// full list re-runs safely on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// The activity collection persists as a single JSON document under a
// namespaced key, mirroring the browser local-storage layout this tool
// replaced. The kv table keeps that contract while gaining durability
// and atomic writes from SQLite.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS kv (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
}
