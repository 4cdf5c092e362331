package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schemaVersion is bumped whenever migrations gain a step.
const schemaVersion = 1

// runMigrations creates the key-value schema if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS kv (
			k TEXT PRIMARY KEY,
			v TEXT NOT NULL,
			updated_at INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS schema_meta (
			k TEXT PRIMARY KEY,
			v TEXT NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	_, err := db.ExecContext(ctx,
		`INSERT OR REPLACE INTO schema_meta(k, v) VALUES('version', ?)`,
		fmt.Sprintf("%d", schemaVersion))
	return err
}
