package repositories

import (
	"context"
	"database/sql"
	"fmt"
)

// Initialize the SQLite database schema.
func InitSchema(ctx context.Context, db *sql.DB) error {
	createLogQuery := `
	CREATE TABLE IF NOT EXISTS resolution_log (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        origin TEXT NOT NULL,
        destination TEXT NOT NULL,
        outcome TEXT NOT NULL,
        duration_text TEXT NOT NULL DEFAULT '',
        map_link TEXT,
        endpoint TEXT NOT NULL DEFAULT '',
        created_at TEXT NOT NULL
    );
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_resolution_log_created_at
    ON resolution_log(created_at);
	`

	return execSchema(ctx, db, "init schema", []string{createLogQuery, createIndexQuery})
}

// Initialize the PostgreSQL database schema.
func InitPostgresSchema(ctx context.Context, db *sql.DB) error {
	createLogQuery := `
	CREATE TABLE IF NOT EXISTS resolution_log (
        id BIGSERIAL PRIMARY KEY,
        origin TEXT NOT NULL,
        destination TEXT NOT NULL,
        outcome TEXT NOT NULL,
        duration_text TEXT NOT NULL DEFAULT '',
        map_link TEXT NULL,
        endpoint TEXT NOT NULL DEFAULT '',
        created_at TIMESTAMPTZ NOT NULL
    );
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_resolution_log_created_at
    ON resolution_log(created_at DESC);
	`

	return execSchema(ctx, db, "init postgres schema", []string{createLogQuery, createIndexQuery})
}

func execSchema(ctx context.Context, db *sql.DB, op string, statements []string) error {
	if db == nil {
		return fmt.Errorf("%s: DB is nil", op)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin tx: %w", op, err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%s: exec statement #%d: %w", op, i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit tx: %w", op, err)
	}

	return nil
}
