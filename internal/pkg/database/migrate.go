package database

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
)

//go:embed schema.sql
var schemaSQL string

// Migrate creates the tables if needed and applies the column upgrades that
// older databases are missing. It is safe to run on every boot.
func Migrate(ctx context.Context, q Querier) error {
	// No arguments: pgx sends this over the simple protocol so the
	// multi-statement script runs as a single Exec.
	if _, err := q.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}

	if err := addUsernameColumn(ctx, q); err != nil {
		return fmt.Errorf("add username column: %w", err)
	}

	return nil
}

func addUsernameColumn(ctx context.Context, q Querier) error {
	exists, err := columnExists(ctx, q, "users", "username")
	if err != nil {
		return err
	}
	if exists {
		slog.Debug("migration skipped, users.username already exists")
		return nil
	}

	slog.Info("running migration: adding users.username")
	if _, err := q.Exec(ctx, `ALTER TABLE users ADD COLUMN username TEXT`); err != nil {
		return err
	}
	// NULLs never collide in a unique index, so legacy rows stay valid.
	if _, err := q.Exec(ctx, `CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username ON users(username)`); err != nil {
		return err
	}
	return nil
}

func columnExists(ctx context.Context, q Querier, table, column string) (bool, error) {
	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM information_schema.columns
			WHERE table_schema = current_schema() AND table_name = $1 AND column_name = $2
		)`, table, column).Scan(&exists)
	return exists, err
}
