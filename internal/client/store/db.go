// Package store opens the local client database and applies schema
// migrations. The database holds only the settings key-value table; the cart
// is deliberately memory-only.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmikhr/stylecart/internal/client/migrations"
	"github.com/pressly/goose/v3"
)

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (creating if needed) the sqlite database at dsn and
// migrates it to the current schema.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
