// Package migrator applies goose migrations from an embedded filesystem.
// Each bounded context ships its own migration binary (migrations/<ctx>/run.go)
// that embeds its SQL files and calls RunMigrations at deploy time.
package migrator

import (
	"database/sql"
	"fmt"
	"io/fs"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// RunMigrations applies all pending migrations in files against dbURL.
func RunMigrations(dbURL string, files fs.FS) error {
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close() //nolint:errcheck

	goose.SetBaseFS(files)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
