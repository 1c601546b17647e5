// Package database provides the PostgreSQL connection pool and the
// transactional unit-of-work helper used by all repositories.
//
// Connections are pooled by database/sql on top of the pgx stdlib driver.
// Never hold a connection across requests — acquire per unit of work via
// WithTx and let every exit path release it.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/ghuser/posledger/pkg/logger"
)

// Queryer is the subset of database/sql methods shared by *sql.DB and
// *sql.Tx. Repository methods that must run inside a caller-controlled
// transaction accept a Queryer instead of reaching for the pool directly.
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// TxRunner runs a function inside a database transaction. The Database type
// implements it; tests substitute an in-memory runner.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(q Queryer) error) error
}

// Database wraps a *sql.DB connection pool.
type Database struct {
	db  *sql.DB
	log logger.Logger
}

// NewPool opens a pooled connection to dbURL and verifies it with a ping.
func NewPool(ctx context.Context, dbURL string, log logger.Logger) (*Database, error) {
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Database{db: db, log: log}, nil
}

// DB returns the underlying pool for read paths that do not need a transaction.
func (d *Database) DB() *sql.DB {
	return d.db
}

// WithTx runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back otherwise; the connection is released on every
// exit path, including panics.
func (d *Database) WithTx(ctx context.Context, fn func(q Queryer) error) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// Ping checks the database connection health.
func (d *Database) Ping(ctx context.Context) error {
	if err := d.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping: %w", err)
	}
	return nil
}

// Close shuts down the connection pool.
func (d *Database) Close() {
	if err := d.db.Close(); err != nil {
		d.log.Error("database close", "error", err)
	}
}
