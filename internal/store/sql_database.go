package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/recipebookapp/recipebook-server/internal/config"
	"github.com/recipebookapp/recipebook-server/internal/logger"
	"github.com/recipebookapp/recipebook-server/migrations"
)

// DB wraps the raw database connection together with the driver name that
// opened it. The driver name is needed again when goose picks its dialect.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database backend selected by cfg.Driver: PostgreSQL
// by default, SQLite for local file-backed setups.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	case config.DriverPostgres, "":
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Migrate applies all embedded goose migrations to the connected database.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

const (
	transientRetryAttempts = 3
	transientRetryBase     = 50 * time.Millisecond
)

// withRetry runs op, retrying it with exponential backoff when the
// connection's [ErrorClassificator] reports the failure as [Retryable]
// (dropped connection, deadlock rollback, serialization conflict).
// The last error is returned once the attempts are exhausted; sentinel
// wrapping inside op survives the retries unchanged.
//
// Connections without a classificator (SQLite) run op exactly once.
// Only idempotent reads may go through here; writes are never retried.
func (db *DB) withRetry(ctx context.Context, op func(ctx context.Context) error) error {
	if db.errorClassificator == nil {
		return op(ctx)
	}

	backoff := retry.WithMaxRetries(transientRetryAttempts, retry.NewExponential(transientRetryBase))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := op(ctx)
		if err != nil && db.errorClassificator.Classify(err) == Retryable {
			return retry.RetryableError(err)
		}
		return err
	})
}
