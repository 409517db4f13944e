package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/taskboard-backend/migrations"
)

// openMigrations opens a database/sql handle (goose requires *sql.DB) and a
// goose provider over the embedded migrations. The caller closes db.
func openMigrations(ctx context.Context, dsn string) (*goose.Provider, *sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("sql.Open: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("db ping: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("goose new provider: %w", err)
	}

	return provider, db, nil
}

// Migrate applies all pending migrations and returns the applied ones.
func Migrate(ctx context.Context, dsn string) ([]*goose.MigrationResult, error) {
	provider, db, err := openMigrations(ctx, dsn)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	results, err := provider.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("goose up: %w", err)
	}
	return results, nil
}

// MigrationStatus reports the state of every known migration.
func MigrationStatus(ctx context.Context, dsn string) ([]*goose.MigrationStatus, error) {
	provider, db, err := openMigrations(ctx, dsn)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	status, err := provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("goose status: %w", err)
	}
	return status, nil
}

// ErrPendingMigrations is reported by the migration health check.
var ErrPendingMigrations = errors.New("pending migrations")

// MigrationCheck returns a health probe that fails while embedded migrations
// are not yet applied. It shares the pool instead of opening a second
// connection set.
func MigrationCheck(pool *pgxpool.Pool) (func(ctx context.Context) error, error) {
	provider, err := goose.NewProvider(goose.DialectPostgres, stdlib.OpenDBFromPool(pool), migrations.FS)
	if err != nil {
		return nil, fmt.Errorf("goose new provider: %w", err)
	}

	return func(ctx context.Context) error {
		pending, err := provider.HasPending(ctx)
		if err != nil {
			return fmt.Errorf("goose has pending: %w", err)
		}
		if pending {
			return ErrPendingMigrations
		}
		return nil
	}, nil
}
