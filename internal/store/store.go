// Package store opens the relational store, runs schema migrations (via
// goose), and vends repository implementations for the configured driver.
//
// Two drivers are supported: "sqlite" (the default single-user desktop
// store) and "pgx" for a PostgreSQL database.
package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	pgmigrations "github.com/mcorbu/shelterdesk/internal/migrations/postgres"
	sqlitemigrations "github.com/mcorbu/shelterdesk/internal/migrations/sqlite"
	"github.com/mcorbu/shelterdesk/internal/repositories/animals"
	"github.com/mcorbu/shelterdesk/internal/repositories/credentials"
	"github.com/mcorbu/shelterdesk/internal/repositories/requests"
)

// Driver names accepted by Open.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

// Store owns the database handle and the repositories bound to it.
type Store struct {
	db          *sql.DB
	credentials credentials.Repository
	animals     animals.Repository
	requests    requests.Repository
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// runMigrations applies the embedded migrations for the given driver.
func runMigrations(ctx context.Context, driver string, db *sql.DB) error {
	switch driver {
	case DriverSQLite:
		goose.SetBaseFS(sqlitemigrations.Migrations)
		if err := goose.SetDialect("sqlite3"); err != nil {
			return err
		}
	case DriverPostgres:
		goose.SetBaseFS(pgmigrations.Migrations)
		if err := goose.SetDialect("pgx"); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported store driver: %s", driver)
	}
	return gooseUpContext(ctx, db, ".")
}

// Open connects to the store named by driver/dsn, applies migrations, and
// wires the repositories. The caller owns the returned Store and must Close it.
func Open(ctx context.Context, driver, dsn string) (*Store, error) {
	if driver != DriverSQLite && driver != DriverPostgres {
		return nil, fmt.Errorf("unsupported store driver: %s", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	if err := runMigrations(ctx, driver, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	s := &Store{db: db}
	switch driver {
	case DriverSQLite:
		s.credentials = credentials.NewSQLiteRepository(db)
		s.animals = animals.NewSQLiteRepository(db)
		s.requests = requests.NewSQLiteRepository(db)
	case DriverPostgres:
		s.credentials = credentials.NewPostgresRepository(db)
		s.animals = animals.NewPostgresRepository(db)
		s.requests = requests.NewPostgresRepository(db)
	}
	return s, nil
}

// Conn exposes the underlying handle, e.g. for transactions via dbx.WithTx.
func (s *Store) Conn() *sql.DB { return s.db }

// Credentials returns the credential/profile repository.
func (s *Store) Credentials() credentials.Repository { return s.credentials }

// Animals returns the catalog repository.
func (s *Store) Animals() animals.Repository { return s.animals }

// Requests returns the adoption-request repository.
func (s *Store) Requests() requests.Repository { return s.requests }

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }
