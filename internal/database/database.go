package database

import (
	"context"
	"fmt"
	"time"

	"dogwalkservice/internal/config"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

type MethodsDB interface {
	CloseDB() error
	CreateSchema(ctx context.Context) error
	Seed(ctx context.Context, mode string) error
	Reseed(ctx context.Context) error
	HealthCheck(ctx context.Context) error
}

type DB struct {
	*sqlx.DB
}

var _ MethodsDB = (*DB)(nil)

// Open prepares the connection pool without dialing; Initialize does the first round trip.
func Open(cfg *config.Config) (*DB, error) {
	db, err := sqlx.Open("postgres", cfg.DB.DSN(cfg.DB.DbNAME))
	if err != nil {
		return nil, fmt.Errorf("failed to open database handle: %w", err)
	}

	db.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	db.SetMaxIdleConns(min(5, cfg.DB.MaxOpenConns))
	db.SetConnMaxLifetime(30 * time.Minute)

	return &DB{db}, nil
}

// Initialize brings the database to a servable state and records the outcome in ready.
func Initialize(ctx context.Context, cfg *config.Config, db *DB, ready *Readiness) error {
	err := initialize(ctx, cfg, db)
	if err != nil {
		ready.MarkFailed(err)
		return err
	}

	ready.MarkReady()
	return nil
}

func initialize(ctx context.Context, cfg *config.Config, db *DB) error {
	log.Info().Str("host", cfg.DB.DbHOST).Str("dbname", cfg.DB.DbNAME).Msg("connecting to database")

	if err := EnsureDatabase(ctx, cfg.DB); err != nil {
		return err
	}

	if err := db.HealthCheck(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	if err := db.CreateSchema(ctx); err != nil {
		return err
	}

	if err := db.Seed(ctx, cfg.SeedMode); err != nil {
		return err
	}

	log.Info().Str("seed_mode", cfg.SeedMode).Msg("database ready")
	return nil
}

// EnsureDatabase creates the service database through the maintenance database when it is missing.
func EnsureDatabase(ctx context.Context, cfg config.DB) error {
	admin, err := sqlx.ConnectContext(ctx, "postgres", cfg.DSN(cfg.DbADMINNAME))
	if err != nil {
		return fmt.Errorf("failed to connect to maintenance database %s: %w", cfg.DbADMINNAME, err)
	}
	defer admin.Close()

	return ensureDatabase(ctx, admin, cfg.DbNAME)
}

func ensureDatabase(ctx context.Context, admin *sqlx.DB, name string) error {
	var exists bool
	err := admin.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)`, name)
	if err != nil {
		return fmt.Errorf("failed to look up database %s: %w", name, err)
	}

	if exists {
		return nil
	}

	// CREATE DATABASE does not accept bind parameters
	if _, err := admin.ExecContext(ctx, "CREATE DATABASE "+pq.QuoteIdentifier(name)); err != nil {
		return fmt.Errorf("failed to create database %s: %w", name, err)
	}

	log.Info().Str("dbname", name).Msg("database created")
	return nil
}

func (db *DB) CloseDB() error {
	return db.DB.Close()
}

func (db *DB) HealthCheck(ctx context.Context) error {
	if db == nil || db.DB == nil {
		return fmt.Errorf("database connection is not initialized")
	}

	return db.PingContext(ctx)
}

// WithTx runs fn inside a transaction on db, see RunInTx.
func (db *DB) WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	return RunInTx(ctx, db.DB, fn)
}

// RunInTx runs fn inside a transaction, rolling back on error or panic.
func RunInTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
