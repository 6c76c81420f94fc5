package database

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Tables lists the service tables in foreign-key dependency order.
var Tables = []string{"users", "dogs", "walk_requests", "walk_applications", "walk_ratings"}

//go:embed migrations/001_create_tables.sql
var schema string

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func (db *DB) CreateSchema(ctx context.Context) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	log.Info().Int("tables", len(Tables)).Msg("database schema ready")
	return nil
}
