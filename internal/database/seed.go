package database

import (
	"context"
	"fmt"
	"time"

	"dogwalkservice/internal/config"
	"dogwalkservice/internal/models"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type fixtureUser struct {
	username     string
	email        string
	passwordHash string
	role         string
}

type fixtureDog struct {
	name  string
	size  string
	owner string
}

type fixtureRequest struct {
	dog             string
	requestedTime   time.Time
	durationMinutes int
	location        string
	status          string
}

var fixtureUsers = []fixtureUser{
	{"alice123", "alice@example.com", "hashed123", models.RoleOwner},
	{"bobwalker", "bob@example.com", "hashed456", models.RoleWalker},
	{"carol123", "carol@example.com", "hashed789", models.RoleOwner},
	{"davidwalker", "david@example.com", "hashed999", models.RoleWalker},
	{"emily123", "emily@example.com", "hashed321", models.RoleOwner},
}

var fixtureDogs = []fixtureDog{
	{"Max", models.SizeMedium, "alice123"},
	{"Bella", models.SizeSmall, "carol123"},
	{"Rocky", models.SizeLarge, "emily123"},
	{"Buddy", models.SizeSmall, "alice123"},
	{"Cooper", models.SizeMedium, "carol123"},
}

var fixtureRequests = []fixtureRequest{
	{"Max", time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC), 30, "Parklands", models.StatusOpen},
	{"Bella", time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC), 45, "Beachside Ave", models.StatusAccepted},
	{"Rocky", time.Date(2025, 6, 11, 7, 15, 0, 0, time.UTC), 60, "Riverwalk Trail", models.StatusOpen},
	{"Buddy", time.Date(2025, 6, 11, 10, 0, 0, 0, time.UTC), 20, "Central Park", models.StatusCompleted},
	{"Cooper", time.Date(2025, 6, 12, 16, 30, 0, 0, time.UTC), 40, "Greenfield Gardens", models.StatusCancelled},
}

// The completed walk for Buddy was done by bobwalker and rated by alice123.
const (
	fixtureRatedDog     = "Buddy"
	fixtureRatedWalker  = "bobwalker"
	fixtureRatingOwner  = "alice123"
	fixtureRatingValue  = 5
	fixtureRatingRemark = "Great walk, very punctual!"
)

// seedTables is child-to-parent order: deletes must not trip foreign keys.
var seedTables = []struct {
	table string
	key   string
}{
	{"walk_ratings", "rating_id"},
	{"walk_applications", "application_id"},
	{"walk_requests", "request_id"},
	{"dogs", "dog_id"},
	{"users", "user_id"},
}

const (
	insertFixtureUser        = `INSERT INTO users (username, email, password_hash, role) VALUES ($1, $2, $3, $4) RETURNING user_id`
	insertFixtureDog         = `INSERT INTO dogs (owner_id, name, size) VALUES ($1, $2, $3) RETURNING dog_id`
	insertFixtureRequest     = `INSERT INTO walk_requests (dog_id, requested_time, duration_minutes, location, status) VALUES ($1, $2, $3, $4, $5) RETURNING request_id`
	insertFixtureApplication = `INSERT INTO walk_applications (request_id, walker_id, status) VALUES ($1, $2, $3)`
	insertFixtureRating      = `INSERT INTO walk_ratings (request_id, walker_id, owner_id, rating, comments) VALUES ($1, $2, $3, $4, $5)`
	resetSequence            = `SELECT setval(pg_get_serial_sequence($1, $2), 1, false)`
)

// Seed loads the fixture according to mode (see config.Seed* constants).
func (db *DB) Seed(ctx context.Context, mode string) error {
	switch mode {
	case config.SeedNone:
		return nil
	case config.SeedReseed:
		return db.Reseed(ctx)
	case config.SeedIfEmpty:
	default:
		return fmt.Errorf("unknown seed mode %q", mode)
	}

	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM users`); err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}

	if count > 0 {
		log.Debug().Int("users", count).Msg("users present, fixture not loaded")
		return nil
	}

	err := db.WithTx(ctx, func(tx *sqlx.Tx) error {
		return insertFixture(ctx, tx)
	})
	if err != nil {
		return err
	}

	log.Info().Msg("fixture loaded into empty database")
	return nil
}

// Reseed wipes every table, restarts the surrogate key sequences and loads the fixture,
// all in one transaction.
func (db *DB) Reseed(ctx context.Context) error {
	err := db.WithTx(ctx, func(tx *sqlx.Tx) error {
		for _, t := range seedTables {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+t.table); err != nil {
				return fmt.Errorf("failed to clear %s: %w", t.table, err)
			}
		}

		for _, t := range seedTables {
			if _, err := tx.ExecContext(ctx, resetSequence, t.table, t.key); err != nil {
				return fmt.Errorf("failed to reset %s sequence: %w", t.table, err)
			}
		}

		return insertFixture(ctx, tx)
	})
	if err != nil {
		return fmt.Errorf("reseed failed: %w", err)
	}

	log.Info().Msg("database reseeded")
	return nil
}

func insertFixture(ctx context.Context, tx *sqlx.Tx) error {
	userIDs := make(map[string]int64, len(fixtureUsers))
	for _, u := range fixtureUsers {
		var id int64
		if err := tx.QueryRowxContext(ctx, insertFixtureUser, u.username, u.email, u.passwordHash, u.role).Scan(&id); err != nil {
			return fmt.Errorf("failed to insert user %s: %w", u.username, err)
		}
		userIDs[u.username] = id
	}

	dogIDs := make(map[string]int64, len(fixtureDogs))
	for _, d := range fixtureDogs {
		var id int64
		if err := tx.QueryRowxContext(ctx, insertFixtureDog, userIDs[d.owner], d.name, d.size).Scan(&id); err != nil {
			return fmt.Errorf("failed to insert dog %s: %w", d.name, err)
		}
		dogIDs[d.name] = id
	}

	var ratedRequestID int64
	for _, r := range fixtureRequests {
		var id int64
		err := tx.QueryRowxContext(ctx, insertFixtureRequest,
			dogIDs[r.dog], r.requestedTime, r.durationMinutes, r.location, r.status,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("failed to insert walk request for %s: %w", r.dog, err)
		}
		if r.dog == fixtureRatedDog && r.status == models.StatusCompleted {
			ratedRequestID = id
		}
	}

	walkerID := userIDs[fixtureRatedWalker]
	if _, err := tx.ExecContext(ctx, insertFixtureApplication, ratedRequestID, walkerID, models.ApplicationAccepted); err != nil {
		return fmt.Errorf("failed to insert walk application: %w", err)
	}

	_, err := tx.ExecContext(ctx, insertFixtureRating,
		ratedRequestID, walkerID, userIDs[fixtureRatingOwner], fixtureRatingValue, fixtureRatingRemark,
	)
	if err != nil {
		return fmt.Errorf("failed to insert walk rating: %w", err)
	}

	return nil
}
