package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dogwalkservice/internal/database"
	"dogwalkservice/internal/models"

	"github.com/jmoiron/sqlx"
)

type ApplicationRepositoryImpl struct {
	db *sqlx.DB
}

type ApplyRequest struct {
	WalkerID int64 `json:"walker_id" validate:"required,gt=0"`
}

func NewApplicationRepository(db *sqlx.DB) *ApplicationRepositoryImpl {
	return &ApplicationRepositoryImpl{db: db}
}

// Create inserts the application only when WalkerID belongs to a user with the walker role.
// A second application by the same walker to the same request fails with ErrDuplicate.
func (r *ApplicationRepositoryImpl) Create(ctx context.Context, application *models.WalkApplication) error {
	query := `
		INSERT INTO walk_applications (request_id, walker_id)
		SELECT $1::int, user_id
		FROM users
		WHERE user_id = $2 AND role = 'walker'
		RETURNING application_id, applied_at, status
	`

	err := r.db.QueryRowxContext(ctx, query, application.RequestID, application.WalkerID).
		Scan(&application.ApplicationID, &application.AppliedAt, &application.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("user %d: %w", application.WalkerID, ErrNotWalker)
		}
		return wrapWriteError("failed to create walk application", err)
	}

	return nil
}

func (r *ApplicationRepositoryImpl) ListByRequest(ctx context.Context, requestID int64) ([]models.WalkApplication, error) {
	query := `
		SELECT application_id, request_id, walker_id, applied_at, status
		FROM walk_applications
		WHERE request_id = $1
		ORDER BY application_id
	`

	applications := make([]models.WalkApplication, 0)
	if err := r.db.SelectContext(ctx, &applications, query, requestID); err != nil {
		return nil, fmt.Errorf("failed to list walk applications: %w", err)
	}

	return applications, nil
}

func (r *ApplicationRepositoryImpl) GetAccepted(ctx context.Context, requestID int64) (*models.WalkApplication, error) {
	query := `
		SELECT application_id, request_id, walker_id, applied_at, status
		FROM walk_applications
		WHERE request_id = $1 AND status = 'accepted'
	`

	var application models.WalkApplication
	err := r.db.GetContext(ctx, &application, query, requestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("accepted application for walk request %d: %w", requestID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get accepted application: %w", err)
	}

	return &application, nil
}

// Accept marks one pending application accepted, rejects the other pending ones
// and moves the open request to accepted, all in one transaction.
func (r *ApplicationRepositoryImpl) Accept(ctx context.Context, requestID, applicationID int64) error {
	return database.RunInTx(ctx, r.db, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, `
			UPDATE walk_applications SET status = 'accepted'
			WHERE application_id = $1 AND request_id = $2 AND status = 'pending'
		`, applicationID, requestID)
		if err != nil {
			return fmt.Errorf("failed to accept application: %w", err)
		}

		if err := expectOneRow(result, fmt.Errorf("application %d is not pending for walk request %d: %w", applicationID, requestID, ErrStatusConflict)); err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE walk_applications SET status = 'rejected'
			WHERE request_id = $1 AND application_id <> $2 AND status = 'pending'
		`, requestID, applicationID)
		if err != nil {
			return fmt.Errorf("failed to reject other applications: %w", err)
		}

		result, err = tx.ExecContext(ctx, `
			UPDATE walk_requests SET status = 'accepted'
			WHERE request_id = $1 AND status = 'open'
		`, requestID)
		if err != nil {
			return fmt.Errorf("failed to accept walk request: %w", err)
		}

		return expectOneRow(result, fmt.Errorf("walk request %d is not open: %w", requestID, ErrStatusConflict))
	})
}

func expectOneRow(result sql.Result, noRows error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return noRows
	}

	return nil
}
