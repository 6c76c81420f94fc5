package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"dogwalkservice/internal/models"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jmoiron/sqlx"
)

type WalkRequestRepositoryImpl struct {
	db      *sqlx.DB
	dialect goqu.DialectWrapper
}

type CreateWalkRequest struct {
	DogID           int64     `json:"dog_id" validate:"required,gt=0"`
	RequestedTime   time.Time `json:"requested_time" validate:"required"`
	DurationMinutes int       `json:"duration_minutes" validate:"required,min=1,max=480"`
	Location        string    `json:"location" validate:"required,max=255"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=open accepted completed cancelled"`
}

var walkRequestColumns = []any{
	"request_id", "dog_id", "requested_time", "duration_minutes", "location", "status", "created_at",
}

func NewWalkRequestRepository(db *sqlx.DB) *WalkRequestRepositoryImpl {
	return &WalkRequestRepositoryImpl{
		db:      db,
		dialect: goqu.Dialect("postgres"),
	}
}

func (r *WalkRequestRepositoryImpl) ListOpen(ctx context.Context) ([]models.OpenWalkRequest, error) {
	query := `
		SELECT
			wr.request_id,
			d.name AS dog_name,
			wr.requested_time,
			wr.duration_minutes,
			wr.location,
			u.username AS owner_username
		FROM walk_requests wr
		JOIN dogs d ON wr.dog_id = d.dog_id
		JOIN users u ON d.owner_id = u.user_id
		WHERE wr.status = $1
		ORDER BY wr.request_id
	`

	requests := make([]models.OpenWalkRequest, 0)
	if err := r.db.SelectContext(ctx, &requests, query, models.StatusOpen); err != nil {
		return nil, fmt.Errorf("failed to list open walk requests: %w", err)
	}

	return requests, nil
}

// List returns walk requests, filtered by status unless status is empty.
func (r *WalkRequestRepositoryImpl) List(ctx context.Context, status string) ([]models.WalkRequest, error) {
	ds := r.dialect.From("walk_requests").
		Select(walkRequestColumns...).
		Order(goqu.C("request_id").Asc()).
		Prepared(true)

	if status != "" {
		ds = ds.Where(goqu.C("status").Eq(status))
	}

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build walk request query: %w", err)
	}

	requests := make([]models.WalkRequest, 0)
	if err := r.db.SelectContext(ctx, &requests, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list walk requests: %w", err)
	}

	return requests, nil
}

func (r *WalkRequestRepositoryImpl) GetByID(ctx context.Context, requestID int64) (*models.WalkRequest, error) {
	query := `
		SELECT request_id, dog_id, requested_time, duration_minutes, location, status, created_at
		FROM walk_requests
		WHERE request_id = $1
	`

	var request models.WalkRequest
	err := r.db.GetContext(ctx, &request, query, requestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("walk request %d: %w", requestID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get walk request: %w", err)
	}

	return &request, nil
}

// GetOwnerID returns the user who owns the dog of the walk request.
func (r *WalkRequestRepositoryImpl) GetOwnerID(ctx context.Context, requestID int64) (int64, error) {
	query := `
		SELECT d.owner_id
		FROM walk_requests wr
		JOIN dogs d ON wr.dog_id = d.dog_id
		WHERE wr.request_id = $1
	`

	var ownerID int64
	err := r.db.GetContext(ctx, &ownerID, query, requestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("walk request %d: %w", requestID, ErrNotFound)
		}
		return 0, fmt.Errorf("failed to get walk request owner: %w", err)
	}

	return ownerID, nil
}

func (r *WalkRequestRepositoryImpl) Create(ctx context.Context, request *models.WalkRequest) error {
	query := `
		INSERT INTO walk_requests (dog_id, requested_time, duration_minutes, location)
		VALUES ($1, $2, $3, $4)
		RETURNING request_id, status, created_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		request.DogID,
		request.RequestedTime,
		request.DurationMinutes,
		request.Location,
	).Scan(&request.RequestID, &request.Status, &request.CreatedAt)
	if err != nil {
		return wrapWriteError("failed to create walk request", err)
	}

	return nil
}

// UpdateStatus moves the request from one status to another; it fails with
// ErrStatusConflict when the stored status is no longer from.
func (r *WalkRequestRepositoryImpl) UpdateStatus(ctx context.Context, requestID int64, from, to string) error {
	query := `UPDATE walk_requests SET status = $1 WHERE request_id = $2 AND status = $3`

	result, err := r.db.ExecContext(ctx, query, to, requestID, from)
	if err != nil {
		return fmt.Errorf("failed to update walk request status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("walk request %d is not %s: %w", requestID, from, ErrStatusConflict)
	}

	return nil
}
