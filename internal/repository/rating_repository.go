package repository

import (
	"context"

	"dogwalkservice/internal/models"

	"github.com/jmoiron/sqlx"
)

type RatingRepositoryImpl struct {
	db *sqlx.DB
}

type RateWalkRequest struct {
	OwnerID  int64   `json:"owner_id" validate:"required,gt=0"`
	Rating   int     `json:"rating" validate:"required,min=1,max=5"`
	Comments *string `json:"comments" validate:"omitempty,max=2000"`
}

func NewRatingRepository(db *sqlx.DB) *RatingRepositoryImpl {
	return &RatingRepositoryImpl{db: db}
}

// Create stores the rating; a second rating for the same request fails with ErrDuplicate.
func (r *RatingRepositoryImpl) Create(ctx context.Context, rating *models.WalkRating) error {
	query := `
		INSERT INTO walk_ratings (request_id, walker_id, owner_id, rating, comments)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING rating_id, rated_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		rating.RequestID,
		rating.WalkerID,
		rating.OwnerID,
		rating.Rating,
		rating.Comments,
	).Scan(&rating.RatingID, &rating.RatedAt)
	if err != nil {
		return wrapWriteError("failed to create walk rating", err)
	}

	return nil
}
