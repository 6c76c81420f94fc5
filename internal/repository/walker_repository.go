package repository

import (
	"context"
	"fmt"

	"dogwalkservice/internal/models"

	"github.com/jmoiron/sqlx"
)

type WalkerRepositoryImpl struct {
	db *sqlx.DB
}

func NewWalkerRepository(db *sqlx.DB) *WalkerRepositoryImpl {
	return &WalkerRepositoryImpl{db: db}
}

// walkerSummaryQuery aggregates ratings and completed walks in separate
// sub-selects so neither count is multiplied by the other join.
// A walk counts as completed for a walker only when that walker's application
// is accepted and the request itself is completed.
const walkerSummaryQuery = `
	SELECT
		u.username AS walker_username,
		COALESCE(r.total_ratings, 0) AS total_ratings,
		r.average_rating,
		COALESCE(c.completed_walks, 0) AS completed_walks
	FROM users u
	LEFT JOIN (
		SELECT walker_id,
			COUNT(DISTINCT rating_id) AS total_ratings,
			ROUND(AVG(rating)::numeric, 1)::float8 AS average_rating
		FROM walk_ratings
		GROUP BY walker_id
	) r ON r.walker_id = u.user_id
	LEFT JOIN (
		SELECT wa.walker_id, COUNT(DISTINCT wa.request_id) AS completed_walks
		FROM walk_applications wa
		JOIN walk_requests wrq ON wrq.request_id = wa.request_id
		WHERE wa.status = 'accepted' AND wrq.status = 'completed'
		GROUP BY wa.walker_id
	) c ON c.walker_id = u.user_id
	WHERE u.role = 'walker'
	ORDER BY u.user_id
`

func (r *WalkerRepositoryImpl) Summary(ctx context.Context) ([]models.WalkerSummary, error) {
	summary := make([]models.WalkerSummary, 0)
	if err := r.db.SelectContext(ctx, &summary, walkerSummaryQuery); err != nil {
		return nil, fmt.Errorf("failed to build walker summary: %w", err)
	}

	return summary, nil
}
