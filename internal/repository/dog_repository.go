package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dogwalkservice/internal/models"

	"github.com/jmoiron/sqlx"
)

type DogRepositoryImpl struct {
	db *sqlx.DB
}

type CreateDogRequest struct {
	OwnerID int64  `json:"owner_id" validate:"required,gt=0"`
	Name    string `json:"name" validate:"required,max=50"`
	Size    string `json:"size" validate:"required,oneof=small medium large"`
}

func NewDogRepository(db *sqlx.DB) *DogRepositoryImpl {
	return &DogRepositoryImpl{db: db}
}

func (r *DogRepositoryImpl) ListWithOwners(ctx context.Context) ([]models.DogWithOwner, error) {
	query := `
		SELECT d.name AS dog_name, d.size, u.username AS owner_username
		FROM dogs d
		JOIN users u ON d.owner_id = u.user_id
		ORDER BY d.dog_id
	`

	dogs := make([]models.DogWithOwner, 0)
	if err := r.db.SelectContext(ctx, &dogs, query); err != nil {
		return nil, fmt.Errorf("failed to list dogs with owners: %w", err)
	}

	return dogs, nil
}

func (r *DogRepositoryImpl) List(ctx context.Context) ([]models.Dog, error) {
	query := `SELECT dog_id, owner_id, name, size FROM dogs ORDER BY dog_id`

	dogs := make([]models.Dog, 0)
	if err := r.db.SelectContext(ctx, &dogs, query); err != nil {
		return nil, fmt.Errorf("failed to list dogs: %w", err)
	}

	return dogs, nil
}

func (r *DogRepositoryImpl) GetByID(ctx context.Context, dogID int64) (*models.Dog, error) {
	query := `SELECT dog_id, owner_id, name, size FROM dogs WHERE dog_id = $1`

	var dog models.Dog
	err := r.db.GetContext(ctx, &dog, query, dogID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("dog %d: %w", dogID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get dog: %w", err)
	}

	return &dog, nil
}

// Create inserts the dog only when OwnerID belongs to a user with the owner role.
func (r *DogRepositoryImpl) Create(ctx context.Context, dog *models.Dog) error {
	query := `
		INSERT INTO dogs (owner_id, name, size)
		SELECT user_id, $2::varchar, $3::varchar
		FROM users
		WHERE user_id = $1 AND role = 'owner'
		RETURNING dog_id
	`

	err := r.db.QueryRowxContext(ctx, query, dog.OwnerID, dog.Name, dog.Size).Scan(&dog.DogID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("user %d: %w", dog.OwnerID, ErrNotOwner)
		}
		return wrapWriteError("failed to create dog", err)
	}

	return nil
}
