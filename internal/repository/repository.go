package repository

import (
	"context"

	"dogwalkservice/internal/models"

	"github.com/jmoiron/sqlx"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)
}

type DogRepository interface {
	ListWithOwners(ctx context.Context) ([]models.DogWithOwner, error)
	List(ctx context.Context) ([]models.Dog, error)
	GetByID(ctx context.Context, dogID int64) (*models.Dog, error)
	Create(ctx context.Context, dog *models.Dog) error
}

type WalkRequestRepository interface {
	ListOpen(ctx context.Context) ([]models.OpenWalkRequest, error)
	List(ctx context.Context, status string) ([]models.WalkRequest, error)
	GetByID(ctx context.Context, requestID int64) (*models.WalkRequest, error)
	GetOwnerID(ctx context.Context, requestID int64) (int64, error)
	Create(ctx context.Context, request *models.WalkRequest) error
	UpdateStatus(ctx context.Context, requestID int64, from, to string) error
}

type ApplicationRepository interface {
	Create(ctx context.Context, application *models.WalkApplication) error
	ListByRequest(ctx context.Context, requestID int64) ([]models.WalkApplication, error)
	GetAccepted(ctx context.Context, requestID int64) (*models.WalkApplication, error)
	Accept(ctx context.Context, requestID, applicationID int64) error
}

type RatingRepository interface {
	Create(ctx context.Context, rating *models.WalkRating) error
}

type WalkerRepository interface {
	Summary(ctx context.Context) ([]models.WalkerSummary, error)
}

type TablesRepository interface {
	CountTablesDB(ctx context.Context) (int, error)
}

type Repository struct {
	User        UserRepository
	Dog         DogRepository
	WalkRequest WalkRequestRepository
	Application ApplicationRepository
	Rating      RatingRepository
	Walker      WalkerRepository
	Tables      TablesRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:        NewUserRepository(db),
		Dog:         NewDogRepository(db),
		WalkRequest: NewWalkRequestRepository(db),
		Application: NewApplicationRepository(db),
		Rating:      NewRatingRepository(db),
		Walker:      NewWalkerRepository(db),
		Tables:      NewTablesRepository(db),
	}
}
