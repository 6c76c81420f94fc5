package service

import (
	"context"

	"dogwalkservice/internal/config"
	"dogwalkservice/internal/models"
	"dogwalkservice/internal/repository"
)

type DogService interface {
	// ListDogs returns []models.DogWithOwner for the joined view
	// and []models.Dog for the raw view.
	ListDogs(ctx context.Context) (any, error)
	CreateDog(ctx context.Context, req repository.CreateDogRequest) (*models.Dog, error)
}

type dogService struct {
	dogRepo repository.DogRepository
	cfg     *config.Config
}

func NewDogService(dogRepo repository.DogRepository, cfg *config.Config) DogService {
	return &dogService{
		dogRepo: dogRepo,
		cfg:     cfg,
	}
}

func (s *dogService) ListDogs(ctx context.Context) (any, error) {
	if s.cfg.DogsView == config.DogsViewRaw {
		dogs, err := s.dogRepo.List(ctx)
		if err != nil {
			return nil, err
		}
		return dogs, nil
	}

	dogs, err := s.dogRepo.ListWithOwners(ctx)
	if err != nil {
		return nil, err
	}

	return dogs, nil
}

func (s *dogService) CreateDog(ctx context.Context, req repository.CreateDogRequest) (*models.Dog, error) {
	dog := &models.Dog{
		OwnerID: req.OwnerID,
		Name:    req.Name,
		Size:    req.Size,
	}

	err := s.dogRepo.Create(ctx, dog)
	if err != nil {
		return nil, err
	}

	return dog, nil
}
