package service

import (
	"context"
	"fmt"

	"dogwalkservice/internal/models"
	"dogwalkservice/internal/repository"
	"dogwalkservice/internal/storage"
)

type WalkService interface {
	ListOpen(ctx context.Context) ([]models.OpenWalkRequest, error)
	ListRequests(ctx context.Context, status string) ([]models.WalkRequest, error)
	GetRequest(ctx context.Context, requestID int64) (*models.WalkRequest, error)
	CreateRequest(ctx context.Context, req repository.CreateWalkRequest) (*models.WalkRequest, error)
	UpdateStatus(ctx context.Context, requestID int64, status string) (*models.WalkRequest, error)
	Apply(ctx context.Context, requestID int64, req repository.ApplyRequest) (*models.WalkApplication, error)
	ListApplications(ctx context.Context, requestID int64) ([]models.WalkApplication, error)
	AcceptApplication(ctx context.Context, requestID, applicationID int64) error
	RateWalk(ctx context.Context, requestID int64, req repository.RateWalkRequest) (*models.WalkRating, error)
}

type walkService struct {
	requestRepo     repository.WalkRequestRepository
	dogRepo         repository.DogRepository
	applicationRepo repository.ApplicationRepository
	ratingRepo      repository.RatingRepository
	summaryCache    storage.Cache
}

func NewWalkService(
	requestRepo repository.WalkRequestRepository,
	dogRepo repository.DogRepository,
	applicationRepo repository.ApplicationRepository,
	ratingRepo repository.RatingRepository,
	summaryCache storage.Cache,
) WalkService {
	return &walkService{
		requestRepo:     requestRepo,
		dogRepo:         dogRepo,
		applicationRepo: applicationRepo,
		ratingRepo:      ratingRepo,
		summaryCache:    summaryCache,
	}
}

func (s *walkService) ListOpen(ctx context.Context) ([]models.OpenWalkRequest, error) {
	return s.requestRepo.ListOpen(ctx)
}

func (s *walkService) ListRequests(ctx context.Context, status string) ([]models.WalkRequest, error) {
	if status != "" && !models.IsWalkStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	return s.requestRepo.List(ctx, status)
}

func (s *walkService) GetRequest(ctx context.Context, requestID int64) (*models.WalkRequest, error) {
	return s.requestRepo.GetByID(ctx, requestID)
}

func (s *walkService) CreateRequest(ctx context.Context, req repository.CreateWalkRequest) (*models.WalkRequest, error) {
	// check dog
	if _, err := s.dogRepo.GetByID(ctx, req.DogID); err != nil {
		return nil, err
	}

	request := &models.WalkRequest{
		DogID:           req.DogID,
		RequestedTime:   req.RequestedTime,
		DurationMinutes: req.DurationMinutes,
		Location:        req.Location,
	}

	err := s.requestRepo.Create(ctx, request)
	if err != nil {
		return nil, err
	}

	return request, nil
}

// UpdateStatus applies a cancel or complete transition. Requests become
// accepted only through AcceptApplication.
func (s *walkService) UpdateStatus(ctx context.Context, requestID int64, status string) (*models.WalkRequest, error) {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if status == models.StatusAccepted || !models.CanTransition(request.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, request.Status, status)
	}

	err = s.requestRepo.UpdateStatus(ctx, requestID, request.Status, status)
	if err != nil {
		return nil, err
	}

	if status == models.StatusCompleted {
		invalidateWalkerSummary(ctx, s.summaryCache)
	}

	request.Status = status
	return request, nil
}

func (s *walkService) Apply(ctx context.Context, requestID int64, req repository.ApplyRequest) (*models.WalkApplication, error) {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if request.Status != models.StatusOpen {
		return nil, fmt.Errorf("walk request %d: %w", requestID, ErrRequestNotOpen)
	}

	application := &models.WalkApplication{
		RequestID: requestID,
		WalkerID:  req.WalkerID,
	}

	err = s.applicationRepo.Create(ctx, application)
	if err != nil {
		return nil, err
	}

	return application, nil
}

func (s *walkService) ListApplications(ctx context.Context, requestID int64) ([]models.WalkApplication, error) {
	// check request
	if _, err := s.requestRepo.GetByID(ctx, requestID); err != nil {
		return nil, err
	}

	return s.applicationRepo.ListByRequest(ctx, requestID)
}

func (s *walkService) AcceptApplication(ctx context.Context, requestID, applicationID int64) error {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}

	if request.Status != models.StatusOpen {
		return fmt.Errorf("walk request %d: %w", requestID, ErrRequestNotOpen)
	}

	return s.applicationRepo.Accept(ctx, requestID, applicationID)
}

// RateWalk records the owner's rating of the walker whose application was
// accepted for a completed request.
func (s *walkService) RateWalk(ctx context.Context, requestID int64, req repository.RateWalkRequest) (*models.WalkRating, error) {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if request.Status != models.StatusCompleted {
		return nil, fmt.Errorf("walk request %d: %w", requestID, ErrRequestNotCompleted)
	}

	ownerID, err := s.requestRepo.GetOwnerID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if ownerID != req.OwnerID {
		return nil, fmt.Errorf("user %d: %w", req.OwnerID, ErrNotRequestOwner)
	}

	application, err := s.applicationRepo.GetAccepted(ctx, requestID)
	if err != nil {
		return nil, err
	}

	rating := &models.WalkRating{
		RequestID: requestID,
		WalkerID:  application.WalkerID,
		OwnerID:   ownerID,
		Rating:    req.Rating,
		Comments:  req.Comments,
	}

	err = s.ratingRepo.Create(ctx, rating)
	if err != nil {
		return nil, err
	}

	invalidateWalkerSummary(ctx, s.summaryCache)

	return rating, nil
}
