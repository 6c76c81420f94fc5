package test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"dogwalkservice/internal/models"
	"dogwalkservice/internal/repository"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, req repository.CreateUserRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockDogService struct {
	mock.Mock
}

func (m *MockDogService) ListDogs(ctx context.Context) (any, error) {
	args := m.Called(ctx)
	return args.Get(0), args.Error(1)
}

func (m *MockDogService) CreateDog(ctx context.Context, req repository.CreateDogRequest) (*models.Dog, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Dog), args.Error(1)
}

type MockWalkService struct {
	mock.Mock
}

func (m *MockWalkService) ListOpen(ctx context.Context) ([]models.OpenWalkRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.OpenWalkRequest), args.Error(1)
}

func (m *MockWalkService) ListRequests(ctx context.Context, status string) ([]models.WalkRequest, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WalkRequest), args.Error(1)
}

func (m *MockWalkService) GetRequest(ctx context.Context, requestID int64) (*models.WalkRequest, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WalkRequest), args.Error(1)
}

func (m *MockWalkService) CreateRequest(ctx context.Context, req repository.CreateWalkRequest) (*models.WalkRequest, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WalkRequest), args.Error(1)
}

func (m *MockWalkService) UpdateStatus(ctx context.Context, requestID int64, status string) (*models.WalkRequest, error) {
	args := m.Called(ctx, requestID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WalkRequest), args.Error(1)
}

func (m *MockWalkService) Apply(ctx context.Context, requestID int64, req repository.ApplyRequest) (*models.WalkApplication, error) {
	args := m.Called(ctx, requestID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WalkApplication), args.Error(1)
}

func (m *MockWalkService) ListApplications(ctx context.Context, requestID int64) ([]models.WalkApplication, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WalkApplication), args.Error(1)
}

func (m *MockWalkService) AcceptApplication(ctx context.Context, requestID, applicationID int64) error {
	args := m.Called(ctx, requestID, applicationID)
	return args.Error(0)
}

func (m *MockWalkService) RateWalk(ctx context.Context, requestID int64, req repository.RateWalkRequest) (*models.WalkRating, error) {
	args := m.Called(ctx, requestID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WalkRating), args.Error(1)
}

type MockWalkerService struct {
	mock.Mock
}

func (m *MockWalkerService) Summary(ctx context.Context) ([]models.WalkerSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WalkerSummary), args.Error(1)
}

type MockTablesService struct {
	mock.Mock
}

func (m *MockTablesService) GetCountTablesBD(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) HealthCheck(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
