package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"dogwalkservice/internal/models"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User, password string) error {
	args := m.Called(ctx, user, password)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockDogRepository struct {
	mock.Mock
}

func (m *MockDogRepository) ListWithOwners(ctx context.Context) ([]models.DogWithOwner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DogWithOwner), args.Error(1)
}

func (m *MockDogRepository) List(ctx context.Context) ([]models.Dog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Dog), args.Error(1)
}

func (m *MockDogRepository) GetByID(ctx context.Context, dogID int64) (*models.Dog, error) {
	args := m.Called(ctx, dogID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Dog), args.Error(1)
}

func (m *MockDogRepository) Create(ctx context.Context, dog *models.Dog) error {
	args := m.Called(ctx, dog)
	return args.Error(0)
}

type MockWalkRequestRepository struct {
	mock.Mock
}

func (m *MockWalkRequestRepository) ListOpen(ctx context.Context) ([]models.OpenWalkRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.OpenWalkRequest), args.Error(1)
}

func (m *MockWalkRequestRepository) List(ctx context.Context, status string) ([]models.WalkRequest, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WalkRequest), args.Error(1)
}

func (m *MockWalkRequestRepository) GetByID(ctx context.Context, requestID int64) (*models.WalkRequest, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WalkRequest), args.Error(1)
}

func (m *MockWalkRequestRepository) GetOwnerID(ctx context.Context, requestID int64) (int64, error) {
	args := m.Called(ctx, requestID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWalkRequestRepository) Create(ctx context.Context, request *models.WalkRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockWalkRequestRepository) UpdateStatus(ctx context.Context, requestID int64, from, to string) error {
	args := m.Called(ctx, requestID, from, to)
	return args.Error(0)
}

type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) Create(ctx context.Context, application *models.WalkApplication) error {
	args := m.Called(ctx, application)
	return args.Error(0)
}

func (m *MockApplicationRepository) ListByRequest(ctx context.Context, requestID int64) ([]models.WalkApplication, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WalkApplication), args.Error(1)
}

func (m *MockApplicationRepository) GetAccepted(ctx context.Context, requestID int64) (*models.WalkApplication, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WalkApplication), args.Error(1)
}

func (m *MockApplicationRepository) Accept(ctx context.Context, requestID, applicationID int64) error {
	args := m.Called(ctx, requestID, applicationID)
	return args.Error(0)
}

type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) Create(ctx context.Context, rating *models.WalkRating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

type MockWalkerRepository struct {
	mock.Mock
}

func (m *MockWalkerRepository) Summary(ctx context.Context) ([]models.WalkerSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WalkerSummary), args.Error(1)
}

type MockTablesRepository struct {
	mock.Mock
}

func (m *MockTablesRepository) CountTablesDB(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Close() error {
	return m.Called().Error(0)
}
