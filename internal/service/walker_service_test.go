package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dogwalkservice/internal/models"
	"dogwalkservice/internal/storage"
)

func TestWalkerService_SummaryCache(t *testing.T) {
	avg := 5.0
	fromDB := []models.WalkerSummary{
		{WalkerUsername: "bobwalker", TotalRatings: 1, AverageRating: &avg, CompletedWalks: 1},
		{WalkerUsername: "davidwalker"},
	}
	cachedJSON := []byte(`[{"walker_username":"bobwalker","total_ratings":1,"average_rating":5,"completed_walks":1}]`)
	ttl := 30 * time.Second

	tests := []struct {
		name      string
		setup     func(repo *MockWalkerRepository, cache *MockCache)
		expectLen int
	}{
		{
			name: "Cache hit skips the database",
			setup: func(repo *MockWalkerRepository, cache *MockCache) {
				cache.On("Get", mock.Anything, walkerSummaryKey).Return(cachedJSON, nil)
			},
			expectLen: 1,
		},
		{
			name: "Cache miss queries and stores",
			setup: func(repo *MockWalkerRepository, cache *MockCache) {
				cache.On("Get", mock.Anything, walkerSummaryKey).Return(nil, fmt.Errorf("%s: %w", walkerSummaryKey, storage.ErrCacheMiss))
				repo.On("Summary", mock.Anything).Return(fromDB, nil)
				cache.On("Set", mock.Anything, walkerSummaryKey, mock.Anything, ttl).Return(nil)
			},
			expectLen: 2,
		},
		{
			name: "Cache outage falls back to the database",
			setup: func(repo *MockWalkerRepository, cache *MockCache) {
				cache.On("Get", mock.Anything, walkerSummaryKey).Return(nil, errors.New("dial tcp: connection refused"))
				repo.On("Summary", mock.Anything).Return(fromDB, nil)
				cache.On("Set", mock.Anything, walkerSummaryKey, mock.Anything, ttl).Return(errors.New("dial tcp: connection refused"))
			},
			expectLen: 2,
		},
		{
			name: "Malformed entry is ignored",
			setup: func(repo *MockWalkerRepository, cache *MockCache) {
				cache.On("Get", mock.Anything, walkerSummaryKey).Return([]byte(`{not json`), nil)
				repo.On("Summary", mock.Anything).Return(fromDB, nil)
				cache.On("Set", mock.Anything, walkerSummaryKey, mock.Anything, ttl).Return(nil)
			},
			expectLen: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockWalkerRepository)
			cache := new(MockCache)
			tt.setup(repo, cache)

			summary, err := NewWalkerService(repo, cache, ttl).Summary(context.Background())

			require.NoError(t, err)
			assert.Len(t, summary, tt.expectLen)
			repo.AssertExpectations(t)
			cache.AssertExpectations(t)
		})
	}
}

func TestWalkerService_SummaryErrorIsNotCached(t *testing.T) {
	repo := new(MockWalkerRepository)
	cache := new(MockCache)
	cache.On("Get", mock.Anything, walkerSummaryKey).Return(nil, storage.ErrCacheMiss)
	repo.On("Summary", mock.Anything).Return(nil, assert.AnError)

	summary, err := NewWalkerService(repo, cache, time.Minute).Summary(context.Background())

	assert.Nil(t, summary)
	assert.ErrorIs(t, err, assert.AnError)
	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestWalkService_InvalidatesSummary(t *testing.T) {
	t.Run("Completing a walk", func(t *testing.T) {
		requests := new(MockWalkRequestRepository)
		cache := new(MockCache)
		svc := NewWalkService(requests, new(MockDogRepository), new(MockApplicationRepository), new(MockRatingRepository), cache)

		requests.On("GetByID", mock.Anything, int64(2)).Return(walkRequest(2, models.StatusAccepted), nil)
		requests.On("UpdateStatus", mock.Anything, int64(2), models.StatusAccepted, models.StatusCompleted).Return(nil)
		cache.On("Delete", mock.Anything, walkerSummaryKey).Return(nil)

		_, err := svc.UpdateStatus(context.Background(), 2, models.StatusCompleted)

		require.NoError(t, err)
		cache.AssertExpectations(t)
	})

	t.Run("Cancelling leaves the summary alone", func(t *testing.T) {
		requests := new(MockWalkRequestRepository)
		cache := new(MockCache)
		svc := NewWalkService(requests, new(MockDogRepository), new(MockApplicationRepository), new(MockRatingRepository), cache)

		requests.On("GetByID", mock.Anything, int64(1)).Return(walkRequest(1, models.StatusOpen), nil)
		requests.On("UpdateStatus", mock.Anything, int64(1), models.StatusOpen, models.StatusCancelled).Return(nil)

		_, err := svc.UpdateStatus(context.Background(), 1, models.StatusCancelled)

		require.NoError(t, err)
		cache.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Rating a walk", func(t *testing.T) {
		requests := new(MockWalkRequestRepository)
		applications := new(MockApplicationRepository)
		ratings := new(MockRatingRepository)
		cache := new(MockCache)
		svc := NewWalkService(requests, new(MockDogRepository), applications, ratings, cache)

		requests.On("GetByID", mock.Anything, int64(4)).Return(walkRequest(4, models.StatusCompleted), nil)
		requests.On("GetOwnerID", mock.Anything, int64(4)).Return(int64(1), nil)
		applications.On("GetAccepted", mock.Anything, int64(4)).Return(&models.WalkApplication{WalkerID: 2}, nil)
		ratings.On("Create", mock.Anything, mock.Anything).Return(nil)
		cache.On("Delete", mock.Anything, walkerSummaryKey).Return(errors.New("connection refused"))

		_, err := svc.RateWalk(context.Background(), 4, repositoryRating(1, 4))

		require.NoError(t, err)
		cache.AssertExpectations(t)
	})
}

func TestWalkerService_Summary_WithoutCache(t *testing.T) {
	avg := 5.0
	repo := new(MockWalkerRepository)
	repo.On("Summary", mock.Anything).Return([]models.WalkerSummary{
		{WalkerUsername: "bobwalker", TotalRatings: 1, AverageRating: &avg, CompletedWalks: 1},
	}, nil)

	summary, err := NewWalkerService(repo, nil, 0).Summary(context.Background())

	require.NoError(t, err)
	require.Len(t, summary, 1)
	assert.Equal(t, "bobwalker", summary[0].WalkerUsername)
}
