package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"dogwalkservice/internal/models"
	"dogwalkservice/internal/repository"
	"dogwalkservice/internal/storage"
)

const walkerSummaryKey = "walkers:summary"

type WalkerService interface {
	Summary(ctx context.Context) ([]models.WalkerSummary, error)
}

type walkerService struct {
	walkerRepo repository.WalkerRepository
	cache      storage.Cache
	ttl        time.Duration
}

// NewWalkerService returns a service that reads the summary through cache
// when cache is non-nil.
func NewWalkerService(walkerRepo repository.WalkerRepository, cache storage.Cache, ttl time.Duration) WalkerService {
	return &walkerService{
		walkerRepo: walkerRepo,
		cache:      cache,
		ttl:        ttl,
	}
}

func (s *walkerService) Summary(ctx context.Context) ([]models.WalkerSummary, error) {
	if summary, ok := s.cached(ctx); ok {
		return summary, nil
	}

	summary, err := s.walkerRepo.Summary(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		data, err := json.Marshal(summary)
		if err == nil {
			err = s.cache.Set(ctx, walkerSummaryKey, data, s.ttl)
		}
		if err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("failed to cache walker summary")
		}
	}

	return summary, nil
}

// cached never fails the request: cache errors fall through to the database.
func (s *walkerService) cached(ctx context.Context) ([]models.WalkerSummary, bool) {
	if s.cache == nil {
		return nil, false
	}

	data, err := s.cache.Get(ctx, walkerSummaryKey)
	if err != nil {
		if !errors.Is(err, storage.ErrCacheMiss) {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("walker summary cache unavailable")
		}
		return nil, false
	}

	var summary []models.WalkerSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("discarding malformed walker summary cache entry")
		return nil, false
	}

	return summary, true
}

// invalidateWalkerSummary drops the cached summary after a rating or a completed walk.
func invalidateWalkerSummary(ctx context.Context, cache storage.Cache) {
	if cache == nil {
		return
	}

	if err := cache.Delete(ctx, walkerSummaryKey); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("failed to invalidate walker summary cache")
	}
}
