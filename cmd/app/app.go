package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"dogwalkservice/internal/config"
	"dogwalkservice/internal/database"
	"dogwalkservice/internal/repository"
	"dogwalkservice/internal/service"
	"dogwalkservice/internal/storage"
)

// App opens the database handle and wires repositories into services.
// The handle is not dialed yet; database.Initialize does that.
// The returned cache is nil when Redis is not configured or unreachable.
func App(ctx context.Context, cfg *config.Config) (*database.DB, storage.Cache, *service.Service) {
	// connection DB
	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}

	// connection Redis
	var cache storage.Cache
	if cfg.Redis.Addr != "" {
		redisCache, err := storage.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("walker summary cache disabled")
		} else {
			cache = redisCache
		}
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, cache)

	return db, cache, services
}
