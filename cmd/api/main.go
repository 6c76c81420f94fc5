package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"dogwalkservice/cmd/app"
	"dogwalkservice/internal/config"
	"dogwalkservice/internal/database"
	handlers "dogwalkservice/internal/handler"
	"dogwalkservice/internal/logger"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()
	logger.Init(cfg.Log.Level, cfg.Log.Format)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Error().Err(err).Msg("service stopped")
		stop()
		os.Exit(1)
	}
}

// run serves HTTP while the database initializes in the background and
// returns once a signal arrives or either of them fails.
func run(ctx context.Context, cfg *config.Config) error {
	db, cache, services := app.App(ctx, cfg)
	defer db.CloseDB()
	if cache != nil {
		defer cache.Close()
	}

	ready := database.NewReadiness()
	handler := handlers.NewHandlers(services, db, ready, cfg)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           app.NewRouter(handler, ready),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 2)

	go func() {
		log.Info().Str("addr", server.Addr).Str("database", cfg.DB.DbNAME).Msg("server started")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server failed: %w", err)
		}
	}()

	go func() {
		if err := database.Initialize(ctx, cfg, db, ready); err != nil {
			errCh <- fmt.Errorf("database initialization failed: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case runErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}

	return runErr
}
