package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "ad-console/internal/adapter/http"
	"ad-console/internal/adapter/memory"
	"ad-console/internal/adapter/postgres"
	"ad-console/internal/adapter/usecase"
	"ad-console/internal/config"
	"ad-console/internal/config/configs"
	"ad-console/internal/core/port"
	"ad-console/internal/db"
)

// main loads configuration, initializes the structured logger, selects
// the campaign store backend (in-memory or postgres), optionally runs
// migrations and seeds demo data, then serves the management API until a
// termination signal arrives.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := slog.New(cfg.Log.Handler(os.Stdout))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var repo port.CampaignRepository
	switch cfg.Store.Normalized() {
	case configs.BackendPostgres:
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
				os.Exit(1)
			}
			logger.Info("migrations applied successfully")
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			os.Exit(1)
		}
		defer pool.Close()
		repo = postgres.NewCampaignRepository(pool)
		logger.Info("using postgres campaign store")
	default:
		repo = memory.NewCampaignRepository()
		logger.Info("using in-memory campaign store")
	}

	if cfg.Store.Seed {
		if err = db.Seed(ctx, repo); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("demo campaigns seeded")
	}

	svc := usecase.NewCampaignUseCase(repo)
	handler := httpadapter.NewHandler(svc, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err = <-errCh:
		logger.Error("server error", slog.Any("error", err))
		os.Exit(1)
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server gracefully stopped")
}
