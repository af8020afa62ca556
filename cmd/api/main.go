// Package main is the entry point for the Hub Manager API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/hubmanager/backend/config"
	"github.com/hubmanager/backend/internal/infra/cache"
	"github.com/hubmanager/backend/internal/infra/db"
	"github.com/hubmanager/backend/internal/infra/dependency"
	"github.com/hubmanager/backend/internal/infra/server/router"
)

func main() {
	// .env is optional outside development
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := run(); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
	slog.Info("Server exited properly")
}

func run() error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	slog.Info("Starting Hub Manager API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database, err := db.Open(&cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := database.Migrate(); err != nil {
		return err
	}
	slog.Info("Database migrations completed successfully")

	externals := dependency.Externals{DatabaseHealth: database.HealthCheck}
	if cfg.Redis.Enabled {
		client, err := cache.NewRedisClient(ctx, &cfg.Redis)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()
		externals.RateLimitStore = cache.NewRedisRateLimitStore(client)
		externals.CacheHealth = cache.HealthCheck(client)
		slog.Info("Redis rate limit store enabled")
	}

	injector, err := dependency.NewInjector(cfg, database.DB(), externals)
	if err != nil {
		return err
	}

	if cfg.Seed.Enabled {
		if err := injector.Seeder.Run(ctx, cfg.Seed); err != nil {
			return err
		}
	}

	if cfg.Email.WorkerEnabled {
		go injector.EmailWorker.Start(ctx)
	}

	engine := injector.Router.Setup(router.Options{
		Environment:    cfg.Server.Environment,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
