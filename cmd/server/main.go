package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	compassapp "github.com/andreevorobei/compass-app"
	"github.com/andreevorobei/compass-app/internal/cache"
	"github.com/andreevorobei/compass-app/internal/config"
	"github.com/andreevorobei/compass-app/internal/repository"
	"github.com/andreevorobei/compass-app/internal/server"
	"github.com/andreevorobei/compass-app/internal/service"
)

func main() {
	// Load configuration first so the log level is honored from the start.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	// Setup context with graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Run migrations
	migrationsFS, err := fs.Sub(compassapp.MigrationsFS, "migrations")
	if err != nil {
		slog.Error("failed to load embedded migrations", "error", err)
		os.Exit(1)
	}
	if err := repository.RunMigrations(cfg.DatabaseURL, migrationsFS); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Connect to cache backend
	responseCache, err := cache.New(cfg.RedisURL)
	if err != nil {
		slog.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer responseCache.Close()

	// Initialize repositories
	profileRepo := repository.NewProfileRepo(pool)
	skillRepo := repository.NewSkillRepo(pool)
	goalRepo := repository.NewGoalRepo(pool)
	sessionRepo := repository.NewSessionRepo(pool)
	usageRepo := repository.NewUsageRepo(pool)

	// Initialize services
	openRouter := service.NewOpenRouterService(cfg.OpenRouterKey)
	router := service.NewRouter(openRouter)
	executor := service.NewExecutor(profileRepo, skillRepo, goalRepo, responseCache)
	usageTracker := service.NewUsageTracker(usageRepo)
	dataService := service.NewDataService(profileRepo, skillRepo, goalRepo, responseCache)
	assistant := service.NewAssistant(router, responseCache, executor, sessionRepo, usageTracker, cfg.MaxCostPerRequest)

	srv := server.New(server.Deps{
		Assistant: assistant,
		Data:      dataService,
		Usage:     usageTracker,
		DB:        pool,
	})

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: srv.Router(),
	}

	go func() {
		slog.Info("server started", "port", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
}

func logLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
