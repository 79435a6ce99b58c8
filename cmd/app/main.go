package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/lmittmann/tint"

	"botdesk/configs"
	delivhttp "botdesk/internal/delivery/http"
	"botdesk/internal/domain"
	"botdesk/internal/infra"
	"botdesk/internal/middleware"
	"botdesk/internal/repository"
	"botdesk/internal/service"
	"botdesk/internal/usecase"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using environment variables")
	}

	// Load configuration
	cfg := configs.Load()

	logger := newLogger(cfg.Server.Env)
	slog.SetDefault(logger)

	ctx := context.Background()

	// Initialize the key-value store
	store, cleanup, err := newStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize storage", "driver", cfg.Storage.Driver, "error", err)
		os.Exit(1)
	}
	defer cleanup()

	vault := repository.NewKVVault(store)

	// Initialize services
	authService := service.NewAuthService(store, vault, middleware.GenerateJWT, logger)
	botService := service.NewBotService(store, logger)
	marketService := service.NewMarketDataService(logger)
	dashboardService := usecase.NewDashboardService(botService, marketService)

	// Restore persisted state
	authService.Initialize(ctx)
	botService.Load(ctx)
	logger.Info("state restored", "authenticated", authService.IsAuthenticated(), "bots", botService.Count())

	// Start the background refresh scheduler
	scheduler := infra.NewScheduler(botService, marketService, cfg.Scheduler.RefreshSpec, logger)
	if err := scheduler.Start(); err != nil {
		logger.Error("failed to start scheduler", "error", err)
		os.Exit(1)
	}
	defer scheduler.Stop()

	// Initialize HTTP server
	e := echo.New()
	e.HideBanner = true

	delivhttp.SetupRoutes(e, &delivhttp.RouterConfig{
		AuthHandler:   delivhttp.NewAuthHandler(authService, botService),
		UserHandler:   delivhttp.NewUserHandler(authService),
		BotHandler:    delivhttp.NewBotHandler(botService),
		MarketHandler: delivhttp.NewMarketHandler(marketService, dashboardService),
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info("starting server", "addr", addr, "env", cfg.Server.Env, "storage", cfg.Storage.Driver)

	// Run server in goroutine
	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server exited gracefully")
}

// newLogger builds the application logger. Development gets colorized
// output, everything else plain text.
func newLogger(env string) *slog.Logger {
	if env == "development" {
		return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// newStore builds the configured key-value backend. The returned cleanup
// closes the underlying connection and is safe to call once.
func newStore(ctx context.Context, cfg *configs.Config, logger *slog.Logger) (domain.KVStore, func(), error) {
	switch cfg.Storage.Driver {
	case "memory":
		return repository.NewMemoryKV(), func() {}, nil

	case "sqlite":
		store, err := repository.NewSQLiteKV(cfg.Storage.SQLitePath, logger)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { store.Close() }, nil

	case "redis":
		client, err := infra.NewRedisClient(ctx, cfg.Storage.RedisURL, cfg.Storage.RedisPassword, cfg.Storage.RedisDB, logger)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewRedisKV(client), func() { client.Close() }, nil

	case "postgres":
		db, err := infra.NewDatabase(ctx, cfg.Storage.PostgresURL, logger)
		if err != nil {
			return nil, nil, err
		}
		store, err := repository.NewPostgresKV(ctx, db)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return store, func() { db.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver: %s", cfg.Storage.Driver)
	}
}
