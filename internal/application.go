package application

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-api/internal/cache"
	"github.com/rocketscienceinc/tictactoe-api/internal/config"
	"github.com/rocketscienceinc/tictactoe-api/internal/observability"
	"github.com/rocketscienceinc/tictactoe-api/internal/repository"
	"github.com/rocketscienceinc/tictactoe-api/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-api/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-api/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-api/transport/rest"
)

// RunApp - runs the application until SIGINT or SIGTERM.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.SetupTracing(ctx, conf.Tracing.Endpoint)
	if err != nil {
		return fmt.Errorf("could not set up tracing: %w", err)
	}

	defer func() {
		if err = shutdownTracing(context.Background()); err != nil {
			log.Error("could not flush traces", "error", err)
		}
	}()

	db, err := storage.NewGormStorage(ctx, conf.DatabaseURL)
	if err != nil {
		return fmt.Errorf("could not connect to database: %w", err)
	}

	defer func() {
		if err = db.Close(); err != nil {
			log.Error("could not close database", "error", err)
		}
	}()

	if err = repository.AutoMigrate(db.Connection); err != nil {
		return fmt.Errorf("could not migrate database: %w", err)
	}

	gameCache, closeCache, err := newGameCache(ctx, conf)
	if err != nil {
		return err
	}
	defer closeCache()

	metrics := observability.NewMetrics(cache.Operations)

	gameUseCase := usecase.NewGameUseCase(
		logger,
		tictactoe.New(),
		repository.NewGameRepository(db.Connection),
		gameCache,
	)

	log.Info("Starting HTTP server", "port", conf.HTTPPort, "cache_enabled", conf.Cache.Enabled)

	server := rest.NewServer(logger, conf.HTTPPort, gameUseCase, metrics)
	if err = server.Start(ctx); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

// Migrate - creates or updates the database schema and exits.
func Migrate(logger *slog.Logger, conf *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := storage.NewGormStorage(ctx, conf.DatabaseURL)
	if err != nil {
		return fmt.Errorf("could not connect to database: %w", err)
	}
	defer db.Close()

	if err = repository.AutoMigrate(db.Connection); err != nil {
		return fmt.Errorf("could not migrate database: %w", err)
	}

	logger.Info("Database migrated")

	return nil
}

// newGameCache - builds the configured cache backend. The returned function releases it.
func newGameCache(ctx context.Context, conf *config.Config) (cache.Cache, func(), error) {
	if !conf.Cache.Enabled {
		return cache.NewNoop(), func() {}, nil
	}

	if conf.Cache.Backend == config.CacheBackendRedis {
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		gameCache := cache.WithMetrics(cache.NewRedis(redisStorage.Connection, conf.Cache.TTL), config.CacheBackendRedis)

		return gameCache, func() { _ = redisStorage.Close() }, nil
	}

	gameCache := cache.WithMetrics(cache.NewMemory(conf.Cache.Size, conf.Cache.TTL), config.CacheBackendMemory)

	return gameCache, func() {}, nil
}
