package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/javiertc/adivina-go/internal/dependencies/clock"
	"github.com/javiertc/adivina-go/internal/dependencies/random"
	"github.com/javiertc/adivina-go/internal/services/auth"
	"github.com/javiertc/adivina-go/internal/services/game"
	"github.com/javiertc/adivina-go/internal/services/leaderboard"
	"github.com/javiertc/adivina-go/internal/storage"
	"github.com/javiertc/adivina-go/internal/storage/memory"
	redisstorage "github.com/javiertc/adivina-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	AuthService        *auth.Service
	GameService        *game.Service
	LeaderboardService *leaderboard.Service
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	app := newWithDependencies(store, clk, rnd, cfg.AuthConfig, logger)

	// Seed the leaderboard projection from accounts that already exist in
	// storage, so persistent backends serve a consistent view from startup
	if err := app.LeaderboardService.Recompute(context.Background()); err != nil {
		return nil, err
	}

	return app, nil
}

// newWithDependencies creates an App with the given dependencies
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, authCfg auth.Config, logger *slog.Logger) *App {
	authService := auth.New(store, clk, authCfg, logger)
	leaderboardService := leaderboard.New(store, logger)
	gameService := game.New(store, leaderboardService, rnd, logger)

	return &App{
		Storage:            store,
		Clock:              clk,
		Random:             rnd,
		AuthService:        authService,
		GameService:        gameService,
		LeaderboardService: leaderboardService,
	}
}
