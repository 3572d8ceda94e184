package factory

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/linesgame/linesim/internal/dependencies/clock"
	"github.com/linesgame/linesim/internal/dependencies/random"
	"github.com/linesgame/linesim/internal/model"
	"github.com/linesgame/linesim/internal/services/bot"
	"github.com/linesgame/linesim/internal/services/session"
	"github.com/linesgame/linesim/internal/storage"
	"github.com/linesgame/linesim/internal/storage/memory"
	redisstorage "github.com/linesgame/linesim/internal/storage/redis"
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
	Clock clock.Clock

	// Services
	SessionController *session.Controller
	BotService        *bot.Service
	Strategies        map[string]bot.Strategy
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// GameConfig is the rules configuration bot strategies are built for
	// If zero value, defaults to model.DefaultConfig()
	GameConfig model.GameConfig
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

	gameCfg := cfg.GameConfig
	if gameCfg == (model.GameConfig{}) {
		gameCfg = model.DefaultConfig()
	}

	clk := clock.New()
	// Strategy-level randomness is independent of any session's seeded stream
	rnd := random.New(time.Now().UnixNano())

	return newWithDependencies(store, clk, rnd, gameCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, gameCfg model.GameConfig, logger *slog.Logger) *App {
	sessionController := session.NewController(store, clk, logger)
	strategies := bot.DefaultStrategies(gameCfg, rnd, logger)
	botService := bot.NewService(sessionController, strategies, logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		SessionController: sessionController,
		BotService:        botService,
		Strategies:        strategies,
	}
}
