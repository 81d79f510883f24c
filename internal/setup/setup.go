package setup

import (
	"context"
	"fmt"
	"log"

	"github.com/poliscope/stancetrack/internal/database"
	"github.com/poliscope/stancetrack/internal/queue"
	"github.com/poliscope/stancetrack/internal/redis"
	"github.com/poliscope/stancetrack/internal/setup/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// App bundles all core dependencies and services needed by the application.
// Each field represents a major subsystem that needs initialization and cleanup.
type App struct {
	Config       *config.Config  // Application configuration
	Logger       *zap.Logger     // Main application logger
	DBLogger     *zap.Logger     // Database-specific logger
	DB           database.Client // Database connection pool
	RedisManager *redis.Manager  // Redis connection manager
	Queue        *queue.Client   // Metric job queue
}

// InitializeApp bootstraps all application dependencies in the correct order,
// ensuring each component has its required dependencies available.
func InitializeApp(ctx context.Context, autoMigrate bool) (*App, error) {
	// Load app configuration
	cfg, _, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	// Logging system is initialized next to capture setup issues
	logger, err := newLogger(&cfg.Common.Debug)
	if err != nil {
		return nil, err
	}

	dbLogger := logger.Named("database")

	// Redis manager provides connection pools for various subsystems
	redisManager := redis.NewManager(&cfg.Common.Redis, logger)

	// Metric jobs live in their own Redis database
	queueClient, err := redisManager.GetClient(redis.QueueDBIndex)
	if err != nil {
		return nil, err
	}

	metricQueue := queue.NewClient(queueClient, logger)

	// Initialize database connection
	db, err := database.NewConnection(ctx, &cfg.Common.PostgreSQL, metricQueue, dbLogger, autoMigrate)
	if err != nil {
		redisManager.Close()
		return nil, err
	}

	// Bundle all initialized components
	return &App{
		Config:       cfg,
		Logger:       logger,
		DBLogger:     dbLogger,
		DB:           db,
		RedisManager: redisManager,
		Queue:        metricQueue,
	}, nil
}

// Cleanup ensures graceful shutdown of all components in reverse initialization order.
// Logs but does not fail on cleanup errors to ensure all components get cleanup attempts.
func (s *App) Cleanup(_ context.Context) {
	// Sync buffered logs before shutdown
	if err := s.Logger.Sync(); err != nil {
		log.Printf("Failed to sync logger: %v", err)
	}

	// Close database connections
	if err := s.DB.Close(); err != nil {
		log.Printf("Failed to close database connection: %v", err)
	}

	// Close Redis connections last as other components might need it during cleanup
	s.RedisManager.Close()
}

// newLogger builds the application logger from debug configuration.
func newLogger(cfg *config.Debug) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return logger, nil
}
