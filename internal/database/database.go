package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jcotes2k/digital-growth-marketing-sub002/internal/config"
	"github.com/jcotes2k/digital-growth-marketing-sub002/internal/models"
	"github.com/jcotes2k/digital-growth-marketing-sub002/pkg/logging"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var (
	DB          *gorm.DB
	RedisClient *redis.Client
)

// InitDatabase initializes database connections
func InitDatabase() error {
	// Initialize PostgreSQL (or the SQLite fallback)
	if err := initStore(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize Redis when configured. Rate limiting and usage counters
	// are disabled without it, everything else works.
	if err := initRedis(); err != nil {
		return fmt.Errorf("failed to initialize Redis: %w", err)
	}

	// Auto migrate tables
	if err := AutoMigrate(DB); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	return nil
}

// initStore initializes the relational store
func initStore() error {
	var err error

	if dsn := config.AppConfig.DatabaseURL; dsn == "" {
		// Fallback to SQLite for development
		logging.Infof("Database URL not set, using SQLite for development")
		DB, err = gorm.Open(sqlite.Open("growth-suite.db"), gormConfig())
	} else {
		// Use PostgreSQL for production
		DB, err = gorm.Open(postgres.Open(dsn), gormConfig())
	}

	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	logging.Infof("Database connected successfully")
	return nil
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true, // duplicate-key conflicts surface as gorm.ErrDuplicatedKey
		NamingStrategy: schema.NamingStrategy{
			SingularTable: false,
		},
	}
}

// OpenSQLite opens a standalone SQLite database, used by tests with
// per-test in-memory DSNs
func OpenSQLite(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), gormConfig())
	if err != nil {
		return nil, err
	}
	if err := AutoMigrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// SetDB replaces the global database handle
func SetDB(db *gorm.DB) {
	DB = db
}

// AutoMigrate performs database migration
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Transaction{},
		&models.Subscription{},
		&models.Affiliate{},
		&models.Referral{},
		&models.ToolUsage{},
	)
}

// initRedis initializes the Redis connection when REDIS_URL is set
func initRedis() error {
	redisURL := config.AppConfig.RedisURL
	if redisURL == "" {
		logging.Warnf("REDIS_URL not set, generator rate limiting disabled")
		return nil
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	RedisClient = redis.NewClient(opt)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := RedisClient.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logging.Infof("Redis connected successfully")
	return nil
}

// GetDB returns database instance
func GetDB() *gorm.DB {
	return DB
}

// GetRedis returns the Redis client, nil when Redis is not configured
func GetRedis() *redis.Client {
	return RedisClient
}

// CloseDatabase closes database connections
func CloseDatabase() error {
	if sqlDB, err := DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logging.Errorf("Failed to close database: %v", err)
		}
	}

	if RedisClient != nil {
		if err := RedisClient.Close(); err != nil {
			logging.Errorf("Failed to close Redis: %v", err)
		}
	}

	return nil
}
