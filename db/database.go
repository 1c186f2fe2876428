package db

import (
	"context"
	"fmt"
	"time"

	"github.com/Purkaitrohit/House-Price-Prediction/config"
	"github.com/Purkaitrohit/House-Price-Prediction/models"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDB opens the prediction history database and migrates its schema.
func NewDB(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (*gorm.DB, error) {
	database, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve underlying SQL DB: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := database.WithContext(ctx).AutoMigrate(&models.PredictionLog{}); err != nil {
		return nil, fmt.Errorf("failed to migrate prediction history: %w", err)
	}

	logger.Info("Connected to database", zap.String("name", cfg.Name))
	return database, nil
}

func Close(database *gorm.DB) error {
	sqlDB, err := database.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
