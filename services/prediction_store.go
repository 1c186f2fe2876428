package services

import (
	"context"

	"github.com/Purkaitrohit/House-Price-Prediction/models"
	"gorm.io/gorm"
)

// PredictionStore persists prediction logs.
type PredictionStore interface {
	Save(ctx context.Context, log *models.PredictionLog) error
	List(ctx context.Context, limit, offset int) ([]models.PredictionLog, int64, error)
}

type gormPredictionStore struct {
	db *gorm.DB
}

func NewPredictionStore(db *gorm.DB) PredictionStore {
	return &gormPredictionStore{db: db}
}

func (s *gormPredictionStore) Save(ctx context.Context, log *models.PredictionLog) error {
	return s.db.WithContext(ctx).Create(log).Error
}

func (s *gormPredictionStore) List(ctx context.Context, limit, offset int) ([]models.PredictionLog, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&models.PredictionLog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.PredictionLog
	if err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}
