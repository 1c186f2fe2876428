package services

import (
	"context"
	"fmt"

	"github.com/Purkaitrohit/House-Price-Prediction/models"
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

type HistoryService interface {
	List(ctx context.Context, limit, offset int) (*models.PredictionHistory, error)
}

type historyService struct {
	store PredictionStore
}

// NewHistoryService returns a service that reports ErrHistoryDisabled when
// store is nil.
func NewHistoryService(store PredictionStore) HistoryService {
	return &historyService{store: store}
}

func (s *historyService) List(ctx context.Context, limit, offset int) (*models.PredictionHistory, error) {
	if s.store == nil {
		return nil, ErrHistoryDisabled
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	if offset < 0 {
		offset = 0
	}

	items, total, err := s.store.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list predictions: %w", err)
	}
	if items == nil {
		items = []models.PredictionLog{}
	}

	return &models.PredictionHistory{
		Items:  items,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}
