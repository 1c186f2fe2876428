package services

import (
	"context"
	"errors"
	"sync"

	"github.com/Purkaitrohit/House-Price-Prediction/inference"
	"github.com/Purkaitrohit/House-Price-Prediction/models"
	"github.com/Purkaitrohit/House-Price-Prediction/pipeline"
)

type fakePredictor struct {
	estimate float64
	err      error
	rows     []pipeline.Row
	infoErr  error
}

func (f *fakePredictor) Predict(_ context.Context, row pipeline.Row) (inference.Estimate, error) {
	f.rows = append(f.rows, row)
	if f.err != nil {
		return inference.Estimate{}, f.err
	}
	return inference.Estimate{Value: f.estimate, ModelName: "fake_pipeline", ModelVersion: "9.9.9"}, nil
}

func (f *fakePredictor) Info(context.Context) (models.ModelInfo, error) {
	if f.infoErr != nil {
		return models.ModelInfo{}, f.infoErr
	}
	return models.ModelInfo{Name: "fake_pipeline", Version: "9.9.9", Source: "local"}, nil
}

type fakeStore struct {
	mu      sync.Mutex
	saved   []models.PredictionLog
	saveErr error
	listErr error
	limit   int
	offset  int
}

func (f *fakeStore) Save(_ context.Context, log *models.PredictionLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, *log)
	return nil
}

func (f *fakeStore) List(_ context.Context, limit, offset int) ([]models.PredictionLog, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.limit, f.offset = limit, offset
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	end := offset + limit
	if end > len(f.saved) {
		end = len(f.saved)
	}
	if offset > len(f.saved) {
		offset = len(f.saved)
	}
	return f.saved[offset:end], int64(len(f.saved)), nil
}

var errBoom = errors.New("boom")
