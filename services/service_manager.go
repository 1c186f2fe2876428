package services

import (
	"github.com/Purkaitrohit/House-Price-Prediction/inference"
	"github.com/Purkaitrohit/House-Price-Prediction/observability"
	"go.uber.org/zap"
)

type ServiceManager struct {
	PredictService PredictService
	HistoryService HistoryService
}

// NewServiceManager builds all services. store is nil when persistence is off.
func NewServiceManager(predictor inference.Predictor, store PredictionStore, metrics *observability.Metrics, logger *zap.Logger, currency string) *ServiceManager {
	return &ServiceManager{
		PredictService: NewPredictService(predictor, store, metrics, logger, currency),
		HistoryService: NewHistoryService(store),
	}
}
