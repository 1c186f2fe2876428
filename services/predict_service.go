package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Purkaitrohit/House-Price-Prediction/inference"
	"github.com/Purkaitrohit/House-Price-Prediction/models"
	"github.com/Purkaitrohit/House-Price-Prediction/observability"
	"github.com/Purkaitrohit/House-Price-Prediction/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PredictService interface {
	Predict(ctx context.Context, source string, features models.HouseFeatures) (*models.PredictResponse, error)
	ModelInfo(ctx context.Context) (*models.ModelInfo, error)
}

type predictService struct {
	predictor inference.Predictor
	store     PredictionStore
	metrics   *observability.Metrics
	logger    *zap.Logger
	currency  string
	now       func() time.Time
}

// NewPredictService wires the predictor. store and metrics may be nil.
func NewPredictService(predictor inference.Predictor, store PredictionStore, metrics *observability.Metrics, logger *zap.Logger, currency string) PredictService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if currency == "" {
		currency = utils.DefaultCurrencySymbol
	}
	return &predictService{
		predictor: predictor,
		store:     store,
		metrics:   metrics,
		logger:    logger,
		currency:  currency,
		now:       time.Now,
	}
}

func (s *predictService) Predict(ctx context.Context, source string, features models.HouseFeatures) (*models.PredictResponse, error) {
	if err := models.Validator().StructCtx(ctx, features); err != nil {
		s.metrics.RecordPrediction(source, 0, 0, err)
		return nil, newValidationError(err)
	}

	start := s.now()
	est, err := s.predictor.Predict(ctx, features.Row())
	elapsed := s.now().Sub(start)
	if err != nil {
		s.metrics.RecordPrediction(source, elapsed, 0, err)
		return nil, fmt.Errorf("%w: %w", ErrPredictionFailed, err)
	}

	estimate := utils.NonNegative(est.Value)
	s.metrics.RecordPrediction(source, elapsed, estimate, nil)

	response := &models.PredictResponse{
		PredictionID: uuid.New(),
		Estimate:     estimate,
		Formatted:    utils.FormatCurrency(s.currency, estimate),
		Currency:     s.currency,
		ModelName:    est.ModelName,
		ModelVersion: est.ModelVersion,
		CreatedAt:    s.now().UTC(),
	}

	s.logger.Debug("Prediction served",
		zap.String("prediction_id", response.PredictionID.String()),
		zap.String("source", source),
		zap.Float64("estimate", estimate),
		zap.String("model_version", est.ModelVersion),
		zap.Duration("elapsed", elapsed))

	s.persist(ctx, source, features, response)
	return response, nil
}

// persist records the prediction. Failures are logged and never surface to
// the caller.
func (s *predictService) persist(ctx context.Context, source string, features models.HouseFeatures, res *models.PredictResponse) {
	if s.store == nil {
		return
	}
	entry := &models.PredictionLog{
		ID:           res.PredictionID,
		Features:     features,
		Estimate:     res.Estimate,
		ModelName:    res.ModelName,
		ModelVersion: res.ModelVersion,
		Source:       source,
		CreatedAt:    res.CreatedAt,
	}
	if err := s.store.Save(ctx, entry); err != nil {
		s.logger.Warn("Failed to store prediction",
			zap.String("prediction_id", res.PredictionID.String()),
			zap.Error(err))
	}
}

func (s *predictService) ModelInfo(ctx context.Context) (*models.ModelInfo, error) {
	info, err := s.predictor.Info(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read model info: %w", err)
	}
	return &info, nil
}
