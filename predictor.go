package main

import (
	"fmt"

	"github.com/Purkaitrohit/House-Price-Prediction/config"
	"github.com/Purkaitrohit/House-Price-Prediction/inference"
	"github.com/Purkaitrohit/House-Price-Prediction/observability"
	"github.com/Purkaitrohit/House-Price-Prediction/pipeline"
	"go.uber.org/zap"
)

// newPredictor builds the configured backend. holder is nil for the grpc
// backend. The returned close func releases backend resources.
func newPredictor(cfg *config.Config, logger *zap.Logger, metrics *observability.Metrics) (inference.Predictor, *pipeline.Holder, func() error, error) {
	switch cfg.PredictorBackend {
	case config.BackendGRPC:
		client, err := config.NewGRPCClient(cfg.GRPCHost)
		if err != nil {
			return nil, nil, nil, err
		}
		logger.Info("Using remote inference backend", zap.String("host", cfg.GRPCHost))
		return inference.NewRemote(client.Conn(), cfg.PredictTimeout), nil, client.Close, nil

	case config.BackendLocal:
		holder, err := pipeline.NewHolder(cfg.ModelPath, logger, pipeline.WithReloadHook(metrics.RecordReload))
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to load prediction pipeline: %w", err)
		}
		return inference.NewLocal(holder), holder, func() error { return nil }, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown predictor backend %q", cfg.PredictorBackend)
	}
}
