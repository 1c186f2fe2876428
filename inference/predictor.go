package inference

import (
	"context"

	"github.com/Purkaitrohit/House-Price-Prediction/models"
	"github.com/Purkaitrohit/House-Price-Prediction/pipeline"
)

const (
	SourceLocal = "local"
	SourceGRPC  = "grpc"
)

// Estimate is a price together with the identity of the pipeline that
// produced it.
type Estimate struct {
	Value        float64
	ModelName    string
	ModelVersion string
}

// Predictor produces a price estimate for a single-row feature table.
type Predictor interface {
	Predict(ctx context.Context, row pipeline.Row) (Estimate, error)
	Info(ctx context.Context) (models.ModelInfo, error)
}

// Local predicts in-process with the pipeline currently held by h.
type Local struct {
	holder *pipeline.Holder
}

func NewLocal(holder *pipeline.Holder) *Local {
	return &Local{holder: holder}
}

func (l *Local) Predict(ctx context.Context, row pipeline.Row) (Estimate, error) {
	if err := ctx.Err(); err != nil {
		return Estimate{}, err
	}
	// One snapshot so a concurrent reload cannot split value and identity.
	p := l.holder.Pipeline()
	v, err := p.Predict(row)
	if err != nil {
		return Estimate{}, err
	}
	return Estimate{Value: v, ModelName: p.Name(), ModelVersion: p.Version()}, nil
}

func (l *Local) Info(context.Context) (models.ModelInfo, error) {
	p := l.holder.Pipeline()
	return models.ModelInfo{
		Name:      p.Name(),
		Version:   p.Version(),
		Target:    p.Target(),
		TrainedAt: p.TrainedAt(),
		Estimator: p.Estimator(),
		Trees:     p.Trees(),
		Features:  p.Features(),
		Source:    SourceLocal,
	}, nil
}
