package pipeline

import (
	"fmt"
	"math"
)

// Pipeline is an immutable, loaded prediction pipeline. It is safe for
// concurrent use.
type Pipeline struct {
	artifact  *Artifact
	mapper    BinaryMapper
	encoder   *Encoder
	estimator Estimator
}

func New(a *Artifact) (*Pipeline, error) {
	if a == nil {
		return nil, fmt.Errorf("%w: nil artifact", ErrInvalidArtifact)
	}
	if a.Name == "" {
		return nil, fmt.Errorf("%w: missing name", ErrInvalidArtifact)
	}

	encoder, err := NewEncoder(a.Columns)
	if err != nil {
		return nil, err
	}
	estimator, err := newEstimator(a.Estimator, encoder.Width())
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		artifact:  a,
		mapper:    NewBinaryMapper(a.BinaryMapping),
		encoder:   encoder,
		estimator: estimator,
	}, nil
}

// Open loads the artifact at path and builds a pipeline from it.
func Open(path string) (*Pipeline, error) {
	a, err := Load(path)
	if err != nil {
		return nil, err
	}
	p, err := New(a)
	if err != nil {
		return nil, fmt.Errorf("failed to build pipeline from %s: %w", path, err)
	}
	return p, nil
}

func (p *Pipeline) Predict(row Row) (float64, error) {
	x, err := p.encoder.Transform(p.mapper.Apply(row))
	if err != nil {
		return 0, err
	}
	y := p.estimator.Predict(x)
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, fmt.Errorf("%w from pipeline %s", ErrNonFinite, p.artifact.Name)
	}
	return y, nil
}

func (p *Pipeline) Name() string      { return p.artifact.Name }
func (p *Pipeline) Version() string   { return p.artifact.Version }
func (p *Pipeline) Target() string    { return p.artifact.Target }
func (p *Pipeline) TrainedAt() string { return p.artifact.TrainedAt }
func (p *Pipeline) Estimator() string { return p.artifact.Estimator.Kind }
func (p *Pipeline) Trees() int        { return len(p.artifact.Estimator.Trees) }

// Features lists the encoded feature vector slots.
func (p *Pipeline) Features() []string { return p.artifact.FeatureNames() }
