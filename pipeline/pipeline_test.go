package pipeline

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shippedArtifact = "../artifacts/house_price_rf_pipeline.json"

func defaultRow() Row {
	return Row{
		"area":             3000,
		"bedrooms":         2,
		"bathrooms":        2,
		"stories":          2,
		"mainroad":         "Required",
		"guestroom":        "Required",
		"basement":         "Required",
		"hotwaterheating":  "Required",
		"airconditioning":  "Required",
		"parking":          "Required",
		"prefarea":         "Required",
		"furnishingstatus": "semi-furnished",
		"price_category":   "Low Pricing",
	}
}

func linearArtifact() *Artifact {
	return &Artifact{
		Name:    "linear_test",
		Version: "0.1.0",
		Target:  "price",
		Columns: []Column{
			{Name: "a", Kind: ColumnNumeric},
			{Name: "flag", Kind: ColumnNumeric},
			{Name: "c", Kind: ColumnOneHot, Categories: []string{"x", "y"}},
		},
		Estimator: EstimatorSpec{
			Kind:         EstimatorLinear,
			Intercept:    5,
			Coefficients: []float64{2, 10, 100, 1000},
		},
	}
}

func TestOpen_ShippedArtifact(t *testing.T) {
	p, err := Open(shippedArtifact)
	require.NoError(t, err)

	assert.Equal(t, "house_price_rf_pipeline", p.Name())
	assert.Equal(t, EstimatorRandomForest, p.Estimator())
	assert.Equal(t, 3, p.Trees())
	assert.Len(t, p.Features(), 17)
	assert.Contains(t, p.Features(), "furnishingstatus=semi-furnished")
}

func TestPipeline_PredictDefaultRecord(t *testing.T) {
	p, err := Open(shippedArtifact)
	require.NoError(t, err)

	got, err := p.Predict(defaultRow())
	require.NoError(t, err)

	// (3,400,000 + 8,100,000 + 5,000,000) / 3
	assert.InDelta(t, 5500000.0, got, 1e-6)
}

func TestPipeline_PredictOtherBranches(t *testing.T) {
	p, err := Open(shippedArtifact)
	require.NoError(t, err)

	row := defaultRow()
	row["area"] = 8000
	row["bathrooms"] = 1
	row["stories"] = 3
	row["airconditioning"] = "Not Required"
	row["mainroad"] = "no"
	row["furnishingstatus"] = "furnished"
	row["price_category"] = "High Pricing"

	got, err := p.Predict(row)
	require.NoError(t, err)

	// (9,800,000 + 3,900,000 + 4,800,000) / 3
	assert.InDelta(t, 18500000.0/3, got, 1e-6)
}

func TestPipeline_PredictIsDeterministic(t *testing.T) {
	p, err := Open(shippedArtifact)
	require.NoError(t, err)

	first, err := p.Predict(defaultRow())
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		again, err := p.Predict(defaultRow())
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestPipeline_YesNoAndRequiredAreEquivalent(t *testing.T) {
	p, err := Open(shippedArtifact)
	require.NoError(t, err)

	required := defaultRow()
	yes := defaultRow()
	for _, col := range []string{"mainroad", "guestroom", "basement", "hotwaterheating", "airconditioning", "parking", "prefarea"} {
		yes[col] = "yes"
	}

	a, err := p.Predict(required)
	require.NoError(t, err)
	b, err := p.Predict(yes)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestPipeline_LinearEstimator(t *testing.T) {
	p, err := New(linearArtifact())
	require.NoError(t, err)

	got, err := p.Predict(Row{"a": 3, "flag": "yes", "c": "y", "ignored": "extra"})
	require.NoError(t, err)

	assert.Equal(t, 1021.0, got)
}

func TestPipeline_NumericTypes(t *testing.T) {
	p, err := New(linearArtifact())
	require.NoError(t, err)

	for _, v := range []any{int64(3), float32(3), 3.0, uint8(3)} {
		got, err := p.Predict(Row{"a": v, "flag": 0, "c": "x"})
		require.NoError(t, err)
		assert.Equal(t, 111.0, got, "%T", v)
	}
}

func TestPipeline_PredictErrors(t *testing.T) {
	p, err := Open(shippedArtifact)
	require.NoError(t, err)

	t.Run("unknown one-hot category", func(t *testing.T) {
		row := defaultRow()
		row["furnishingstatus"] = "luxury"
		_, err := p.Predict(row)
		assert.ErrorIs(t, err, ErrUnknownCategory)
	})

	t.Run("unmapped binary value", func(t *testing.T) {
		row := defaultRow()
		row["parking"] = "maybe"
		_, err := p.Predict(row)
		assert.ErrorIs(t, err, ErrNotNumeric)
		assert.ErrorIs(t, err, ErrUnknownCategory)
	})

	t.Run("missing column", func(t *testing.T) {
		row := defaultRow()
		delete(row, "stories")
		_, err := p.Predict(row)
		assert.ErrorIs(t, err, ErrMissingColumn)
	})
}

func TestPipeline_NonFinitePrediction(t *testing.T) {
	p, err := New(linearArtifact())
	require.NoError(t, err)

	_, err = p.Predict(Row{"a": math.MaxFloat64, "flag": 0, "c": "x"})
	assert.ErrorIs(t, err, ErrNonFinite)
	assert.False(t, IsInputError(err))
}

func TestIsInputError(t *testing.T) {
	assert.True(t, IsInputError(fmt.Errorf("wrapped: %w", ErrUnknownCategory)))
	assert.True(t, IsInputError(ErrMissingColumn))
	assert.True(t, IsInputError(ErrNotNumeric))
	assert.False(t, IsInputError(ErrInvalidArtifact))
	assert.False(t, IsInputError(nil))
}

func TestNew_RejectsInvalidArtifacts(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(a *Artifact)
	}{
		{"missing name", func(a *Artifact) { a.Name = "" }},
		{"no columns", func(a *Artifact) { a.Columns = nil }},
		{"unknown column kind", func(a *Artifact) { a.Columns[0].Kind = "ordinal" }},
		{"duplicate column", func(a *Artifact) { a.Columns[1].Name = "a" }},
		{"one-hot without categories", func(a *Artifact) { a.Columns[2].Categories = nil }},
		{"coefficient count", func(a *Artifact) { a.Estimator.Coefficients = []float64{1} }},
		{"unknown estimator", func(a *Artifact) { a.Estimator.Kind = "xgboost" }},
		{"forest without trees", func(a *Artifact) { a.Estimator = EstimatorSpec{Kind: EstimatorRandomForest} }},
		{"backward child", func(a *Artifact) {
			a.Estimator = EstimatorSpec{Kind: EstimatorRandomForest, Trees: []Tree{{Nodes: []Node{
				{Feature: 0, Threshold: 1, Left: 0, Right: 1},
				{Left: -1, Right: -1, Value: 1},
			}}}}
		}},
		{"feature out of range", func(a *Artifact) {
			a.Estimator = EstimatorSpec{Kind: EstimatorRandomForest, Trees: []Tree{{Nodes: []Node{
				{Feature: 4, Threshold: 1, Left: 1, Right: 2},
				{Left: -1, Right: -1, Value: 1},
				{Left: -1, Right: -1, Value: 2},
			}}}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := linearArtifact()
			tt.mutate(a)
			_, err := New(a)
			assert.ErrorIs(t, err, ErrInvalidArtifact)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	malformed := filepath.Join(dir, "malformed.json")
	require.NoError(t, os.WriteFile(malformed, []byte(`{"name": "x", "colums": []}`), 0o644))
	_, err = Load(malformed)
	assert.ErrorIs(t, err, ErrInvalidArtifact)
}
