package observability

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordPrediction(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.RecordPrediction("api", 3*time.Millisecond, 5500000, nil)
	m.RecordPrediction("api", time.Millisecond, 0, errors.New("boom"))
	m.RecordPrediction("form", time.Millisecond, 4200000, nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.PredictionsTotal.WithLabelValues("api", StatusSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PredictionsTotal.WithLabelValues("api", StatusError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PredictionsTotal.WithLabelValues("form", StatusSuccess)))

	families, err := reg.Gather()
	require.NoError(t, err)
	var samples uint64
	for _, f := range families {
		if f.GetName() == "house_price_predicted_price" {
			samples = f.GetMetric()[0].GetHistogram().GetSampleCount()
		}
	}
	assert.Equal(t, uint64(2), samples, "failed predictions are not observed")
}

func TestMetrics_RecordReload(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.RecordReload(nil)
	m.RecordReload(errors.New("bad artifact"))
	m.RecordReload(nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ModelReloadsTotal.WithLabelValues(StatusSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ModelReloadsTotal.WithLabelValues(StatusError)))
}

func TestMetrics_NilIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordPrediction("cli", time.Millisecond, 1, nil)
		m.RecordReload(nil)
	})
}
