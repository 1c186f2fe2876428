// Package observability holds the Prometheus metrics of the prediction
// service. All metric operations are safe for concurrent use.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "house_price"

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

type Metrics struct {
	// PredictionsTotal counts predictions.
	// Labels: source (form, api, cli), status (success, error)
	PredictionsTotal *prometheus.CounterVec

	// PredictionDurationSeconds measures time spent in the predictor.
	// Labels: source
	PredictionDurationSeconds *prometheus.HistogramVec

	// PredictedPrice records the distribution of returned estimates.
	PredictedPrice prometheus.Histogram

	// ModelReloadsTotal counts artifact reload attempts.
	// Labels: status (success, error)
	ModelReloadsTotal *prometheus.CounterVec
}

// NewMetrics registers the metrics with reg. Pass prometheus.DefaultRegisterer
// in production and a fresh registry in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		PredictionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "predictions_total",
			Help:      "Total number of price predictions.",
		}, []string{"source", "status"}),

		PredictionDurationSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "prediction_duration_seconds",
			Help:      "Time spent producing a prediction.",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 10},
		}, []string{"source"}),

		PredictedPrice: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "predicted_price",
			Help:      "Distribution of predicted prices.",
			Buckets:   prometheus.ExponentialBuckets(500000, 1.5, 12),
		}),

		ModelReloadsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "model_reloads_total",
			Help:      "Total number of pipeline artifact reloads.",
		}, []string{"status"}),
	}
}

// RecordPrediction is a no-op on a nil receiver.
func (m *Metrics) RecordPrediction(source string, d time.Duration, estimate float64, err error) {
	if m == nil {
		return
	}
	status := StatusSuccess
	if err != nil {
		status = StatusError
	}
	m.PredictionsTotal.WithLabelValues(source, status).Inc()
	m.PredictionDurationSeconds.WithLabelValues(source).Observe(d.Seconds())
	if err == nil {
		m.PredictedPrice.Observe(estimate)
	}
}

func (m *Metrics) RecordReload(err error) {
	if m == nil {
		return
	}
	status := StatusSuccess
	if err != nil {
		status = StatusError
	}
	m.ModelReloadsTotal.WithLabelValues(status).Inc()
}
