package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Prediction Prometheus metrics.
var (
	PredictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "msgcheck",
			Name:      "predictions_total",
			Help:      "Total number of successful predictions by label",
		},
		[]string{"label"},
	)

	PredictionErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "msgcheck",
			Name:      "prediction_errors_total",
			Help:      "Total failed predictions by error kind",
		},
		[]string{"kind"}, // "invalid_input" / "internal"
	)

	PredictionDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "msgcheck",
			Name:      "prediction_duration_seconds",
			Help:      "Vectorize plus classify duration in seconds",
			Buckets:   []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		},
	)

	MessageRunes = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "msgcheck",
			Name:      "message_runes",
			Help:      "Length of classified messages in runes",
			Buckets:   prometheus.ExponentialBuckets(8, 4, 7),
		},
	)

	ModelInfo = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "msgcheck",
			Name:      "model_info",
			Help:      "Loaded artifacts; value is always 1",
		},
		[]string{"vectorizer", "classifier", "features", "classes"},
	)
)

var registered bool

// Register registers HTTP and prediction metrics with the default registry.
// Must be called once from main.
func Register() {
	if registered {
		return
	}
	prometheus.MustRegister(
		httpRequestDuration,
		httpRequestsTotal,
		PredictionsTotal,
		PredictionErrorsTotal,
		PredictionDuration,
		MessageRunes,
		ModelInfo,
	)
	registered = true
}

// SetModelInfo publishes the loaded artifact kinds and shapes.
func SetModelInfo(vectorizerKind, classifierKind string, features, classes int) {
	ModelInfo.Reset()
	ModelInfo.WithLabelValues(
		vectorizerKind, classifierKind, strconv.Itoa(features), strconv.Itoa(classes),
	).Set(1)
}
