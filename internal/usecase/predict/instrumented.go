package predict

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/kailas-cloud/msgcheck/internal/domain"
	"github.com/kailas-cloud/msgcheck/internal/logger"
	"github.com/kailas-cloud/msgcheck/internal/metrics"
)

// Error kinds used as metric label values.
const (
	ErrorKindInvalidInput = "invalid_input"
	ErrorKindInternal     = "internal"
)

// InstrumentedPredictor wraps a Predictor with metrics and logging.
type InstrumentedPredictor struct {
	inner  domain.Predictor
	logger *zap.Logger
}

var _ domain.Predictor = (*InstrumentedPredictor)(nil)

// NewInstrumentedPredictor wraps a predictor with observability.
func NewInstrumentedPredictor(inner domain.Predictor, logger *zap.Logger) *InstrumentedPredictor {
	return &InstrumentedPredictor{inner: inner, logger: logger}
}

// Predict delegates to the inner predictor and records the outcome.
func (p *InstrumentedPredictor) Predict(ctx context.Context, text string) (domain.Label, error) {
	start := time.Now()

	label, err := p.inner.Predict(ctx, text)

	duration := time.Since(start)
	runes := utf8.RuneCountInString(text)
	metrics.MessageRunes.Observe(float64(runes))

	log := logger.FromContextOr(ctx, p.logger)

	if err != nil {
		kind := ErrorKind(err)
		metrics.PredictionErrorsTotal.WithLabelValues(kind).Inc()
		if kind == ErrorKindInternal {
			log.Error("Prediction failed",
				zap.Duration("duration", duration),
				zap.Int("message_runes", runes),
				zap.Error(err),
			)
		} else {
			log.Debug("Prediction rejected",
				zap.Int("message_runes", runes),
				zap.Error(err),
			)
		}
		return domain.Label{}, err
	}

	metrics.PredictionDuration.Observe(duration.Seconds())
	metrics.PredictionsTotal.WithLabelValues(label.String()).Inc()

	log.Debug("Prediction completed",
		zap.Duration("duration", duration),
		zap.Int("message_runes", runes),
		zap.Stringer("label", label),
	)

	return label, nil
}

// ErrorKind classifies a prediction error for metrics.
func ErrorKind(err error) string {
	if errors.Is(err, domain.ErrInvalidInput) {
		return ErrorKindInvalidInput
	}
	return ErrorKindInternal
}
