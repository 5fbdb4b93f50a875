package predict

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/kailas-cloud/msgcheck/internal/domain"
	"github.com/kailas-cloud/msgcheck/internal/logger"
)

// DefaultMaxMessageRunes bounds the message length accepted by Predict.
const DefaultMaxMessageRunes = 10000

// probeText is vectorized by the health probe.
const probeText = "are you free tonight"

// Service owns the loaded artifacts and answers classification requests.
// Artifacts are never mutated after New, so a Service is safe for concurrent use.
type Service struct {
	vectorizer Vectorizer
	classifier Classifier
	maxRunes   int
}

var _ domain.Predictor = (*Service)(nil)

// New creates a Service over loaded artifacts.
func New(vectorizer Vectorizer, classifier Classifier) (*Service, error) {
	if vectorizer == nil || classifier == nil {
		return nil, errors.New("predict: vectorizer and classifier are required")
	}
	if vectorizer.Features() != classifier.Features() {
		return nil, fmt.Errorf("%w: vectorizer produces %d features, classifier expects %d",
			domain.ErrArtifactShape, vectorizer.Features(), classifier.Features())
	}
	return &Service{
		vectorizer: vectorizer,
		classifier: classifier,
		maxRunes:   DefaultMaxMessageRunes,
	}, nil
}

// WithMaxMessageRunes sets the message length bound. Zero or less disables it.
func (s *Service) WithMaxMessageRunes(n int) *Service {
	s.maxRunes = n
	return s
}

// Classes returns the closed set of labels Predict can return.
func (s *Service) Classes() []domain.Label {
	return s.classifier.Classes()
}

// Predict classifies text. Empty or oversized text fails with
// domain.ErrInvalidInput; transform and model failures, panics included,
// fail with domain.ErrInternal.
func (s *Service) Predict(ctx context.Context, text string) (label domain.Label, err error) {
	if text == "" {
		return domain.Label{}, domain.ErrNoMessage
	}
	if s.maxRunes > 0 && utf8.RuneCountInString(text) > s.maxRunes {
		return domain.Label{}, domain.NewInputError(fmt.Sprintf("Message exceeds %d characters", s.maxRunes))
	}

	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(ctx).Error("prediction panicked",
				zap.Any("panic", r),
				zap.Stack("stacktrace"),
			)
			label = domain.Label{}
			err = domain.NewInternalError("predict", fmt.Errorf("panic: %v", r))
		}
	}()

	vec, err := s.vectorizer.Transform(text)
	if err != nil {
		return domain.Label{}, domain.NewInternalError("vectorize", err)
	}

	label, err = s.classifier.Predict(vec)
	if err != nil {
		return domain.Label{}, domain.NewInternalError("classify", err)
	}
	if !domain.HasLabel(s.classifier.Classes(), label) {
		return domain.Label{}, domain.NewInternalError("classify",
			fmt.Errorf("label %s is not a fitted class", label))
	}

	logger.FromContext(ctx).Debug("message classified",
		zap.Int("message_runes", utf8.RuneCountInString(text)),
		zap.Int("features", vec.NNZ()),
		zap.Stringer("label", label),
	)
	return label, nil
}

// CheckVectorizer transforms a fixed probe sentence.
func (s *Service) CheckVectorizer(_ context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("vectorizer probe panicked: %v", r)
		}
	}()
	vec, err := s.vectorizer.Transform(probeText)
	if err != nil {
		return fmt.Errorf("vectorizer probe: %w", err)
	}
	if vec.Dim != s.classifier.Features() {
		return fmt.Errorf("vectorizer probe: got %d features, want %d", vec.Dim, s.classifier.Features())
	}
	return nil
}

// CheckClassifier classifies the zero vector and checks the label is a fitted class.
func (s *Service) CheckClassifier(_ context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("classifier probe panicked: %v", r)
		}
	}()
	label, err := s.classifier.Predict(domain.SparseVector{Dim: s.classifier.Features()})
	if err != nil {
		return fmt.Errorf("classifier probe: %w", err)
	}
	if !domain.HasLabel(s.classifier.Classes(), label) {
		return fmt.Errorf("classifier probe: label %s is not a fitted class", label)
	}
	return nil
}
