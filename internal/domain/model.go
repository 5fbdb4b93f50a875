package domain

import (
	"context"
	"fmt"
)

// Vectorizer turns raw text into a feature vector using fitted state.
// Implementations are immutable and safe for concurrent use.
type Vectorizer interface {
	Transform(text string) (SparseVector, error)
	Features() int
}

// Classifier maps a feature vector to one of its fitted classes.
// Implementations are immutable and safe for concurrent use.
type Classifier interface {
	Predict(vec SparseVector) (Label, error)
	Classes() []Label
	Features() int
}

// Predictor is the text-in, label-out contract shared between layers.
type Predictor interface {
	Predict(ctx context.Context, text string) (Label, error)
}

// Kinded is implemented by artifacts that report their decoder kind.
type Kinded interface {
	Kind() string
}

// HasLabel reports whether label is one of classes.
func HasLabel(classes []Label, label Label) bool {
	for _, c := range classes {
		if c.Equal(label) {
			return true
		}
	}
	return false
}

// ValidateClasses checks that a fitted label set holds at least two distinct labels.
func ValidateClasses(classes []Label) error {
	if len(classes) < 2 {
		return fmt.Errorf("%w: need at least 2 classes, got %d", ErrArtifactShape, len(classes))
	}
	for i, c := range classes {
		if c.IsZero() {
			return fmt.Errorf("%w: class %d is empty", ErrArtifact, i)
		}
		for _, prev := range classes[:i] {
			if prev.Equal(c) {
				return fmt.Errorf("%w: duplicate class %s", ErrArtifact, c)
			}
		}
	}
	return nil
}
