package predict

import "github.com/kailas-cloud/msgcheck/internal/domain"

// Vectorizer is the consumer interface for the fitted text transform.
type Vectorizer interface {
	Transform(text string) (domain.SparseVector, error)
	Features() int
}

// Classifier is the consumer interface for the fitted model.
type Classifier interface {
	Predict(vec domain.SparseVector) (domain.Label, error)
	Classes() []domain.Label
	Features() int
}
