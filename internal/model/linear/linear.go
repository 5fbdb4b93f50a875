// Package linear implements classifiers driven by a linear decision function,
// such as logistic regression or a linear SVM.
package linear

import (
	"fmt"
	"math"

	"github.com/kailas-cloud/msgcheck/internal/domain"
)

const (
	// Kind is the artifact kind handled by this package.
	Kind = "linear"
	// Version is the supported artifact format version.
	Version = 1
)

// Params is the fitted state of a linear classifier.
// Binary problems carry a single coefficient row scoring classes[1].
type Params struct {
	Classes   []domain.Label
	Coef      [][]float64
	Intercept []float64
}

// Classifier predicts the class with the highest decision value.
type Classifier struct {
	classes   []domain.Label
	coef      [][]float64
	intercept []float64
	features  int
}

var _ domain.Classifier = (*Classifier)(nil)

// New validates fitted params and builds a Classifier.
func New(p Params) (*Classifier, error) {
	if err := domain.ValidateClasses(p.Classes); err != nil {
		return nil, err
	}

	rows := len(p.Classes)
	if rows == 2 {
		rows = 1
	}
	if len(p.Coef) != rows {
		return nil, fmt.Errorf("%w: %d coefficient rows for %d classes", domain.ErrArtifactShape, len(p.Coef), len(p.Classes))
	}
	if len(p.Intercept) != rows {
		return nil, fmt.Errorf("%w: %d intercepts for %d coefficient rows", domain.ErrArtifactShape, len(p.Intercept), rows)
	}

	features := len(p.Coef[0])
	if features == 0 {
		return nil, fmt.Errorf("%w: empty coefficient row", domain.ErrArtifactShape)
	}
	for i, row := range p.Coef {
		if len(row) != features {
			return nil, fmt.Errorf("%w: coefficient row %d has %d features, want %d",
				domain.ErrArtifactShape, i, len(row), features)
		}
	}

	return &Classifier{
		classes:   p.Classes,
		coef:      p.Coef,
		intercept: p.Intercept,
		features:  features,
	}, nil
}

// Kind returns the artifact kind.
func (c *Classifier) Kind() string { return Kind }

// Classes returns the fitted labels.
func (c *Classifier) Classes() []domain.Label { return c.classes }

// Features returns the expected vector dimension.
func (c *Classifier) Features() int { return c.features }

// Decision returns the raw decision values, one per coefficient row.
func (c *Classifier) Decision(vec domain.SparseVector) ([]float64, error) {
	if vec.Dim != c.features {
		return nil, fmt.Errorf("vector has %d features, classifier expects %d", vec.Dim, c.features)
	}
	scores := make([]float64, len(c.coef))
	for i, row := range c.coef {
		s := vec.Dot(row) + c.intercept[i]
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return nil, fmt.Errorf("non-finite decision value for row %d", i)
		}
		scores[i] = s
	}
	return scores, nil
}

// Predict returns the class with the highest decision value.
func (c *Classifier) Predict(vec domain.SparseVector) (domain.Label, error) {
	scores, err := c.Decision(vec)
	if err != nil {
		return domain.Label{}, err
	}
	if len(scores) == 1 {
		if scores[0] > 0 {
			return c.classes[1], nil
		}
		return c.classes[0], nil
	}
	return c.classes[argmax(scores)], nil
}

// argmax returns the first index of the largest value.
func argmax(xs []float64) int {
	best := 0
	for i := 1; i < len(xs); i++ {
		if xs[i] > xs[best] {
			best = i
		}
	}
	return best
}
