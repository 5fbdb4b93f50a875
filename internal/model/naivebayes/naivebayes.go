// Package naivebayes implements a fitted multinomial naive Bayes classifier.
package naivebayes

import (
	"errors"
	"fmt"
	"math"

	"github.com/kailas-cloud/msgcheck/internal/domain"
)

const (
	// Kind is the artifact kind handled by this package.
	Kind = "multinomial_nb"
	// Version is the supported artifact format version.
	Version = 1
)

// Params is the fitted state of a multinomial naive Bayes model.
type Params struct {
	Classes        []domain.Label
	ClassLogPrior  []float64
	FeatureLogProb [][]float64
}

// Classifier picks the class with the highest joint log likelihood.
type Classifier struct {
	classes        []domain.Label
	classLogPrior  []float64
	featureLogProb [][]float64
	features       int
}

var _ domain.Classifier = (*Classifier)(nil)

// New validates fitted params and builds a Classifier.
func New(p Params) (*Classifier, error) {
	if err := domain.ValidateClasses(p.Classes); err != nil {
		return nil, err
	}
	k := len(p.Classes)
	if len(p.ClassLogPrior) != k {
		return nil, fmt.Errorf("%w: %d class priors for %d classes", domain.ErrArtifactShape, len(p.ClassLogPrior), k)
	}
	if len(p.FeatureLogProb) != k {
		return nil, fmt.Errorf("%w: %d feature rows for %d classes", domain.ErrArtifactShape, len(p.FeatureLogProb), k)
	}

	features := len(p.FeatureLogProb[0])
	if features == 0 {
		return nil, fmt.Errorf("%w: empty feature row", domain.ErrArtifactShape)
	}
	for i, row := range p.FeatureLogProb {
		if len(row) != features {
			return nil, fmt.Errorf("%w: feature row %d has %d features, want %d",
				domain.ErrArtifactShape, i, len(row), features)
		}
	}
	for i, lp := range p.ClassLogPrior {
		if math.IsNaN(lp) || math.IsInf(lp, 1) {
			return nil, fmt.Errorf("%w: class log prior %d is %v", domain.ErrArtifact, i, lp)
		}
	}

	return &Classifier{
		classes:        p.Classes,
		classLogPrior:  p.ClassLogPrior,
		featureLogProb: p.FeatureLogProb,
		features:       features,
	}, nil
}

// Kind returns the artifact kind.
func (c *Classifier) Kind() string { return Kind }

// Classes returns the fitted labels.
func (c *Classifier) Classes() []domain.Label { return c.classes }

// Features returns the expected vector dimension.
func (c *Classifier) Features() int { return c.features }

// JointLogLikelihood returns the unnormalized log posterior of every class.
func (c *Classifier) JointLogLikelihood(vec domain.SparseVector) ([]float64, error) {
	if vec.Dim != c.features {
		return nil, fmt.Errorf("vector has %d features, classifier expects %d", vec.Dim, c.features)
	}
	jll := make([]float64, len(c.classes))
	for i, row := range c.featureLogProb {
		jll[i] = c.classLogPrior[i] + vec.Dot(row)
		if math.IsNaN(jll[i]) {
			return nil, fmt.Errorf("log likelihood of class %s is NaN", c.classes[i])
		}
	}
	return jll, nil
}

// Predict returns the most likely class. Ties go to the first class.
func (c *Classifier) Predict(vec domain.SparseVector) (domain.Label, error) {
	jll, err := c.JointLogLikelihood(vec)
	if err != nil {
		return domain.Label{}, err
	}
	best := 0
	for i := 1; i < len(jll); i++ {
		if jll[i] > jll[best] {
			best = i
		}
	}
	if math.IsInf(jll[best], -1) {
		return domain.Label{}, errors.New("every class has zero likelihood")
	}
	return c.classes[best], nil
}
