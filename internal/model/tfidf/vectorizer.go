// Package tfidf implements a fitted TF-IDF text vectorizer.
package tfidf

import (
	"fmt"
	"math"
	"sort"

	"github.com/kailas-cloud/msgcheck/internal/domain"
)

const (
	// Kind is the artifact kind handled by this package.
	Kind = "tfidf"
	// Version is the supported artifact format version.
	Version = 1
)

// Norm selects row normalization of the weighted vector.
type Norm string

const (
	// NormNone leaves the vector unnormalized.
	NormNone Norm = ""
	// NormL1 scales to unit sum of absolute values.
	NormL1 Norm = "l1"
	// NormL2 scales to unit euclidean length.
	NormL2 Norm = "l2"
)

// Params is the fitted state of a vectorizer.
type Params struct {
	Vocabulary   map[string]int
	IDF          []float64
	UseIDF       bool
	Lowercase    bool
	StripAccents Accents
	TokenPattern string
	NgramMin     int
	NgramMax     int
	StopWords    []string
	Binary       bool
	SublinearTF  bool
	Norm         Norm
}

// DefaultParams returns the settings a vectorizer is fitted with unless told otherwise.
func DefaultParams() Params {
	return Params{
		UseIDF:    true,
		Lowercase: true,
		NgramMin:  1,
		NgramMax:  1,
		Norm:      NormL2,
	}
}

// Vectorizer maps text to TF-IDF weighted term vectors.
type Vectorizer struct {
	vocab       map[string]int
	idf         []float64
	useIDF      bool
	binary      bool
	sublinearTF bool
	norm        Norm
	analyzer    *analyzer
}

var _ domain.Vectorizer = (*Vectorizer)(nil)

// New validates fitted params and builds a Vectorizer.
func New(p Params) (*Vectorizer, error) {
	n := len(p.Vocabulary)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty vocabulary", domain.ErrArtifactShape)
	}

	seen := make([]bool, n)
	for term, idx := range p.Vocabulary {
		if idx < 0 || idx >= n {
			return nil, fmt.Errorf("%w: term %q has index %d outside [0, %d)", domain.ErrArtifactShape, term, idx, n)
		}
		if seen[idx] {
			return nil, fmt.Errorf("%w: index %d assigned to more than one term", domain.ErrArtifactShape, idx)
		}
		seen[idx] = true
	}

	if p.UseIDF {
		if len(p.IDF) != n {
			return nil, fmt.Errorf("%w: %d idf weights for %d terms", domain.ErrArtifactShape, len(p.IDF), n)
		}
		for i, w := range p.IDF {
			if math.IsNaN(w) || math.IsInf(w, 0) {
				return nil, fmt.Errorf("%w: idf weight %d is not finite", domain.ErrArtifact, i)
			}
		}
	}

	switch p.Norm {
	case NormNone, NormL1, NormL2:
	default:
		return nil, fmt.Errorf("%w: unknown norm %q", domain.ErrArtifact, p.Norm)
	}

	a, err := newAnalyzer(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrArtifact, err)
	}

	return &Vectorizer{
		vocab:       p.Vocabulary,
		idf:         p.IDF,
		useIDF:      p.UseIDF,
		binary:      p.Binary,
		sublinearTF: p.SublinearTF,
		norm:        p.Norm,
		analyzer:    a,
	}, nil
}

// Kind returns the artifact kind.
func (v *Vectorizer) Kind() string { return Kind }

// Features returns the vocabulary size.
func (v *Vectorizer) Features() int { return len(v.vocab) }

// Transform returns the weighted term vector of text. Terms outside the
// vocabulary are ignored, so unseen text yields the zero vector.
func (v *Vectorizer) Transform(text string) (domain.SparseVector, error) {
	counts := make(map[int]float64)
	for _, term := range v.analyzer.analyze(text) {
		if idx, ok := v.vocab[term]; ok {
			counts[idx]++
		}
	}

	indices := make([]int, 0, len(counts))
	for idx := range counts {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	values := make([]float64, len(indices))
	for i, idx := range indices {
		tf := counts[idx]
		switch {
		case v.binary:
			tf = 1
		case v.sublinearTF:
			tf = 1 + math.Log(tf)
		}
		if v.useIDF {
			tf *= v.idf[idx]
		}
		values[i] = tf
	}
	normalize(values, v.norm)

	vec, err := domain.NewSparseVector(len(v.vocab), indices, values)
	if err != nil {
		return domain.SparseVector{}, fmt.Errorf("build vector: %w", err)
	}
	return vec, nil
}

func normalize(values []float64, n Norm) {
	var total float64
	switch n {
	case NormL1:
		for _, x := range values {
			total += math.Abs(x)
		}
	case NormL2:
		for _, x := range values {
			total += x * x
		}
		total = math.Sqrt(total)
	default:
		return
	}
	if total == 0 {
		return
	}
	for i := range values {
		values[i] /= total
	}
}
