package domain

import "fmt"

// SparseVector is a feature vector with only its non-zero entries stored.
// Indices are strictly increasing and below Dim.
type SparseVector struct {
	Dim     int
	Indices []int
	Values  []float64
}

// NewSparseVector validates and creates a sparse vector.
func NewSparseVector(dim int, indices []int, values []float64) (SparseVector, error) {
	if len(indices) != len(values) {
		return SparseVector{}, fmt.Errorf("sparse vector: %d indices for %d values", len(indices), len(values))
	}
	prev := -1
	for _, idx := range indices {
		if idx <= prev || idx >= dim {
			return SparseVector{}, fmt.Errorf("sparse vector: index %d out of order or range (dim %d)", idx, dim)
		}
		prev = idx
	}
	return SparseVector{Dim: dim, Indices: indices, Values: values}, nil
}

// NNZ returns the number of stored entries.
func (v SparseVector) NNZ() int { return len(v.Indices) }

// Dot returns the dot product with a dense row of length Dim.
func (v SparseVector) Dot(row []float64) float64 {
	var sum float64
	for i, idx := range v.Indices {
		sum += v.Values[i] * row[idx]
	}
	return sum
}
