package domain

import (
	"math"
	"testing"
)

func TestNewSparseVector(t *testing.T) {
	v, err := NewSparseVector(5, []int{0, 3}, []float64{0.6, 0.8})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.NNZ() != 2 {
		t.Errorf("NNZ() = %d, want 2", v.NNZ())
	}
	if got := v.Dot([]float64{1, 1, 1, 2, 1}); math.Abs(got-2.2) > 1e-12 {
		t.Errorf("Dot() = %v, want 2.2", got)
	}
}

func TestNewSparseVector_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		indices []int
		values  []float64
	}{
		{"length mismatch", []int{0, 1}, []float64{1}},
		{"unsorted", []int{2, 1}, []float64{1, 1}},
		{"duplicate", []int{1, 1}, []float64{1, 1}},
		{"out of range", []int{5}, []float64{1}},
		{"negative", []int{-1}, []float64{1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewSparseVector(5, tc.indices, tc.values); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestSparseVector_ZeroDot(t *testing.T) {
	v, _ := NewSparseVector(3, nil, nil)
	if v.Dot([]float64{1, 2, 3}) != 0 {
		t.Error("empty vector must have zero dot product")
	}
}
