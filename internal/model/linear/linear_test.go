package linear

import (
	"errors"
	"math"
	"testing"

	"github.com/kailas-cloud/msgcheck/internal/domain"
)

func labels(names ...string) []domain.Label {
	out := make([]domain.Label, len(names))
	for i, n := range names {
		out[i] = domain.NewLabel(n)
	}
	return out
}

func vector(t *testing.T, dim int, indices []int, values []float64) domain.SparseVector {
	t.Helper()
	v, err := domain.NewSparseVector(dim, indices, values)
	if err != nil {
		t.Fatalf("NewSparseVector: %v", err)
	}
	return v
}

func binaryClassifier(t *testing.T) *Classifier {
	t.Helper()
	c, err := New(Params{
		Classes:   labels("ham", "spam"),
		Coef:      [][]float64{{-1, 2, 0.5}},
		Intercept: []float64{-0.5},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestPredict_Binary(t *testing.T) {
	c := binaryClassifier(t)

	tests := []struct {
		name    string
		indices []int
		values  []float64
		want    string
	}{
		{"positive score", []int{1}, []float64{1}, "spam"},
		{"negative score", []int{0}, []float64{1}, "ham"},
		{"zero vector", nil, nil, "ham"},
		{"exact zero", []int{2}, []float64{1}, "ham"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := c.Predict(vector(t, 3, tc.indices, tc.values))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tc.want {
				t.Errorf("Predict() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestPredict_Multiclass(t *testing.T) {
	c, err := New(Params{
		Classes:   labels("ham", "spam", "phishing"),
		Coef:      [][]float64{{1, 0}, {0, 1}, {0, 1}},
		Intercept: []float64{0, 0, 0},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got, _ := c.Predict(vector(t, 2, []int{0}, []float64{1}))
	if got.String() != "ham" {
		t.Errorf("Predict() = %s, want ham", got)
	}

	// spam and phishing tie; the first wins
	got, _ = c.Predict(vector(t, 2, []int{1}, []float64{1}))
	if got.String() != "spam" {
		t.Errorf("Predict() = %s, want spam", got)
	}
}

func TestPredict_NumericLabels(t *testing.T) {
	zero, _ := domain.ParseLabel([]byte("0"))
	one, _ := domain.ParseLabel([]byte("1"))
	c, err := New(Params{
		Classes:   []domain.Label{zero, one},
		Coef:      [][]float64{{3}},
		Intercept: []float64{0},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got, _ := c.Predict(vector(t, 1, []int{0}, []float64{1}))
	if !got.Equal(one) {
		t.Errorf("Predict() = %s, want 1", got)
	}
}

func TestPredict_DimensionMismatch(t *testing.T) {
	c := binaryClassifier(t)

	if _, err := c.Predict(vector(t, 4, nil, nil)); err == nil {
		t.Fatal("expected dimension error")
	}
}

func TestPredict_NonFinite(t *testing.T) {
	c := binaryClassifier(t)

	if _, err := c.Predict(vector(t, 3, []int{0}, []float64{math.NaN()})); err == nil {
		t.Fatal("expected error for NaN decision")
	}
}

func TestDecision(t *testing.T) {
	c := binaryClassifier(t)

	scores, err := c.Decision(vector(t, 3, []int{0, 1}, []float64{0.5, 0.5}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scores) != 1 || math.Abs(scores[0]-0) > 1e-12 {
		t.Errorf("Decision() = %v, want [0]", scores)
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name string
		p    Params
	}{
		{"one class", Params{
			Classes: labels("ham"), Coef: [][]float64{{1}}, Intercept: []float64{0},
		}},
		{"binary with two rows", Params{
			Classes: labels("ham", "spam"), Coef: [][]float64{{1}, {1}}, Intercept: []float64{0, 0},
		}},
		{"intercept count", Params{
			Classes: labels("ham", "spam"), Coef: [][]float64{{1}}, Intercept: nil,
		}},
		{"ragged rows", Params{
			Classes:   labels("a", "b", "c"),
			Coef:      [][]float64{{1, 2}, {1}, {1, 2}},
			Intercept: []float64{0, 0, 0},
		}},
		{"empty row", Params{
			Classes: labels("ham", "spam"), Coef: [][]float64{{}}, Intercept: []float64{0},
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.p)
			if !errors.Is(err, domain.ErrArtifactShape) {
				t.Errorf("expected ErrArtifactShape, got %v", err)
			}
		})
	}
}

func TestClassifier_Accessors(t *testing.T) {
	c := binaryClassifier(t)
	if c.Kind() != "linear" {
		t.Errorf("Kind() = %q", c.Kind())
	}
	if c.Features() != 3 {
		t.Errorf("Features() = %d, want 3", c.Features())
	}
	if len(c.Classes()) != 2 {
		t.Errorf("Classes() = %v", c.Classes())
	}
}
