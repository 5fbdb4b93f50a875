package msgcheck

import (
	"testing"

	"github.com/kailas-cloud/msgcheck/internal/domain"
)

func mustLabel(t *testing.T, raw string) Label {
	t.Helper()
	l, err := domain.ParseLabel([]byte(raw))
	if err != nil {
		t.Fatalf("ParseLabel(%s): %v", raw, err)
	}
	return l
}

func TestIsFake(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{`"fake"`, true},
		{`"FAKE NEWS"`, true},
		{`"forwarded"`, true},
		{`"Fraud"`, true},
		{`"hoax"`, true},
		{`"real"`, false},
		{`"ham"`, false},
		{`"1"`, false},
		{`1`, true},
		{`1.0`, true},
		{`0`, false},
		{`true`, false},
	}

	for _, tc := range tests {
		if got := IsFake(mustLabel(t, tc.raw)); got != tc.want {
			t.Errorf("IsFake(%s) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestIsFake_Zero(t *testing.T) {
	if IsFake(Label{}) {
		t.Error("zero label must not be fake")
	}
}
