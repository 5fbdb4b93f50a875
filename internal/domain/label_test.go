package domain

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseLabel_Scalars(t *testing.T) {
	tests := []struct {
		in       string
		str      string
		isString bool
	}{
		{`"spam"`, "spam", true},
		{`"fake news"`, "fake news", true},
		{`1`, "1", false},
		{`-2.5`, "-2.5", false},
		{`true`, "true", false},
		{` "padded" `, "padded", true},
	}

	for _, tc := range tests {
		l, err := ParseLabel([]byte(tc.in))
		if err != nil {
			t.Fatalf("ParseLabel(%s): unexpected error: %v", tc.in, err)
		}
		if l.String() != tc.str {
			t.Errorf("ParseLabel(%s).String() = %q, want %q", tc.in, l.String(), tc.str)
		}
		if l.IsString() != tc.isString {
			t.Errorf("ParseLabel(%s).IsString() = %v, want %v", tc.in, l.IsString(), tc.isString)
		}
	}
}

func TestParseLabel_Rejects(t *testing.T) {
	for _, in := range []string{`null`, `[1,2]`, `{"a":1}`, `"unterminated`, ``} {
		if _, err := ParseLabel([]byte(in)); err == nil {
			t.Errorf("ParseLabel(%q): expected error", in)
		}
	}
}

func TestLabel_Equal(t *testing.T) {
	num, _ := ParseLabel([]byte(`1`))
	str := NewLabel("1")

	if num.Equal(str) {
		t.Error("number 1 and string \"1\" must differ")
	}
	if !str.Equal(NewLabel("1")) {
		t.Error("identical string labels must be equal")
	}
}

func TestLabel_Float(t *testing.T) {
	num, _ := ParseLabel([]byte(`0`))
	if f, ok := num.Float(); !ok || f != 0 {
		t.Errorf("Float() = %v, %v; want 0, true", f, ok)
	}
	if _, ok := NewLabel("0").Float(); ok {
		t.Error("string label must not report a float")
	}
}

func TestLabel_JSONPreservesType(t *testing.T) {
	var payload struct {
		Prediction Label `json:"prediction"`
	}
	if err := json.Unmarshal([]byte(`{"prediction": 1}`), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	out, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"prediction":1}` {
		t.Errorf("got %s, want number preserved", out)
	}

	out, _ = json.Marshal(map[string]Label{"prediction": NewLabel(`say "hi"`)})
	if string(out) != `{"prediction":"say \"hi\""}` {
		t.Errorf("got %s", out)
	}
}

func TestLabel_ZeroMarshalsNull(t *testing.T) {
	var l Label
	if !l.IsZero() {
		t.Fatal("expected zero label")
	}
	out, _ := json.Marshal(l)
	if string(out) != "null" {
		t.Errorf("got %s, want null", out)
	}
}

func TestValidateClasses(t *testing.T) {
	if err := ValidateClasses([]Label{NewLabel("ham"), NewLabel("spam")}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateClasses([]Label{NewLabel("ham")}); !errors.Is(err, ErrArtifactShape) {
		t.Errorf("single class: expected ErrArtifactShape, got %v", err)
	}
	if err := ValidateClasses([]Label{NewLabel("ham"), NewLabel("ham")}); !errors.Is(err, ErrArtifact) {
		t.Errorf("duplicate: expected ErrArtifact, got %v", err)
	}
	if err := ValidateClasses([]Label{NewLabel("ham"), {}}); err == nil {
		t.Error("empty class: expected error")
	}
}

func TestHasLabel(t *testing.T) {
	classes := []Label{NewLabel("ham"), NewLabel("spam")}
	if !HasLabel(classes, NewLabel("spam")) {
		t.Error("expected spam in classes")
	}
	if HasLabel(classes, NewLabel("eggs")) {
		t.Error("unexpected eggs in classes")
	}
}
