package domain

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// Label is a predicted class. It keeps the exact JSON scalar produced at
// fitting time: a string, a number or a boolean.
type Label struct {
	raw []byte
}

// NewLabel creates a string label.
func NewLabel(s string) Label {
	raw, _ := json.Marshal(s)
	return Label{raw: raw}
}

// ParseLabel validates a JSON scalar and returns it as a Label.
func ParseLabel(data []byte) (Label, error) {
	data = bytes.TrimSpace(data)
	if !gjson.ValidBytes(data) {
		return Label{}, fmt.Errorf("label %q is not valid JSON", data)
	}
	switch gjson.ParseBytes(data).Type {
	case gjson.String, gjson.Number, gjson.True, gjson.False:
	default:
		return Label{}, fmt.Errorf("label %s must be a string, number or boolean", data)
	}
	raw := make([]byte, len(data))
	copy(raw, data)
	return Label{raw: raw}, nil
}

// IsZero reports whether the label is unset.
func (l Label) IsZero() bool { return len(l.raw) == 0 }

// Equal reports whether both labels carry the same JSON value.
func (l Label) Equal(other Label) bool {
	return l.String() == other.String() && l.IsString() == other.IsString()
}

// IsString reports whether the label is a JSON string.
func (l Label) IsString() bool {
	return len(l.raw) > 0 && l.raw[0] == '"'
}

// Float returns the numeric value of a number label.
func (l Label) Float() (float64, bool) {
	res := gjson.ParseBytes(l.raw)
	if res.Type != gjson.Number {
		return 0, false
	}
	return res.Float(), true
}

// String returns the unquoted text of string labels and the JSON text otherwise.
func (l Label) String() string {
	if l.IsString() {
		return gjson.ParseBytes(l.raw).String()
	}
	return string(l.raw)
}

// MarshalJSON returns the label as it was loaded.
func (l Label) MarshalJSON() ([]byte, error) {
	if l.IsZero() {
		return []byte("null"), nil
	}
	return l.raw, nil
}

// UnmarshalJSON accepts any JSON scalar except null.
func (l *Label) UnmarshalJSON(data []byte) error {
	parsed, err := ParseLabel(data)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

var _ json.Marshaler = Label{}
