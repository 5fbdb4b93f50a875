package msgcheck

import (
	"regexp"

	"github.com/kailas-cloud/msgcheck/internal/domain"
)

// Label is a predicted class: the JSON string, number or boolean the
// classifier was fitted with.
type Label = domain.Label

var fakePattern = regexp.MustCompile(`(?i)fake|forwarded|fraud|hoax`)

// IsFake reports whether a prediction flags the message: a string label
// mentioning fake, forwarded, fraud or hoax, or the number 1.
func IsFake(l Label) bool {
	if l.IsString() {
		return fakePattern.MatchString(l.String())
	}
	f, ok := l.Float()
	return ok && f == 1
}

// ParseLabel parses a prediction as returned in the "prediction" field of
// POST /predict.
func ParseLabel(raw []byte) (Label, error) {
	return domain.ParseLabel(raw)
}
