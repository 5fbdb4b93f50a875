package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput signals a request the service refuses to classify.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInternal signals a failure during vectorization or classification.
	ErrInternal = errors.New("internal error")

	// ErrArtifact signals an artifact that cannot be loaded.
	ErrArtifact = errors.New("artifact error")
	// ErrArtifactVersion signals an artifact written for another format version.
	ErrArtifactVersion = fmt.Errorf("%w: version mismatch", ErrArtifact)
	// ErrArtifactShape signals inconsistent dimensions inside or across artifacts.
	ErrArtifactShape = fmt.Errorf("%w: shape mismatch", ErrArtifact)
	// ErrUnknownArtifactKind signals an artifact kind without a registered decoder.
	ErrUnknownArtifactKind = fmt.Errorf("%w: unknown kind", ErrArtifact)
)

// ErrNoMessage is returned for an empty or absent message.
var ErrNoMessage = NewInputError("No message provided")

// InputError wraps ErrInvalidInput with a client-facing message.
type InputError struct {
	Message string
}

func (e *InputError) Error() string { return e.Message }

func (e *InputError) Unwrap() error { return ErrInvalidInput }

// NewInputError creates an invalid input error with the given message.
func NewInputError(msg string) error {
	return &InputError{Message: msg}
}

// NewInternalError wraps cause as an ErrInternal for operation op.
func NewInternalError(op string, cause error) error {
	return fmt.Errorf("%w: %s: %w", ErrInternal, op, cause)
}
