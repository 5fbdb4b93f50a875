package msgcheck

import "github.com/kailas-cloud/msgcheck/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrInvalidInput        = domain.ErrInvalidInput
	ErrNoMessage           = domain.ErrNoMessage
	ErrInternal            = domain.ErrInternal
	ErrArtifact            = domain.ErrArtifact
	ErrArtifactVersion     = domain.ErrArtifactVersion
	ErrArtifactShape       = domain.ErrArtifactShape
	ErrUnknownArtifactKind = domain.ErrUnknownArtifactKind
)
