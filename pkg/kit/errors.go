package kit

import "errors"

var (
	// ErrGeneration wraps every failure returned by GenerateKit.
	ErrGeneration = errors.New("kit: generation failed")
	// ErrMalformedArtifact signals a rendered artifact that does not parse
	// in its target format.
	ErrMalformedArtifact = errors.New("kit: malformed artifact")
	// ErrUnknownArtifact is returned when an artifact name is outside the
	// kit's fixed set.
	ErrUnknownArtifact = errors.New("kit: unknown artifact")
)
