package resumes

import "errors"

var (
	// ErrNotFound is returned when no resume matches the lookup.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput is returned for rejected request input.
	ErrInvalidInput = errors.New("invalid input")
	// ErrVisionDisabled is returned when no image recognition client is configured.
	ErrVisionDisabled = errors.New("vision disabled")
	// ErrNoTextRecognized is returned when image recognition yields nothing usable.
	ErrNoTextRecognized = errors.New("no text recognized")
)
