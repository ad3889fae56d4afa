package chat

import "errors"

var (
	// ErrNotFound is returned when the resume being asked about does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput is returned for rejected request input.
	ErrInvalidInput = errors.New("invalid input")
)
