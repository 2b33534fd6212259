package knowledge

import "errors"

var (
	// ErrNotFound signals the requested article does not exist.
	ErrNotFound = errors.New("article not found")
	// ErrInvalidInput signals a validation failure on caller input.
	ErrInvalidInput = errors.New("invalid input")
)
