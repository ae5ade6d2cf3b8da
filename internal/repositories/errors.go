package repositories

import "errors"

var (
	// ErrNotFound is returned when a requested row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation is returned when input fails validation before any
	// storage operation is attempted. No write happens on this error.
	ErrValidation = errors.New("validation failed")
)
