package validators

import "errors"

// Package-specific errors
var (
	// ErrValidatorNotFound is returned when no factory is registered for
	// the requested semantic type name. This indicates a broken setup, not
	// bad user data, so it surfaces as an error rather than a recorded
	// validation failure.
	ErrValidatorNotFound = errors.New("validator not found")
)
