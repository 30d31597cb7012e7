package validate

import "errors"

// Package-specific errors
var (
	// ErrUniquenessCheck is returned when the uniqueness probe itself
	// fails (infrastructure trouble, not a validation verdict).
	ErrUniquenessCheck = errors.New("uniqueness check failed")

	// ErrInvalidLocale is returned when the configured locale tag cannot
	// be parsed.
	ErrInvalidLocale = errors.New("invalid locale tag")
)
