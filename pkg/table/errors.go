package table

import "errors"

// Package-specific errors
var (
	// ErrUnknownColumn is returned when a uniqueness group references a
	// column the definition does not declare.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrInvalidSchema is returned when a YAML schema document cannot be
	// parsed or describes invalid metadata.
	ErrInvalidSchema = errors.New("invalid schema")

	// ErrBadUniqueProbe is returned when a uniqueness probe is invoked
	// with mismatched columns and values.
	ErrBadUniqueProbe = errors.New("mismatched unique probe columns and values")

	// ErrUniqueProbeFailed is returned when the uniqueness query itself
	// fails against the database.
	ErrUniqueProbeFailed = errors.New("unique probe query failed")
)
