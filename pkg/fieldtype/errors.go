package fieldtype

import (
	"errors"
	"fmt"
)

// Package-specific errors
var (
	// ErrUnknownType is returned when a raw tag does not belong to the
	// closed type enumeration.
	ErrUnknownType = errors.New("unknown field type")
)

func unknownType(raw string) error {
	return fmt.Errorf("%w: %q", ErrUnknownType, raw)
}
