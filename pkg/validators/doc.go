// Package validators provides named, stateless semantic type checkers and
// the registry that resolves them by logical type name.
//
// # Architecture
//
// Two building blocks:
//
//   - Validator – a stateless predicate for a single semantic type (e.g. a
//     calendar-valid date). Built-ins cover "date", "time" and "timestamp".
//   - Registry – maps type names to factories and memoizes the constructed
//     instance per name for the process lifetime. Resolution is guarded by
//     a mutex, so first use from concurrent goroutines constructs exactly
//     one instance.
//
// The registry indirection exists so applications can add new semantic
// types (custom date formats, domain-specific codes) without modifying the
// type-check dispatch: register a factory under a name and reference that
// name from column metadata.
//
// # Usage
//
//	v, err := validators.Get("date")
//	if err != nil {
//	    // unresolvable name: broken setup, not bad data
//	}
//	ok := v.Validate("2024-02-29")
//
//	validators.Register("iso_week", func() validators.Validator {
//	    return isoWeekValidator{}
//	})
//
// # Error Handling
//
// Get is the only failure surface: an unregistered name returns an error
// wrapping ErrValidatorNotFound together with the requested name. Validate
// never returns errors; a verdict is always a plain boolean.
package validators
