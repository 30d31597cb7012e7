// Package fieldtype declares the closed set of semantic column types the
// validation subsystem dispatches on, together with the Column descriptor
// that carries a field's declared constraints (type, optional maximum
// length, not-null, uniqueness, extra named validators).
//
// Parse fails closed: a tag outside the enumeration is a schema error and
// is rejected with ErrUnknownType at definition time rather than silently
// accepted during validation.
package fieldtype
