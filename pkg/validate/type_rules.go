package validate

import (
	"math"
	"strconv"

	"github.com/krytenuk/doctrine1/pkg/fieldtype"
	"github.com/krytenuk/doctrine1/pkg/validators"
)

// IsValidType reports whether value is acceptable for the declared
// semantic type. Pure predicate; evaluation order matters and first match
// wins:
//
//  1. Deferred expressions are always valid (evaluated elsewhere).
//  2. Nil is always valid (nullability is a separate not-null constraint).
//  3. Object-shaped values are valid only for the "object" type, and
//     sequence-shaped values only for the "array" type.
//  4. Otherwise the declared type tag decides.
//
// Tags outside the declared enumeration fail closed.
func IsValidType(value any, t fieldtype.Type) bool {
	if IsExpression(value) {
		return true
	}
	if isNil(value) {
		return true
	}
	if isComposite(value) {
		return t == fieldtype.Object
	}
	if isSequence(value) {
		return t == fieldtype.Array
	}

	switch t {
	case fieldtype.Float, fieldtype.Double, fieldtype.Decimal:
		return isWellFormedFloat(value)
	case fieldtype.Integer:
		return isWellFormedInteger(value)
	case fieldtype.String:
		_, numeric := numericValue(value)
		return isTextual(value) || numeric
	case fieldtype.Blob:
		return isTextual(value) || isBinary(value)
	case fieldtype.Clob, fieldtype.Gzip:
		return isTextual(value)
	case fieldtype.Array:
		return isSequence(value)
	case fieldtype.Object:
		return isComposite(value)
	case fieldtype.JSON:
		return isComposite(value) || isSequence(value)
	case fieldtype.Boolean:
		if _, ok := value.(bool); ok {
			return true
		}
		f, ok := numericValue(value)
		return ok && (f == 0 || f == 1)
	case fieldtype.Timestamp, fieldtype.Time, fieldtype.Date:
		v, err := validators.Get(t.String())
		if err != nil {
			return false
		}
		return v.Validate(value)
	case fieldtype.Enum:
		return isTextual(value) || isIntegerKind(value)
	case fieldtype.Set:
		return isSequence(value) || isTextual(value)
	}

	// Unrecognized tag: fail closed. Unknown tags are already rejected at
	// schema definition time by fieldtype.Parse.
	return false
}

// isWellFormedFloat checks that the value's textual form survives a
// float-parse round trip unchanged, which catches malformed numerics and
// silently-truncated strings ("4.2abc", "004.2").
func isWellFormedFloat(value any) bool {
	if isIntegerKind(value) {
		return true
	}
	s, ok := stringForm(value)
	if !ok {
		return false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return false
	}
	return s == strconv.FormatFloat(f, 'f', -1, 64)
}

// isWellFormedInteger checks that the value's textual form equals its
// value rounded to the nearest integer, so "4" passes while "4.2" and
// even "4.0" do not.
func isWellFormedInteger(value any) bool {
	if isIntegerKind(value) {
		return true
	}
	s, ok := stringForm(value)
	if !ok {
		return false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return false
	}
	return s == strconv.FormatFloat(math.Round(f), 'f', -1, 64)
}
