package validate

import (
	"io"
	"reflect"
	"strconv"
	"time"
)

// Expression is a deferred symbolic expression (such as SQL "NOW()") whose
// value is computed by the persistence layer, not by the caller. Expression
// values always pass type checking: there is nothing to check until the
// expression has been evaluated.
type Expression struct {
	SQL string
}

// Expr wraps a raw expression string.
func Expr(sql string) Expression {
	return Expression{SQL: sql}
}

// IsExpression reports whether v is a deferred expression value. Field
// hooks skip such values entirely; evaluation happens elsewhere.
func IsExpression(v any) bool {
	switch v.(type) {
	case Expression, *Expression:
		return true
	}
	return false
}

// isNil reports whether v is nil, including typed nil pointers, maps and
// slices hiding behind a non-nil interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// isComposite reports whether v is object-shaped: a map or a struct.
// time.Time is deliberately excluded; temporal values behave as scalars
// and are judged by the semantic date/time/timestamp validators.
func isComposite(v any) bool {
	switch v.(type) {
	case time.Time, *time.Time:
		return false
	}
	// Readers are binary handles, not data objects.
	if _, ok := v.(io.Reader); ok {
		return false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map, reflect.Struct:
		return true
	}
	return false
}

// isSequence reports whether v is sequence-shaped: a slice or an array.
// []byte is excluded; raw bytes are a binary scalar, not a sequence.
func isSequence(v any) bool {
	if _, ok := v.([]byte); ok {
		return false
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}

func isTextual(v any) bool {
	_, ok := v.(string)
	return ok
}

// isBinary reports whether v is a binary handle: raw bytes or a reader.
func isBinary(v any) bool {
	switch v.(type) {
	case []byte, io.Reader:
		return true
	}
	return false
}

func isIntegerKind(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

// numericValue extracts a float64 from numeric kinds and numeric strings.
func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	}
	return 0, false
}

// stringForm returns the textual form of a string or numeric value. Other
// kinds have no meaningful textual form for the numeric round-trip checks
// and report ok == false.
func stringForm(v any) (string, bool) {
	switch n := v.(type) {
	case string:
		return n, true
	case int:
		return strconv.Itoa(n), true
	case int8:
		return strconv.FormatInt(int64(n), 10), true
	case int16:
		return strconv.FormatInt(int64(n), 10), true
	case int32:
		return strconv.FormatInt(int64(n), 10), true
	case int64:
		return strconv.FormatInt(n, 10), true
	case uint:
		return strconv.FormatUint(uint64(n), 10), true
	case uint8:
		return strconv.FormatUint(uint64(n), 10), true
	case uint16:
		return strconv.FormatUint(uint64(n), 10), true
	case uint32:
		return strconv.FormatUint(uint64(n), 10), true
	case uint64:
		return strconv.FormatUint(n, 10), true
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64), true
	}
	return "", false
}
