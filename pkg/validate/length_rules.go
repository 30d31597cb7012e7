package validate

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/krytenuk/doctrine1/pkg/fieldtype"
)

// DefaultDecimalSeparator splits the integer and fractional parts of a
// decimal's textual form unless overridden by an Option.
const DefaultDecimalSeparator = "."

type options struct {
	decimalSeparator string
}

// Option configures length validation.
type Option func(*options)

// WithDecimalSeparator sets the separator used to split decimal values
// when counting their length. Empty separators are ignored.
func WithDecimalSeparator(sep string) Option {
	return func(o *options) {
		if sep != "" {
			o.decimalSeparator = sep
		}
	}
}

// ValidateLength reports whether value fits the declared maximum length.
// A nil max means no length constraint. Timestamp, integer, enum and set
// columns are exempt: length is not a meaningful constraint for those
// representations.
//
// The effective length depends on the declared type:
//
//   - array/object: byte length of the serialized form
//   - json: byte length of the JSON encoding
//   - decimal/float: digits of the absolute value, the separator itself
//     not counted
//   - blob: raw byte length
//   - anything else: Unicode code points via StringLength
func ValidateLength(value any, t fieldtype.Type, max *int, opts ...Option) bool {
	if max == nil {
		return true
	}

	switch t {
	case fieldtype.Timestamp, fieldtype.Integer, fieldtype.Enum, fieldtype.Set:
		return true
	}

	o := options{decimalSeparator: DefaultDecimalSeparator}
	for _, opt := range opts {
		opt(&o)
	}

	var length int
	switch t {
	case fieldtype.Array, fieldtype.Object, fieldtype.JSON:
		length = serializedLength(value)
	case fieldtype.Decimal, fieldtype.Float:
		length = decimalLength(value, o.decimalSeparator)
	case fieldtype.Blob:
		length = byteLength(value)
	default:
		length = StringLength(value)
	}

	return length <= *max
}

// serializedLength measures the generic serialized form of a structured
// value. JSON is the framework's serialization format; values it cannot
// encode fall back to character counting.
func serializedLength(value any) int {
	encoded, err := json.Marshal(value)
	if err != nil {
		return StringLength(value)
	}
	return len(encoded)
}

// decimalLength sums the digit counts of the integer and fractional parts
// of the value's absolute textual form. The separator does not count
// toward the length: 12345 measures 5 and 1.5 measures 2.
func decimalLength(value any, separator string) int {
	s, ok := stringForm(value)
	if f, numeric := numericValue(value); numeric {
		// FormatFloat always emits ".", so normalize to the configured
		// separator before splitting.
		s = strings.ReplaceAll(strconv.FormatFloat(math.Abs(f), 'f', -1, 64), ".", separator)
	} else if !ok {
		return StringLength(value)
	}
	s = strings.TrimPrefix(s, "-")

	parts := strings.Split(s, separator)
	length := len(parts[0])
	if len(parts) > 1 {
		length += len(parts[1])
	}
	return length
}

func byteLength(value any) int {
	switch b := value.(type) {
	case []byte:
		return len(b)
	case string:
		return len(b)
	}
	if s, ok := stringForm(value); ok {
		return len(s)
	}
	return StringLength(value)
}
