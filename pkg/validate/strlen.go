package validate

import (
	"fmt"
	"unicode/utf8"
)

// StringLength counts the logical characters of a value's textual form as
// Unicode code points, so "héllo" measures 5 regardless of its byte
// length. Nil is treated as the empty string.
func StringLength(v any) int {
	switch s := v.(type) {
	case nil:
		return 0
	case string:
		return utf8.RuneCountInString(s)
	case []byte:
		return utf8.RuneCount(s)
	}
	if isNil(v) {
		return 0
	}
	return utf8.RuneCountInString(fmt.Sprint(v))
}
