package validators

import (
	"strings"
	"time"
)

// timestampValidator checks combined date-and-time values. A textual
// timestamp is a calendar date, optionally followed by a space or "T"
// separator and a clock time; both halves are checked by the date and
// time validators.
type timestampValidator struct{}

func (timestampValidator) Validate(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case time.Time:
		return true
	case string:
		datePart, timePart, found := strings.Cut(v, " ")
		if !found {
			datePart, timePart, found = strings.Cut(v, "T")
		}
		if !found {
			return dateValidator{}.Validate(v)
		}
		// Drop a trailing zone designator; the clock check only cares
		// about the time-of-day components.
		timePart = strings.TrimSuffix(timePart, "Z")
		if i := strings.IndexAny(timePart, "+-"); i >= 0 {
			timePart = timePart[:i]
		}
		if i := strings.IndexByte(timePart, '.'); i >= 0 {
			timePart = timePart[:i]
		}
		return dateValidator{}.Validate(datePart) && timeValidator{}.Validate(timePart)
	default:
		return false
	}
}
