package validators

import "time"

// dateLayout is the canonical textual form of a calendar date.
const dateLayout = "2006-01-02"

// dateValidator checks calendar-valid dates. A time.Time is always valid;
// a string must be an ISO date whose components denote a real calendar day
// (e.g. "2023-02-30" is rejected).
type dateValidator struct{}

func (dateValidator) Validate(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case time.Time:
		return true
	case string:
		_, err := time.Parse(dateLayout, v)
		return err == nil
	default:
		return false
	}
}
