package validators

import "time"

// clockLayouts are the accepted textual forms of a time of day.
var clockLayouts = []string{"15:04:05", "15:04"}

// timeValidator checks clock-valid times of day: hours, minutes and
// seconds must all fall in range ("24:00:00" and "12:61:00" are rejected).
type timeValidator struct{}

func (timeValidator) Validate(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case time.Time:
		return true
	case string:
		for _, layout := range clockLayouts {
			if _, err := time.Parse(layout, v); err == nil {
				return true
			}
		}
		return false
	default:
		return false
	}
}
