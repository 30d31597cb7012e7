package validate

import (
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DecimalSeparatorForLocale derives the decimal separator a locale uses
// for numbers, so callers can wire locale-driven configuration without the
// validator ever reading ambient process locale state:
//
//	sep := validate.DecimalSeparatorForLocale(language.German) // ","
//	ok := validate.ValidateLength(v, fieldtype.Decimal, max,
//	    validate.WithDecimalSeparator(sep))
func DecimalSeparatorForLocale(tag language.Tag) string {
	formatted := message.NewPrinter(tag).Sprint(number.Decimal(1.5))
	for _, r := range formatted {
		if !unicode.IsDigit(r) {
			return string(r)
		}
	}
	return DefaultDecimalSeparator
}
