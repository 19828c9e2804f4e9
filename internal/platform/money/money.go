// Package money formats USD amounts for display.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Format renders an amount as a dollar string with thousands separators,
// e.g. 1234.5 -> "$1,234.50".
func Format(amount float64) string {
	return printer.Sprintf("$%v", number.Decimal(amount, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
