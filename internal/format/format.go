// Package format converts numeric values into display strings.
package format

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Currency formats an amount in the given currency unit, e.g. "$1,234.56".
// The number is rendered by the printer so grouping follows the locale;
// currency.Symbol on a full amount would insert a space after the symbol.
func Currency(amount decimal.Decimal, unit currency.Unit) string {
	return printer.Sprintf("%v%.2f", currency.Symbol(unit), amount.InexactFloat64())
}

// USD formats an amount in US dollars.
func USD(amount decimal.Decimal) string {
	return Currency(amount, currency.USD)
}

// Percent formats a percentage value with one decimal place, e.g. "83.3%".
func Percent(p decimal.Decimal) string {
	return printer.Sprintf("%.1f%%", p.InexactFloat64())
}

// Date formats a calendar date, e.g. "Aug 27, 2026".
func Date(t time.Time) string {
	return t.Format("Jan 2, 2006")
}
