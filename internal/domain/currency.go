package domain

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// The app displays a single fixed currency and locale.
var currencyPrinter = message.NewPrinter(language.English)

// FormatCurrency renders an amount for display: dollar sign, thousands
// separators, always 2 decimals. Display-only; stored costs stay numeric.
func FormatCurrency(amount float64) string {
	return currencyPrinter.Sprintf("$%v", number.Decimal(amount, number.Scale(2)))
}
