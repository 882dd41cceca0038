// utils/money.go
package utils

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Supported display currencies and their symbols. Formatting only;
// there is no conversion anywhere in the system.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"NOK": "kr",
	"SEK": "kr",
	"DKK": "kr",
	"CHF": "CHF",
	"CAD": "$",
	"AUD": "$",
	"INR": "₹",
	"JPY": "¥",
}

var moneyPrinter = message.NewPrinter(language.English)

// KnownCurrency reports whether code is in the supported display set.
func KnownCurrency(code string) bool {
	_, ok := currencySymbols[code]
	return ok
}

// FormatMoney renders an amount for display. Known currencies get their
// symbol and grouped digits; anything else falls back to
// "<CODE> <amount to two decimals>". The fallback is the contract for
// unrecognized codes, not a best effort.
func FormatMoney(amount float64, code string) string {
	symbol, ok := currencySymbols[code]
	if !ok {
		return fmt.Sprintf("%s %.2f", code, amount)
	}
	grouped := moneyPrinter.Sprintf("%.2f", amount)
	if symbol == "kr" || symbol == "CHF" {
		return symbol + " " + grouped
	}
	return symbol + grouped
}
