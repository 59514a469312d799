// Package money renders amounts the way the storefront displays them: Nigerian naira, whole
// units, thousands grouped.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const NairaSign = "₦"

var printer = message.NewPrinter(language.English)

// FormatNGN renders 300000 as "₦300,000" and -500 as "-₦500".
func FormatNGN(amount int64) string {
	if amount < 0 {
		// -amount overflows for MinInt64; keep the sign off the grouped digits instead
		return "-" + NairaSign + printer.Sprintf("%d", uint64(-(amount+1))+1)
	}
	return NairaSign + printer.Sprintf("%d", amount)
}
