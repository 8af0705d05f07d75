package cli

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatInt rounds v and groups thousands: 1650.4 -> "1,650".
func FormatInt(v float64) string {
	return printer.Sprintf("%d", int64(math.Round(v)))
}

// FormatGrams renders a macro amount with at most one decimal: "12g", "0.5g".
func FormatGrams(v float64) string {
	r := math.Round(v*10) / 10
	if r == math.Trunc(r) {
		return printer.Sprintf("%dg", int64(r))
	}

	return printer.Sprintf("%.1fg", r)
}
