package greenops

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer formats integers with English thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatNumber formats an integer with thousand separators: 18248 -> "18,248".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatFloat rounds f to precision decimals and adds thousand separators
// to the integer part: FormatFloat(1234.567, 2) -> "1,234.57".
func FormatFloat(f float64, precision int) string {
	if precision <= 0 {
		return FormatNumber(int64(math.Round(f)))
	}

	const base = 10
	multiplier := math.Pow(base, float64(precision))
	rounded := math.Round(f*multiplier) / multiplier

	formatted := strconv.FormatFloat(rounded, 'f', precision, 64)
	intPart, frac, _ := strings.Cut(formatted, ".")

	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return formatted
	}
	grouped := FormatNumber(n)
	if n == 0 && strings.HasPrefix(intPart, "-") {
		grouped = "-" + grouped
	}
	return grouped + "." + frac
}

// FormatLarge abbreviates values of a million or more: 1.5e9 -> "~1.5 billion".
// Smaller values are rounded and comma-separated.
func FormatLarge(n float64) string {
	switch {
	case n >= BillionThreshold:
		return fmt.Sprintf("~%.1f billion", n/BillionThreshold)
	case n >= LargeNumberThreshold:
		return fmt.Sprintf("~%.1f million", n/LargeNumberThreshold)
	default:
		return FormatNumber(int64(math.Round(n)))
	}
}
