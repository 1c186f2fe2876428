package utils

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

const DefaultCurrencySymbol = "₹"

// NonNegative clamps an estimate to zero. NaN and negative zero become zero.
func NonNegative(v float64) float64 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	return v
}

// FormatCurrency renders v as "<symbol> 1,234,567.89", rounding half-even on
// the exact binary value. Negative values are clamped to zero first.
func FormatCurrency(symbol string, v float64) string {
	if symbol == "" {
		symbol = DefaultCurrencySymbol
	}
	s := strconv.FormatFloat(NonNegative(v), 'f', 2, 64)
	whole, frac, _ := strings.Cut(s, ".")
	n, ok := new(big.Int).SetString(whole, 10)
	if !ok {
		// +Inf
		return symbol + " " + s
	}
	return symbol + " " + humanize.BigComma(n) + "." + frac
}
