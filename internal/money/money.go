// Package money converts between the decimal dollar strings the form
// boundary speaks and the integer minor units (cents) everything else
// stores and sums.
package money

import (
	"fmt"
	"math"
	"strconv"
)

// ParseDollars converts a decimal dollar string to cents. The conversion
// is round(x*100) to the nearest cent, ties away from zero, so "42.505"
// becomes 4251 and the result is deterministic across inputs with more
// than two fraction digits.
func ParseDollars(s string) (int64, error) {
	dollars, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return int64(math.Round(dollars * 100)), nil
}

// Dollars converts cents back to a dollar value for form prefill.
func Dollars(cents int64) float64 {
	return float64(cents) / 100
}

// Format renders cents as a currency string, e.g. 4250 -> "$42.50".
func Format(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
