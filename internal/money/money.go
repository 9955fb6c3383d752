// Package money provides amount parsing, clamping, and formatting
// for the treasury desk.
package money

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseAmount parses free-form currency input into a non-negative amount.
// Currency symbols, commas, and other non-numeric characters are stripped;
// only digits and the decimal point survive. Unparsable or non-finite
// input yields 0. Negative input clamps to 0.
func ParseAmount(raw string) float64 {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}

	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	if v < 0 {
		return 0
	}
	return v
}

// ParsePercent parses a percentage value and clamps it to [0, 100].
// Unparsable input yields 0.
func ParsePercent(raw string) float64 {
	cleaned := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), "%"))
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return ClampPercent(v)
}

// ClampPercent clamps a rate to the [0, 100] range.
func ClampPercent(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// ClampInt clamps n to the inclusive [lo, hi] range.
func ClampInt(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// FormatUSD formats an amount as whole-dollar USD with comma separators.
// e.g., 1234567.4 -> "$1,234,567"
func FormatUSD(amount float64) string {
	return "$" + FormatNumber(int64(math.Round(amount)))
}

// FormatUSDPrecise formats an amount with cents.
func FormatUSDPrecise(amount float64) string {
	whole := math.Trunc(amount)
	cents := math.Round((amount - whole) * 100)
	if cents >= 100 {
		whole++
		cents = 0
	}
	return fmt.Sprintf("$%s.%02d", FormatNumber(int64(whole)), int64(cents))
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-100 rate for display, trimming trailing zeros.
// e.g., 5.0 -> "5%", 0.25 -> "0.25%"
func FormatPercent(pct float64) string {
	s := strconv.FormatFloat(pct, 'f', -1, 64)
	return s + "%"
}
