package money

import (
	"fmt"
	"math"
	"strconv"
)

// FormatRupees renders an integer rupee amount with thousands separators,
// e.g. 150000 -> "150,000". The chat scripts and rejection reasons use
// this everywhere a figure is shown to the applicant.
func FormatRupees(amount int) string {
	return group(strconv.FormatInt(int64(amount), 10))
}

// FormatRupeesRounded renders a fractional rupee amount rounded to the
// nearest rupee. Display only; underwriting compares exact values.
func FormatRupeesRounded(amount float64) string {
	return group(strconv.FormatInt(int64(math.Round(amount)), 10))
}

// Rupees is a convenience for "Rs. 50,000" style strings.
func Rupees(amount int) string {
	return fmt.Sprintf("Rs. %s", FormatRupees(amount))
}

func group(digits string) string {
	neg := ""
	if len(digits) > 0 && digits[0] == '-' {
		neg = "-"
		digits = digits[1:]
	}
	n := len(digits)
	if n <= 3 {
		return neg + digits
	}
	head := n % 3
	out := digits[:head]
	for i := head; i < n; i += 3 {
		if out != "" {
			out += ","
		}
		out += digits[i : i+3]
	}
	return neg + out
}
