// Package verification simulates the identity check performed before
// underwriting runs.
package verification

import "strings"

// DigitsOnly strips everything except ASCII digits from a chat message,
// so "my number is 98765-43210" becomes "9876543210".
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CheckPhone reports whether the claimed number is exactly 10 digits.
// Deliberately a format-only check: the claimed value is never compared
// against the phone stored on the applicant record, since the applicant
// has no way of knowing the synthetic number we generated for them.
func CheckPhone(claimed string) bool {
	if len(claimed) != 10 {
		return false
	}
	for i := 0; i < len(claimed); i++ {
		if claimed[i] < '0' || claimed[i] > '9' {
			return false
		}
	}
	return true
}
