package dialog

import (
	"regexp"
	"strconv"
	"strings"
)

var integerPattern = regexp.MustCompile(`\d+`)

// ExtractIntegers pulls every integer out of a chat message, in order of
// appearance, after stripping thousands separators ("1,00,000" reads as
// 100000). This is the only "NLU" in the flow. When a turn needs both an
// amount and a tenure the tie-break rule is: the larger number is the
// amount, the smaller is the tenure in months.
func ExtractIntegers(text string) []int {
	cleaned := strings.ReplaceAll(text, ",", "")
	matches := integerPattern.FindAllString(cleaned, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]int, 0, len(matches))
	for _, m := range matches {
		n, err := strconv.Atoi(m)
		if err != nil {
			// Longer than an int can hold; skip it.
			continue
		}
		out = append(out, n)
	}
	return out
}

// AmountAndTenure applies the tie-break rule to two or more extracted
// integers.
func AmountAndTenure(numbers []int) (amount, tenure int) {
	amount, tenure = numbers[0], numbers[0]
	for _, n := range numbers[1:] {
		if n > amount {
			amount = n
		}
		if n < tenure {
			tenure = n
		}
	}
	return amount, tenure
}

func containsAny(message string, keywords ...string) bool {
	lower := strings.ToLower(message)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
