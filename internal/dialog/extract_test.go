package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractIntegers(t *testing.T) {
	tests := []struct {
		in   string
		want []int
	}{
		{"I need 100000 for 24 months", []int{100000, 24}},
		{"50000 for 12 months", []int{50000, 12}},
		{"I need 1,00,000 for 24 months", []int{100000, 24}},
		{"give me 2,50,000", []int{250000}},
		{"twelve months please", nil},
		{"", nil},
		{"12", []int{12}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractIntegers(tt.in), "input %q", tt.in)
	}
}

func TestAmountAndTenure(t *testing.T) {
	// max is the amount, min is the tenure, regardless of order.
	amount, tenure := AmountAndTenure([]int{100000, 24})
	assert.Equal(t, 100000, amount)
	assert.Equal(t, 24, tenure)

	amount, tenure = AmountAndTenure([]int{12, 50000})
	assert.Equal(t, 50000, amount)
	assert.Equal(t, 12, tenure)

	amount, tenure = AmountAndTenure([]int{6, 300000, 24})
	assert.Equal(t, 300000, amount)
	assert.Equal(t, 6, tenure)
}

func TestExtractIntegers_SkipsOverflow(t *testing.T) {
	got := ExtractIntegers("99999999999999999999999999 and 500")
	require.Equal(t, []int{500}, got)
}

func TestContainsAny(t *testing.T) {
	assert.True(t, containsAny("Maybe LATER please", "no", "not", "later"))
	assert.True(t, containsAny("what's the interest?", "interest", "rate", "negotiate", "cheaper"))
	assert.False(t, containsAny("yes please", "no", "not", "later"))
}
