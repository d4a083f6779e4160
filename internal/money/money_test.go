package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatRupees(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{50000, "50,000"},
		{150000, "150,000"},
		{1234567, "1,234,567"},
		{-50000, "-50,000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatRupees(tt.in))
	}
}

func TestFormatRupeesRounded(t *testing.T) {
	assert.Equal(t, "1,808", FormatRupeesRounded(1808.33))
	assert.Equal(t, "1,809", FormatRupeesRounded(1808.5))
	assert.Equal(t, "20,000", FormatRupeesRounded(20000.0))
}

func TestRupees(t *testing.T) {
	assert.Equal(t, "Rs. 35,000", Rupees(35000))
}
