package currencyutils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name       string
		amountStr  string
		expected   string
		expectedOk bool
	}{
		{"Canonical", "1234.56", "1234.56", true},
		{"Brazilian with thousands", "1.234,56", "1234.56", true},
		{"Brazilian without thousands", "1234,56", "1234.56", true},
		{"Millions", "1.234.567,89", "1234567.89", true},
		{"With currency prefix", "R$ 1.234,56", "1234.56", true},
		{"Integer", "500", "500", true},
		{"Empty string is zero", "", "0", true},
		{"Garbage", "abc", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			amount, err := ParseAmount(tc.amountStr)

			if tc.expectedOk {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, amount.String())
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestStandardizeAmount(t *testing.T) {
	assert.Equal(t, "1234.56", StandardizeAmount("R$ 1.234,56"))
	assert.Equal(t, "1234.56", StandardizeAmount("1234.56"))
	assert.Equal(t, "99.90", StandardizeAmount("99,90"))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "R$ 1234,56", FormatAmount(decimal.NewFromFloat(1234.56)))
	assert.Equal(t, "R$ 0,00", FormatAmount(decimal.Zero))
	assert.Equal(t, "R$ -10,50", FormatAmount(decimal.NewFromFloat(-10.5)))
}

func TestPercentageOf(t *testing.T) {
	tests := []struct {
		name     string
		base     float64
		percent  float64
		expected string
	}{
		{"Five percent of 1000", 1000, 5, "50"},
		{"Ten percent of 1000", 1000, 10, "100"},
		{"Zero percent", 1000, 0, "0"},
		{"Fractional percent", 200, 2.5, "5"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := PercentageOf(decimal.NewFromFloat(tc.base), decimal.NewFromFloat(tc.percent))
			assert.True(t, got.Equal(decimal.RequireFromString(tc.expected)),
				"expected %s, got %s", tc.expected, got)
		})
	}
}

func TestIsPositive(t *testing.T) {
	assert.True(t, IsPositive(decimal.NewFromInt(1)))
	assert.False(t, IsPositive(decimal.Zero))
	assert.False(t, IsPositive(decimal.NewFromInt(-1)))
}
