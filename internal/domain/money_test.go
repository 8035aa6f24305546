package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		currency string
		want     string
	}{
		{"two decimals default", "100", "USD", "100.00"},
		{"rounds half up", "10.005", "USD", "10.01"},
		{"zero decimal currency", "1500.4", "JPY", "1500"},
		{"three decimal currency", "5.1", "BHD", "5.100"},
		{"lowercase currency code", "3", "jpy", "3"},
		{"unknown currency falls back to two", "7.5", "XXX", "7.50"},
		{"no grouping separators", "1234567.89", "USD", "1234567.89"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value := decimal.RequireFromString(tt.value)
			assert.Equal(t, tt.want, FormatAmount(value, tt.currency))
		})
	}
}

func TestRoundAmount(t *testing.T) {
	assert.Equal(t, "10.01", RoundAmount(decimal.RequireFromString("10.005"), "USD").String())
	assert.Equal(t, "1500", RoundAmount(decimal.RequireFromString("1500.4"), "JPY").String())
}

func TestCurrencyMinorUnits(t *testing.T) {
	assert.Equal(t, int32(2), CurrencyMinorUnits("USD"))
	assert.Equal(t, int32(0), CurrencyMinorUnits("KRW"))
	assert.Equal(t, int32(3), CurrencyMinorUnits("KWD"))
}
