package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// minorUnits maps ISO 4217 currency codes to their minor-unit exponent.
// Currencies not listed here use the common two decimal places.
var minorUnits = map[string]int32{
	"BIF": 0,
	"CLP": 0,
	"DJF": 0,
	"GNF": 0,
	"ISK": 0,
	"JPY": 0,
	"KMF": 0,
	"KRW": 0,
	"PYG": 0,
	"RWF": 0,
	"UGX": 0,
	"VND": 0,
	"VUV": 0,
	"XAF": 0,
	"XOF": 0,
	"XPF": 0,
	"BHD": 3,
	"IQD": 3,
	"JOD": 3,
	"KWD": 3,
	"LYD": 3,
	"OMR": 3,
	"TND": 3,
}

// CurrencyMinorUnits returns the number of decimal places for a currency.
func CurrencyMinorUnits(currency string) int32 {
	if units, ok := minorUnits[strings.ToUpper(currency)]; ok {
		return units
	}
	return 2
}

// RoundAmount rounds a monetary value to the currency's minor-unit precision.
func RoundAmount(value decimal.Decimal, currency string) decimal.Decimal {
	return value.Round(CurrencyMinorUnits(currency))
}

// FormatAmount renders a monetary value as a plain decimal string with the
// currency's minor-unit precision, e.g. "100.00" for USD, "100" for JPY.
// The provider rejects locale-formatted numbers, so no grouping is applied.
func FormatAmount(value decimal.Decimal, currency string) string {
	return value.StringFixed(CurrencyMinorUnits(currency))
}
