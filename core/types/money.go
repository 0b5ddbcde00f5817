// Package types - Shared billing value types
package types

import "github.com/shopspring/decimal"

// Currency represents a currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// RoundMoney rounds a monetary amount to the currency minor unit
// (two fractional digits, half away from zero).
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Percent applies an integer percentage to an amount.
func Percent(d decimal.Decimal, percent uint8) decimal.Decimal {
	return d.Mul(decimal.NewFromInt(int64(percent))).Div(decimal.NewFromInt(100))
}
