package entities

import "github.com/shopspring/decimal"

// ToMinorUnits converts an amount to cents: round(amount * 100). Exact for
// amounts with at most two decimal places.
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

// FromMinorUnits converts cents back to a decimal amount with two decimal places.
func FromMinorUnits(minor int64) decimal.Decimal {
	return decimal.New(minor, -2)
}
