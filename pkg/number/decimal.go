package number

import (
	"github.com/shopspring/decimal"
)

// Decimal parse string, invalid input yields zero
func Decimal(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

// Ceil round up at the given precision
func Ceil(d decimal.Decimal, precision int32) decimal.Decimal {
	return d.Shift(precision).Ceil().Shift(-precision)
}

// Floor round down at the given precision
func Floor(d decimal.Decimal, precision int32) decimal.Decimal {
	return d.Shift(precision).Floor().Shift(-precision)
}
