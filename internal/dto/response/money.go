package response

import "github.com/shopspring/decimal"

// Money rounds to 2 decimals, half away from zero.
func Money(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
