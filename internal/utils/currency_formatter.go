package utils

import (
	"github.com/shopspring/decimal"

	"github.com/smallworld/txstats/internal/constants"
)

// FormatAmount renders an amount with two decimals, rounding half away from zero.
func FormatAmount(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(constants.AmountDecimal)
}

// SumAmounts adds amounts without binary floating point drift.
func SumAmounts(amounts ...float64) float64 {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(decimal.NewFromFloat(a))
	}
	f, _ := total.Float64()
	return f
}
