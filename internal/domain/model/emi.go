package model

import (
	"math"

	"github.com/shopspring/decimal"
)

// MonthlyPayment computes the fixed monthly installment amortizing a
// loan over its tenure.
//
// Parameters:
//   - principal:     the loan amount
//   - annualRateBps: annual nominal rate in basis points (e.g. 1000 = 10.00%)
//   - termMonths:    number of monthly periods
//
// The calculation uses:
//
//	monthlyRate = annualRateBps / 10_000 / 12
//	payment     = P * r * (1+r)^n / ((1+r)^n - 1)
//
// A zero rate degrades to an even split of the principal. The power
// term is computed in float64, then switched back to decimal for the
// monetary result.
func MonthlyPayment(principal decimal.Decimal, annualRateBps int, termMonths int) decimal.Decimal {
	if termMonths <= 0 || principal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	annualRate := float64(annualRateBps) / 10_000.0
	monthlyRate := annualRate / 12.0

	if monthlyRate == 0 {
		return principal.Div(decimal.NewFromInt(int64(termMonths))).Round(2)
	}

	n := float64(termMonths)
	factor := math.Pow(1+monthlyRate, n)
	paymentFloat := principal.InexactFloat64() * monthlyRate * factor / (factor - 1)
	return decimal.NewFromFloat(paymentFloat).Round(2)
}
