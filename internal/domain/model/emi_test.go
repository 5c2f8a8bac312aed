package model_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/internal/domain/model"
)

func TestMonthlyPayment(t *testing.T) {
	// 500K at 10% nominal annual over 36 months.
	payment := model.MonthlyPayment(decimal.NewFromInt(500_000), 1000, 36)
	assert.Equal(t, "16133.59", payment.StringFixed(2))
}

func TestMonthlyPayment_ZeroRate(t *testing.T) {
	payment := model.MonthlyPayment(decimal.NewFromInt(120_000), 0, 24)
	assert.Equal(t, "5000.00", payment.StringFixed(2))
}

func TestMonthlyPayment_SingleMonth(t *testing.T) {
	// One period: principal plus one month of interest.
	payment := model.MonthlyPayment(decimal.NewFromInt(12_000), 1200, 1)
	assert.Equal(t, "12120.00", payment.StringFixed(2))
}

func TestMonthlyPayment_DegenerateInputs(t *testing.T) {
	assert.True(t, model.MonthlyPayment(decimal.NewFromInt(100_000), 1000, 0).IsZero())
	assert.True(t, model.MonthlyPayment(decimal.NewFromInt(100_000), 1000, -12).IsZero())
	assert.True(t, model.MonthlyPayment(decimal.Zero, 1000, 36).IsZero())
	assert.True(t, model.MonthlyPayment(decimal.NewFromInt(-500), 1000, 36).IsZero())
}

func TestMonthlyPayment_AmortizesToPrincipal(t *testing.T) {
	// Present value of the payment stream must recover the principal
	// to within rounding.
	principal := decimal.NewFromInt(250_000)
	payment := model.MonthlyPayment(principal, 850, 60)

	monthlyRate := 0.085 / 12.0
	pv := 0.0
	discount := 1.0
	for i := 0; i < 60; i++ {
		discount /= 1 + monthlyRate
		pv += payment.InexactFloat64() * discount
	}
	assert.InDelta(t, 250_000, pv, 1.0)
}

func TestMonthlyPayment_LongerTenureLowersPayment(t *testing.T) {
	principal := decimal.NewFromInt(1_000_000)
	short := model.MonthlyPayment(principal, 1000, 60)
	long := model.MonthlyPayment(principal, 1000, 120)
	assert.True(t, long.LessThan(short))
}
