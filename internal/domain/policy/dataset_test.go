package policy_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/internal/domain/policy"
	"github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/internal/domain/valueobject"
)

func validParams() policy.Params {
	return policy.Params{
		Version:       "2026-08.1",
		AgeLimits:     policy.AgeLimits{Min: 21, Max: 60},
		AnnualRateBps: 1000,
		CreditBands: []policy.CreditBand{
			{Name: "excellent", MinScore: 750, Score: 50},
			{Name: "good", MinScore: 700, Score: 40},
			{Name: "subprime", MinScore: 0, Score: 0},
		},
		DTIBands: []policy.DTIBand{
			{Category: "safe", Threshold: decimal.RequireFromString("0.40"), Score: 50},
			{Category: "overextended", Threshold: decimal.RequireFromString("10.00"), Score: 0},
		},
		Products: []policy.Product{
			{Type: "personal", MaxPrincipal: decimal.NewFromInt(1_000_000), MinTenureMonths: 12, MaxTenureMonths: 60},
		},
		Thresholds: policy.Thresholds{ApproveAt: 70, RejectBelow: 40},
	}
}

func TestNew_Valid(t *testing.T) {
	ds, err := policy.New(validParams())
	require.NoError(t, err)

	assert.Equal(t, "2026-08.1", ds.Version())
	assert.Equal(t, policy.AgeLimits{Min: 21, Max: 60}, ds.AgeLimits())
	assert.Equal(t, 1000, ds.AnnualRateBps())
	assert.Equal(t, policy.Thresholds{ApproveAt: 70, RejectBelow: 40}, ds.Thresholds())
	assert.Equal(t, 100, ds.MaxCompositeScore())
	assert.Len(t, ds.Products(), 1)
}

func TestNew_Invalid(t *testing.T) {
	cases := []struct {
		name      string
		mutate    func(*policy.Params)
		wantField string
	}{
		{
			name:      "empty version",
			mutate:    func(p *policy.Params) { p.Version = "" },
			wantField: "version",
		},
		{
			name:      "inverted age limits",
			mutate:    func(p *policy.Params) { p.AgeLimits = policy.AgeLimits{Min: 60, Max: 21} },
			wantField: "age_limits",
		},
		{
			name:      "negative rate",
			mutate:    func(p *policy.Params) { p.AnnualRateBps = -1 },
			wantField: "annual_rate_bps",
		},
		{
			name:      "reject cutoff at approve cutoff",
			mutate:    func(p *policy.Params) { p.Thresholds = policy.Thresholds{ApproveAt: 70, RejectBelow: 70} },
			wantField: "thresholds",
		},
		{
			name:      "no credit bands",
			mutate:    func(p *policy.Params) { p.CreditBands = nil },
			wantField: "credit_bands",
		},
		{
			name: "credit bands out of order",
			mutate: func(p *policy.Params) {
				p.CreditBands[0], p.CreditBands[1] = p.CreditBands[1], p.CreditBands[0]
			},
			wantField: "credit_bands",
		},
		{
			name: "credit bands missing catch-all",
			mutate: func(p *policy.Params) {
				p.CreditBands = p.CreditBands[:2]
			},
			wantField: "credit_bands",
		},
		{
			name: "dti bands out of order",
			mutate: func(p *policy.Params) {
				p.DTIBands[0], p.DTIBands[1] = p.DTIBands[1], p.DTIBands[0]
			},
			wantField: "dti_bands",
		},
		{
			name: "dti terminal band below full income",
			mutate: func(p *policy.Params) {
				p.DTIBands[1].Threshold = decimal.RequireFromString("0.80")
			},
			wantField: "dti_bands",
		},
		{
			name:      "no products",
			mutate:    func(p *policy.Params) { p.Products = nil },
			wantField: "products",
		},
		{
			name: "duplicate product type",
			mutate: func(p *policy.Params) {
				p.Products = append(p.Products, p.Products[0])
			},
			wantField: "products",
		},
		{
			name: "non-positive max principal",
			mutate: func(p *policy.Params) {
				p.Products[0].MaxPrincipal = decimal.Zero
			},
			wantField: "products",
		},
		{
			name: "inverted tenure range",
			mutate: func(p *policy.Params) {
				p.Products[0].MinTenureMonths = 61
			},
			wantField: "products",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			params := validParams()
			tc.mutate(&params)

			_, err := policy.New(params)
			require.Error(t, err)

			var cfgErr *policy.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tc.wantField, cfgErr.Field)
		})
	}
}

func TestDataset_BandForCreditScore(t *testing.T) {
	ds, err := policy.New(validParams())
	require.NoError(t, err)

	assert.Equal(t, "excellent", ds.BandForCreditScore(800).Name)
	assert.Equal(t, "excellent", ds.BandForCreditScore(750).Name)
	assert.Equal(t, "good", ds.BandForCreditScore(749).Name)
	assert.Equal(t, "subprime", ds.BandForCreditScore(300).Name)
}

func TestDataset_BandForDTIRatio(t *testing.T) {
	ds, err := policy.New(validParams())
	require.NoError(t, err)

	assert.Equal(t, "safe", ds.BandForDTIRatio(decimal.RequireFromString("0.40")).Category)
	assert.Equal(t, "overextended", ds.BandForDTIRatio(decimal.RequireFromString("0.41")).Category)

	// Obligations can exceed income many times over; the terminal band
	// still catches the ratio.
	assert.Equal(t, "overextended", ds.BandForDTIRatio(decimal.NewFromInt(25)).Category)
}

func TestDataset_ProductFor(t *testing.T) {
	ds, err := policy.New(validParams())
	require.NoError(t, err)

	p, err := ds.ProductFor("personal")
	require.NoError(t, err)
	assert.Equal(t, "personal", p.Type)

	_, err = ds.ProductFor("yacht")
	require.Error(t, err)
	assert.ErrorIs(t, err, valueobject.ErrUnknownProduct)
}

func TestDataset_AccessorsCopy(t *testing.T) {
	ds, err := policy.New(validParams())
	require.NoError(t, err)

	bands := ds.CreditBands()
	bands[0].Score = 999
	assert.Equal(t, 50, ds.CreditBands()[0].Score)
}
