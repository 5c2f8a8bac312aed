package policy

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Dataset – immutable policy constants, loaded once per process
// ---------------------------------------------------------------------------

// AgeLimits bounds the eligible applicant age range.
type AgeLimits struct {
	Min int
	Max int
}

// CreditBand maps a credit-score floor to a contribution score.
// Bands are kept sorted descending by MinScore; the first band whose
// MinScore is at or below the applicant's score wins.
type CreditBand struct {
	Name     string
	MinScore int
	Score    int
}

// DTIBand maps a debt-to-income ceiling to a contribution score.
// Bands are kept sorted ascending by Threshold; the first band whose
// Threshold is at or above the computed ratio wins.
type DTIBand struct {
	Category  string
	Threshold decimal.Decimal
	Score     int
}

// Product defines the lending limits for one product type.
type Product struct {
	Type            string
	MaxPrincipal    decimal.Decimal
	MinTenureMonths int
	MaxTenureMonths int
}

// Thresholds holds the composite-score cutoffs for the decision rule.
type Thresholds struct {
	ApproveAt   int
	RejectBelow int
}

// Dataset is the versioned, immutable policy dataset the assessment
// engine evaluates against. It is constructed once at startup via New,
// which validates every structural invariant; a Dataset that exists is
// a Dataset that is safe to share across goroutines without locks.
type Dataset struct {
	version       string
	ageLimits     AgeLimits
	creditBands   []CreditBand
	dtiBands      []DTIBand
	products      map[string]Product
	thresholds    Thresholds
	annualRateBps int
}

// Params carries the raw dataset values into New. Loaders (YAML, test
// fixtures) fill this struct; New owns all validation.
type Params struct {
	Version       string
	AgeLimits     AgeLimits
	CreditBands   []CreditBand
	DTIBands      []DTIBand
	Products      []Product
	Thresholds    Thresholds
	AnnualRateBps int
}

// minDTICatchAll is the lowest threshold the terminal DTI band may carry
// so that every ratio up to 100% of income falls into some band.
var minDTICatchAll = decimal.NewFromInt(1)

// New validates the raw dataset values and returns an immutable Dataset.
// Every violation is reported as a *ConfigError: this is a startup-time
// failure, never a per-applicant one.
func New(p Params) (*Dataset, error) {
	if p.Version == "" {
		return nil, &ConfigError{Field: "version", Reason: "must not be empty"}
	}
	if p.AgeLimits.Min >= p.AgeLimits.Max {
		return nil, &ConfigError{
			Field:  "age_limits",
			Reason: fmt.Sprintf("min %d must be below max %d", p.AgeLimits.Min, p.AgeLimits.Max),
		}
	}
	if p.AnnualRateBps < 0 {
		return nil, &ConfigError{Field: "annual_rate_bps", Reason: "must not be negative"}
	}
	if p.Thresholds.RejectBelow >= p.Thresholds.ApproveAt {
		return nil, &ConfigError{
			Field:  "thresholds",
			Reason: fmt.Sprintf("reject_below %d must be below approve_at %d", p.Thresholds.RejectBelow, p.Thresholds.ApproveAt),
		}
	}

	if err := validateCreditBands(p.CreditBands); err != nil {
		return nil, err
	}
	if err := validateDTIBands(p.DTIBands); err != nil {
		return nil, err
	}

	if len(p.Products) == 0 {
		return nil, &ConfigError{Field: "products", Reason: "at least one product is required"}
	}
	products := make(map[string]Product, len(p.Products))
	for _, prod := range p.Products {
		if prod.Type == "" {
			return nil, &ConfigError{Field: "products", Reason: "product type must not be empty"}
		}
		if _, exists := products[prod.Type]; exists {
			return nil, &ConfigError{
				Field:  "products",
				Reason: fmt.Sprintf("duplicate product type %q", prod.Type),
			}
		}
		if prod.MaxPrincipal.LessThanOrEqual(decimal.Zero) {
			return nil, &ConfigError{
				Field:  "products",
				Reason: fmt.Sprintf("product %q: max principal must be positive", prod.Type),
			}
		}
		if prod.MinTenureMonths <= 0 || prod.MinTenureMonths > prod.MaxTenureMonths {
			return nil, &ConfigError{
				Field:  "products",
				Reason: fmt.Sprintf("product %q: tenure range %d-%d is invalid", prod.Type, prod.MinTenureMonths, prod.MaxTenureMonths),
			}
		}
		products[prod.Type] = prod
	}

	creditBands := make([]CreditBand, len(p.CreditBands))
	copy(creditBands, p.CreditBands)
	dtiBands := make([]DTIBand, len(p.DTIBands))
	copy(dtiBands, p.DTIBands)

	return &Dataset{
		version:       p.Version,
		ageLimits:     p.AgeLimits,
		creditBands:   creditBands,
		dtiBands:      dtiBands,
		products:      products,
		thresholds:    p.Thresholds,
		annualRateBps: p.AnnualRateBps,
	}, nil
}

func validateCreditBands(bands []CreditBand) error {
	if len(bands) == 0 {
		return &ConfigError{Field: "credit_bands", Reason: "at least one band is required"}
	}
	for i, b := range bands {
		if b.Name == "" {
			return &ConfigError{Field: "credit_bands", Reason: fmt.Sprintf("band %d: name must not be empty", i)}
		}
		if b.MinScore < 0 || b.Score < 0 {
			return &ConfigError{Field: "credit_bands", Reason: fmt.Sprintf("band %q: negative values", b.Name)}
		}
		if i > 0 && b.MinScore >= bands[i-1].MinScore {
			return &ConfigError{
				Field:  "credit_bands",
				Reason: fmt.Sprintf("bands must be sorted strictly descending by min score (band %q breaks the order)", b.Name),
			}
		}
	}
	if bands[len(bands)-1].MinScore != 0 {
		return &ConfigError{Field: "credit_bands", Reason: "terminal band must be a catch-all with min score 0"}
	}
	return nil
}

func validateDTIBands(bands []DTIBand) error {
	if len(bands) == 0 {
		return &ConfigError{Field: "dti_bands", Reason: "at least one band is required"}
	}
	for i, b := range bands {
		if b.Category == "" {
			return &ConfigError{Field: "dti_bands", Reason: fmt.Sprintf("band %d: category must not be empty", i)}
		}
		if b.Threshold.LessThanOrEqual(decimal.Zero) || b.Score < 0 {
			return &ConfigError{Field: "dti_bands", Reason: fmt.Sprintf("band %q: invalid values", b.Category)}
		}
		if i > 0 && b.Threshold.LessThanOrEqual(bands[i-1].Threshold) {
			return &ConfigError{
				Field:  "dti_bands",
				Reason: fmt.Sprintf("bands must be sorted strictly ascending by threshold (band %q breaks the order)", b.Category),
			}
		}
	}
	if bands[len(bands)-1].Threshold.LessThan(minDTICatchAll) {
		return &ConfigError{Field: "dti_bands", Reason: "terminal band must be a catch-all with threshold >= 1.0"}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Lookups
// ---------------------------------------------------------------------------

// BandForCreditScore returns the first band, in descending order, whose
// floor is at or below the score. The terminal catch-all (min score 0)
// always matches for scores in the valid 300-850 domain.
func (d *Dataset) BandForCreditScore(score int) CreditBand {
	for _, b := range d.creditBands {
		if score >= b.MinScore {
			return b
		}
	}
	// Ratios below every floor cannot occur for non-negative scores, but
	// the terminal band is the contract either way.
	return d.creditBands[len(d.creditBands)-1]
}

// BandForDTIRatio returns the first band, in ascending order, whose
// ceiling is at or above the ratio. Ratios above the terminal ceiling
// fall into the terminal band.
func (d *Dataset) BandForDTIRatio(ratio decimal.Decimal) DTIBand {
	for _, b := range d.dtiBands {
		if ratio.LessThanOrEqual(b.Threshold) {
			return b
		}
	}
	return d.dtiBands[len(d.dtiBands)-1]
}

// ProductFor returns the product definition for the given type.
func (d *Dataset) ProductFor(productType string) (Product, error) {
	p, ok := d.products[productType]
	if !ok {
		return Product{}, fmt.Errorf("product %q: %w", productType, valueobject.ErrUnknownProduct)
	}
	return p, nil
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (d *Dataset) Version() string        { return d.version }
func (d *Dataset) AgeLimits() AgeLimits   { return d.ageLimits }
func (d *Dataset) Thresholds() Thresholds { return d.thresholds }
func (d *Dataset) AnnualRateBps() int     { return d.annualRateBps }

// CreditBands returns a copy of the credit bands in evaluation order.
func (d *Dataset) CreditBands() []CreditBand {
	out := make([]CreditBand, len(d.creditBands))
	copy(out, d.creditBands)
	return out
}

// DTIBands returns a copy of the DTI bands in evaluation order.
func (d *Dataset) DTIBands() []DTIBand {
	out := make([]DTIBand, len(d.dtiBands))
	copy(out, d.dtiBands)
	return out
}

// Products returns a copy of the product set.
func (d *Dataset) Products() []Product {
	out := make([]Product, 0, len(d.products))
	for _, p := range d.products {
		out = append(out, p)
	}
	return out
}

// MaxCompositeScore is the ceiling the dataset can award: the best
// credit band plus the best DTI band. Dataset authors keep approve_at
// at or below this value.
func (d *Dataset) MaxCompositeScore() int {
	maxCredit, maxDTI := 0, 0
	for _, b := range d.creditBands {
		if b.Score > maxCredit {
			maxCredit = b.Score
		}
	}
	for _, b := range d.dtiBands {
		if b.Score > maxDTI {
			maxDTI = b.Score
		}
	}
	return maxCredit + maxDTI
}
