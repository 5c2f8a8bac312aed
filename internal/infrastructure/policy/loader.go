package policy

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	domainpolicy "github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/internal/domain/policy"
)

// The YAML schema of the policy artifact. Monetary amounts and ratios
// are strings so they survive the trip into decimal without float
// rounding.
type fileDataset struct {
	Version       string           `yaml:"version"`
	AgeLimits     fileAgeLimits    `yaml:"age_limits"`
	AnnualRateBps int              `yaml:"annual_rate_bps"`
	CreditBands   []fileCreditBand `yaml:"credit_bands"`
	DTIBands      []fileDTIBand    `yaml:"dti_bands"`
	Products      []fileProduct    `yaml:"products"`
	Thresholds    fileThresholds   `yaml:"thresholds"`
}

type fileAgeLimits struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

type fileCreditBand struct {
	Name     string `yaml:"name"`
	MinScore int    `yaml:"min_score"`
	Score    int    `yaml:"score"`
}

type fileDTIBand struct {
	Category  string `yaml:"category"`
	Threshold string `yaml:"threshold"`
	Score     int    `yaml:"score"`
}

type fileProduct struct {
	Type            string `yaml:"type"`
	MaxPrincipal    string `yaml:"max_principal"`
	MinTenureMonths int    `yaml:"min_tenure_months"`
	MaxTenureMonths int    `yaml:"max_tenure_months"`
}

type fileThresholds struct {
	ApproveAt   int `yaml:"approve_at"`
	RejectBelow int `yaml:"reject_below"`
}

// LoadFile reads and validates the policy dataset artifact. Any failure
// here is a configuration error and fatal to startup.
func LoadFile(path string) (*domainpolicy.Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read policy file %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes a YAML policy document and builds the validated dataset.
func Parse(raw []byte) (*domainpolicy.Dataset, error) {
	var f fileDataset
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode policy yaml: %w", err)
	}

	params := domainpolicy.Params{
		Version: f.Version,
		AgeLimits: domainpolicy.AgeLimits{
			Min: f.AgeLimits.Min,
			Max: f.AgeLimits.Max,
		},
		AnnualRateBps: f.AnnualRateBps,
		Thresholds: domainpolicy.Thresholds{
			ApproveAt:   f.Thresholds.ApproveAt,
			RejectBelow: f.Thresholds.RejectBelow,
		},
	}

	for _, b := range f.CreditBands {
		params.CreditBands = append(params.CreditBands, domainpolicy.CreditBand{
			Name:     b.Name,
			MinScore: b.MinScore,
			Score:    b.Score,
		})
	}

	for _, b := range f.DTIBands {
		threshold, err := decimal.NewFromString(b.Threshold)
		if err != nil {
			return nil, fmt.Errorf("dti band %q: parse threshold %q: %w", b.Category, b.Threshold, err)
		}
		params.DTIBands = append(params.DTIBands, domainpolicy.DTIBand{
			Category:  b.Category,
			Threshold: threshold,
			Score:     b.Score,
		})
	}

	for _, p := range f.Products {
		maxPrincipal, err := decimal.NewFromString(p.MaxPrincipal)
		if err != nil {
			return nil, fmt.Errorf("product %q: parse max principal %q: %w", p.Type, p.MaxPrincipal, err)
		}
		params.Products = append(params.Products, domainpolicy.Product{
			Type:            p.Type,
			MaxPrincipal:    maxPrincipal,
			MinTenureMonths: p.MinTenureMonths,
			MaxTenureMonths: p.MaxTenureMonths,
		})
	}

	ds, err := domainpolicy.New(params)
	if err != nil {
		return nil, fmt.Errorf("validate policy dataset: %w", err)
	}
	return ds, nil
}
