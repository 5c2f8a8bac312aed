package policy_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainpolicy "github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/internal/domain/policy"
	"github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/internal/infrastructure/policy"
)

const validYAML = `
version: "test-1"
age_limits:
  min: 21
  max: 60
annual_rate_bps: 1000
credit_bands:
  - { name: excellent, min_score: 750, score: 50 }
  - { name: subprime,  min_score: 0,   score: 0 }
dti_bands:
  - { category: safe,         threshold: "0.40",  score: 50 }
  - { category: overextended, threshold: "10.00", score: 0 }
products:
  - { type: personal, max_principal: "1000000", min_tenure_months: 12, max_tenure_months: 60 }
thresholds:
  approve_at: 70
  reject_below: 40
`

func TestParse(t *testing.T) {
	ds, err := policy.Parse([]byte(validYAML))
	require.NoError(t, err)

	assert.Equal(t, "test-1", ds.Version())
	assert.Equal(t, domainpolicy.AgeLimits{Min: 21, Max: 60}, ds.AgeLimits())
	assert.Equal(t, 1000, ds.AnnualRateBps())

	band := ds.BandForDTIRatio(ds.DTIBands()[0].Threshold)
	assert.Equal(t, "safe", band.Category)
	assert.Equal(t, "0.4", band.Threshold.String())

	p, err := ds.ProductFor("personal")
	require.NoError(t, err)
	assert.Equal(t, "1000000", p.MaxPrincipal.String())
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := policy.Parse([]byte("version: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode policy yaml")
}

func TestParse_BadThreshold(t *testing.T) {
	bad := `
version: "test-1"
age_limits: { min: 21, max: 60 }
annual_rate_bps: 1000
credit_bands:
  - { name: subprime, min_score: 0, score: 0 }
dti_bands:
  - { category: safe, threshold: "forty percent", score: 50 }
products:
  - { type: personal, max_principal: "1000000", min_tenure_months: 12, max_tenure_months: 60 }
thresholds: { approve_at: 70, reject_below: 40 }
`
	_, err := policy.Parse([]byte(bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse threshold")
}

func TestParse_ValidationFailureSurfacesConfigError(t *testing.T) {
	bad := `
version: ""
age_limits: { min: 21, max: 60 }
annual_rate_bps: 1000
credit_bands:
  - { name: subprime, min_score: 0, score: 0 }
dti_bands:
  - { category: overextended, threshold: "10.00", score: 0 }
products:
  - { type: personal, max_principal: "1000000", min_tenure_months: 12, max_tenure_months: 60 }
thresholds: { approve_at: 70, reject_below: 40 }
`
	_, err := policy.Parse([]byte(bad))
	require.Error(t, err)

	var cfgErr *domainpolicy.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validYAML), 0o600))

	ds, err := policy.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "test-1", ds.Version())
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := policy.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read policy file")
}
