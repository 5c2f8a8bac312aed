package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/internal/domain/valueobject"
)

func TestNewDecision(t *testing.T) {
	for _, raw := range []string{"APPROVED", "REVIEW", "REJECTED"} {
		t.Run(raw, func(t *testing.T) {
			d, err := valueobject.NewDecision(raw)
			require.NoError(t, err)
			assert.Equal(t, raw, d.String())
			assert.False(t, d.IsZero())
		})
	}
}

func TestNewDecision_Invalid(t *testing.T) {
	for _, raw := range []string{"", "approved", "MAYBE", "Approved "} {
		t.Run(raw, func(t *testing.T) {
			_, err := valueobject.NewDecision(raw)
			require.Error(t, err)
		})
	}
}

func TestDecision_Equal(t *testing.T) {
	assert.True(t, valueobject.DecisionApproved.Equal(valueobject.DecisionApproved))
	assert.False(t, valueobject.DecisionApproved.Equal(valueobject.DecisionRejected))
	assert.True(t, valueobject.Decision{}.IsZero())
}

func TestNewCheckpointStatus(t *testing.T) {
	for _, raw := range []string{"pass", "warn", "fail"} {
		t.Run(raw, func(t *testing.T) {
			s, err := valueobject.NewCheckpointStatus(raw)
			require.NoError(t, err)
			assert.Equal(t, raw, s.String())
		})
	}

	_, err := valueobject.NewCheckpointStatus("PASS")
	require.Error(t, err)
}

func TestNewEmploymentType(t *testing.T) {
	for _, raw := range []string{"SALARIED", "SELF_EMPLOYED"} {
		t.Run(raw, func(t *testing.T) {
			e, err := valueobject.NewEmploymentType(raw)
			require.NoError(t, err)
			assert.Equal(t, raw, e.String())
		})
	}

	_, err := valueobject.NewEmploymentType("CONTRACTOR")
	require.Error(t, err)
}
