package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/internal/domain/port"
)

func TestNewAssessmentRepo(t *testing.T) {
	repo := NewAssessmentRepo(nil)
	assert.NotNil(t, repo)
	assert.Nil(t, repo.pool)
}

func TestAssessmentRepoImplementsInterface(t *testing.T) {
	var _ port.AssessmentRepository = NewAssessmentRepo(nil)
}
