package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// AssessApplicationRequest carries one applicant snapshot into the
// assessment pipeline. The correlation ID is an opaque identifier
// attached by the caller; when absent the usecase mints one.
type AssessApplicationRequest struct {
	CorrelationID         string          `json:"correlation_id"`
	Age                   int             `json:"age"`
	EmploymentType        string          `json:"employment_type"`
	EmploymentYears       decimal.Decimal `json:"employment_years"`
	MonthlyIncome         decimal.Decimal `json:"monthly_income"`
	CreditScore           int             `json:"credit_score"`
	ExistingMonthlyEMI    decimal.Decimal `json:"existing_monthly_emi"`
	ExistingLoanCount     int             `json:"existing_loan_count"`
	RequestedPrincipal    decimal.Decimal `json:"requested_principal"`
	ProductType           string          `json:"product_type"`
	RequestedTenureMonths int             `json:"requested_tenure_months"`
}

// GetAssessmentRequest identifies a past assessment to retrieve.
type GetAssessmentRequest struct {
	AssessmentID string `json:"assessment_id"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// CheckpointResponse is one audited rule evaluation.
type CheckpointResponse struct {
	Label  string `json:"label"`
	Status string `json:"status"`
	Detail string `json:"detail"`
}

// AssessmentResponse is the external representation of an assessment.
type AssessmentResponse struct {
	ID                        string               `json:"id"`
	CorrelationID             string               `json:"correlation_id"`
	Decision                  string               `json:"decision"`
	CompositeScore            int                  `json:"composite_score"`
	DTIRatioPercent           decimal.Decimal      `json:"dti_ratio_percent"`
	EstimatedNewEMI           decimal.Decimal      `json:"estimated_new_emi"`
	CombinedMonthlyObligation decimal.Decimal      `json:"combined_monthly_obligation"`
	Checkpoints               []CheckpointResponse `json:"checkpoints"`
	PolicyVersion             string               `json:"policy_version"`
	CreatedAt                 time.Time            `json:"created_at"`
}
