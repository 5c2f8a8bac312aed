package model

import (
	"github.com/shopspring/decimal"

	"github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/internal/domain/valueobject"
)

// Applicant is the snapshot of one loan applicant at assessment time.
// It is owned by the caller, passed by value into the engine, and never
// mutated. Presence and basic range validation happen at the
// data-collection boundary; the engine only re-checks the fields its
// arithmetic depends on.
type Applicant struct {
	Age                   int
	EmploymentType        valueobject.EmploymentType
	EmploymentYears       decimal.Decimal
	MonthlyIncome         decimal.Decimal
	CreditScore           int
	ExistingMonthlyEMI    decimal.Decimal
	ExistingLoanCount     int
	RequestedPrincipal    decimal.Decimal
	ProductType           string
	RequestedTenureMonths int
}
