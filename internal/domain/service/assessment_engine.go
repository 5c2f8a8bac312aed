package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/internal/domain/model"
	"github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/internal/domain/policy"
	"github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// AssessmentEngine – domain service for eligibility and risk scoring
// ---------------------------------------------------------------------------

// creditPassScore is the band contribution at or above which the credit
// checkpoint reads pass rather than warn.
const creditPassScore = 35

// DTI checkpoint status ceilings. These are user-facing status buckets,
// independent of the dataset's own band thresholds.
var (
	dtiPassCeiling = decimal.RequireFromString("0.4")
	dtiWarnCeiling = decimal.RequireFromString("0.5")
)

// AssessmentEngine turns one applicant snapshot plus the policy dataset
// into a decision, a composite score, and an ordered checkpoint list.
// Evaluate is pure: no I/O, no randomness, no timers. A single engine
// value may be shared across any number of concurrent invocations.
type AssessmentEngine struct{}

// NewAssessmentEngine returns a new engine instance.
func NewAssessmentEngine() *AssessmentEngine {
	return &AssessmentEngine{}
}

// Evaluate runs the five rule checkpoints in fixed order (Age, Amount,
// Tenure, Credit, DTI) and derives the final decision.
//
// Contract violations (unknown product type, non-positive income or
// tenure) return a distinguishable error and no Assessment: they are
// caller errors, never coerced into a REJECTED business outcome.
// Business-rule failures (age out of range, low score) are normal
// outcomes encoded in the result.
func (e *AssessmentEngine) Evaluate(applicant model.Applicant, ds *policy.Dataset) (model.Assessment, error) {
	product, err := ds.ProductFor(applicant.ProductType)
	if err != nil {
		return model.Assessment{}, err
	}
	if applicant.MonthlyIncome.LessThanOrEqual(decimal.Zero) {
		return model.Assessment{}, fmt.Errorf("monthly income must be positive: %w", valueobject.ErrInvalidInput)
	}
	if applicant.RequestedTenureMonths <= 0 {
		return model.Assessment{}, fmt.Errorf("tenure months must be positive: %w", valueobject.ErrInvalidInput)
	}

	checkpoints := make([]model.Checkpoint, 0, 5)

	// 1. Age gate.
	limits := ds.AgeLimits()
	ageValid := applicant.Age >= limits.Min && applicant.Age <= limits.Max
	checkpoints = append(checkpoints, model.Checkpoint{
		Label:  model.CheckpointAge,
		Status: gateStatus(ageValid),
		Detail: fmt.Sprintf("%d yrs (%d-%d required)", applicant.Age, limits.Min, limits.Max),
	})

	// 2. Amount gate.
	amountValid := applicant.RequestedPrincipal.LessThanOrEqual(product.MaxPrincipal)
	checkpoints = append(checkpoints, model.Checkpoint{
		Label:  model.CheckpointAmount,
		Status: gateStatus(amountValid),
		Detail: fmt.Sprintf("%s requested (max %s for %s)",
			applicant.RequestedPrincipal.StringFixed(2), product.MaxPrincipal.StringFixed(2), product.Type),
	})

	// 3. Tenure gate.
	tenureValid := applicant.RequestedTenureMonths >= product.MinTenureMonths &&
		applicant.RequestedTenureMonths <= product.MaxTenureMonths
	checkpoints = append(checkpoints, model.Checkpoint{
		Label:  model.CheckpointTenure,
		Status: gateStatus(tenureValid),
		Detail: fmt.Sprintf("%d months (%d-%d allowed)",
			applicant.RequestedTenureMonths, product.MinTenureMonths, product.MaxTenureMonths),
	})

	// 4. Credit score band.
	creditBand := ds.BandForCreditScore(applicant.CreditScore)
	compositeScore := creditBand.Score
	checkpoints = append(checkpoints, model.Checkpoint{
		Label:  model.CheckpointCredit,
		Status: creditStatus(creditBand.Score),
		Detail: fmt.Sprintf("%d (%s band, +%d points)",
			applicant.CreditScore, creditBand.Name, creditBand.Score),
	})

	// 5. Affordability (DTI).
	newEMI := model.MonthlyPayment(applicant.RequestedPrincipal, ds.AnnualRateBps(), applicant.RequestedTenureMonths)
	combined := applicant.ExistingMonthlyEMI.Add(newEMI)
	dtiRatio := combined.Div(applicant.MonthlyIncome)
	dtiBand := ds.BandForDTIRatio(dtiRatio)
	compositeScore += dtiBand.Score
	checkpoints = append(checkpoints, model.Checkpoint{
		Label:  model.CheckpointDTI,
		Status: dtiStatus(dtiRatio),
		Detail: fmt.Sprintf("%s%% of income committed (%s band, +%d points)",
			dtiRatio.Mul(decimal.NewFromInt(100)).StringFixed(1), dtiBand.Category, dtiBand.Score),
	})

	// Decision rule: gates override score; the reject boundary is a
	// strict less-than, so a score exactly at reject_below falls through
	// to the score branches.
	thresholds := ds.Thresholds()
	var decision valueobject.Decision
	switch {
	case !ageValid || !amountValid || !tenureValid || compositeScore < thresholds.RejectBelow:
		decision = valueobject.DecisionRejected
	case compositeScore >= thresholds.ApproveAt:
		decision = valueobject.DecisionApproved
	default:
		decision = valueobject.DecisionReview
	}

	return model.NewAssessment(decision, compositeScore, dtiRatio, newEMI, combined, checkpoints), nil
}

// gateStatus maps a binary eligibility gate to pass/fail. Gates have no
// warn state.
func gateStatus(valid bool) valueobject.CheckpointStatus {
	if valid {
		return valueobject.CheckpointPass
	}
	return valueobject.CheckpointFail
}

func creditStatus(bandScore int) valueobject.CheckpointStatus {
	switch {
	case bandScore >= creditPassScore:
		return valueobject.CheckpointPass
	case bandScore > 0:
		return valueobject.CheckpointWarn
	default:
		return valueobject.CheckpointFail
	}
}

func dtiStatus(ratio decimal.Decimal) valueobject.CheckpointStatus {
	switch {
	case ratio.LessThanOrEqual(dtiPassCeiling):
		return valueobject.CheckpointPass
	case ratio.LessThanOrEqual(dtiWarnCeiling):
		return valueobject.CheckpointWarn
	default:
		return valueobject.CheckpointFail
	}
}
