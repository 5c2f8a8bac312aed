package model

import (
	"github.com/shopspring/decimal"

	"github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/internal/domain/valueobject"
)

// Checkpoint is one audited rule evaluation. Checkpoints are reported
// in the fixed order Age, Amount, Tenure, Credit, DTI: eligibility
// gates come before risk scoring because a gate failure overrides the
// score.
type Checkpoint struct {
	Label  string
	Status valueobject.CheckpointStatus
	Detail string
}

// Checkpoint labels, in evaluation order.
const (
	CheckpointAge    = "Age"
	CheckpointAmount = "Amount"
	CheckpointTenure = "Tenure"
	CheckpointCredit = "Credit"
	CheckpointDTI    = "DTI"
)

// Assessment is the immutable result of one engine invocation. It is
// constructed atomically, never partially populated, and never mutated
// after return.
type Assessment struct {
	decision           valueobject.Decision
	compositeScore     int
	dtiRatio           decimal.Decimal
	estimatedNewEMI    decimal.Decimal
	combinedObligation decimal.Decimal
	checkpoints        []Checkpoint
}

// NewAssessment builds a completed assessment. The engine is the only
// intended caller; checkpoints are defensively copied so the result
// shares no state with its producer.
func NewAssessment(
	decision valueobject.Decision,
	compositeScore int,
	dtiRatio, estimatedNewEMI, combinedObligation decimal.Decimal,
	checkpoints []Checkpoint,
) Assessment {
	cps := make([]Checkpoint, len(checkpoints))
	copy(cps, checkpoints)
	return Assessment{
		decision:           decision,
		compositeScore:     compositeScore,
		dtiRatio:           dtiRatio,
		estimatedNewEMI:    estimatedNewEMI,
		combinedObligation: combinedObligation,
		checkpoints:        cps,
	}
}

// Decision returns the final decision.
func (a Assessment) Decision() valueobject.Decision { return a.decision }

// CompositeScore returns the unweighted sum of the credit-band and
// DTI-band scores.
func (a Assessment) CompositeScore() int { return a.compositeScore }

// DTIRatio returns the computed debt-to-income ratio (0.40 = 40%).
func (a Assessment) DTIRatio() decimal.Decimal { return a.dtiRatio }

// DTIRatioPercent returns the ratio scaled to a percentage.
func (a Assessment) DTIRatioPercent() decimal.Decimal {
	return a.dtiRatio.Mul(decimal.NewFromInt(100))
}

// EstimatedNewEMI returns the amortized monthly payment of the
// requested loan.
func (a Assessment) EstimatedNewEMI() decimal.Decimal { return a.estimatedNewEMI }

// CombinedMonthlyObligation returns existing EMI plus the new EMI.
func (a Assessment) CombinedMonthlyObligation() decimal.Decimal { return a.combinedObligation }

// Checkpoints returns a copy of the ordered checkpoint list.
func (a Assessment) Checkpoints() []Checkpoint {
	out := make([]Checkpoint, len(a.checkpoints))
	copy(out, a.checkpoints)
	return out
}

// Checkpoint returns the checkpoint with the given label, if present.
func (a Assessment) Checkpoint(label string) (Checkpoint, bool) {
	for _, cp := range a.checkpoints {
		if cp.Label == label {
			return cp, true
		}
	}
	return Checkpoint{}, false
}
