package valueobject

import (
	"errors"
	"fmt"
)

// ---------------------------------------------------------------------------
// Decision – immutable value object
// ---------------------------------------------------------------------------

// Decision represents the final outcome of an eligibility assessment.
type Decision struct {
	value string
}

const (
	decisionApproved = "APPROVED"
	decisionReview   = "REVIEW"
	decisionRejected = "REJECTED"
)

var (
	DecisionApproved = Decision{value: decisionApproved}
	DecisionReview   = Decision{value: decisionReview}
	DecisionRejected = Decision{value: decisionRejected}
)

var validDecisions = map[string]Decision{
	decisionApproved: DecisionApproved,
	decisionReview:   DecisionReview,
	decisionRejected: DecisionRejected,
}

// NewDecision creates a Decision from a raw string.
func NewDecision(s string) (Decision, error) {
	v, ok := validDecisions[s]
	if !ok {
		return Decision{}, fmt.Errorf("invalid decision: %q", s)
	}
	return v, nil
}

// String returns the string representation of the decision.
func (d Decision) String() string { return d.value }

// IsZero returns true if the decision has not been initialised.
func (d Decision) IsZero() bool { return d.value == "" }

// Equal returns true when both decisions carry the same value.
func (d Decision) Equal(other Decision) bool { return d.value == other.value }

// ---------------------------------------------------------------------------
// CheckpointStatus – immutable value object
// ---------------------------------------------------------------------------

// CheckpointStatus is the audited outcome of a single rule evaluation.
type CheckpointStatus struct {
	value string
}

const (
	checkpointPass = "pass"
	checkpointWarn = "warn"
	checkpointFail = "fail"
)

var (
	CheckpointPass = CheckpointStatus{value: checkpointPass}
	CheckpointWarn = CheckpointStatus{value: checkpointWarn}
	CheckpointFail = CheckpointStatus{value: checkpointFail}
)

var validCheckpointStatuses = map[string]CheckpointStatus{
	checkpointPass: CheckpointPass,
	checkpointWarn: CheckpointWarn,
	checkpointFail: CheckpointFail,
}

// NewCheckpointStatus creates a CheckpointStatus from a raw string.
func NewCheckpointStatus(s string) (CheckpointStatus, error) {
	v, ok := validCheckpointStatuses[s]
	if !ok {
		return CheckpointStatus{}, fmt.Errorf("invalid checkpoint status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s CheckpointStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s CheckpointStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s CheckpointStatus) Equal(other CheckpointStatus) bool { return s.value == other.value }

// ---------------------------------------------------------------------------
// EmploymentType – immutable value object
// ---------------------------------------------------------------------------

// EmploymentType classifies how an applicant earns their income.
type EmploymentType struct {
	value string
}

const (
	employmentSalaried     = "SALARIED"
	employmentSelfEmployed = "SELF_EMPLOYED"
)

var (
	EmploymentSalaried     = EmploymentType{value: employmentSalaried}
	EmploymentSelfEmployed = EmploymentType{value: employmentSelfEmployed}
)

var validEmploymentTypes = map[string]EmploymentType{
	employmentSalaried:     EmploymentSalaried,
	employmentSelfEmployed: EmploymentSelfEmployed,
}

// NewEmploymentType creates an EmploymentType from a raw string.
func NewEmploymentType(s string) (EmploymentType, error) {
	v, ok := validEmploymentTypes[s]
	if !ok {
		return EmploymentType{}, fmt.Errorf("invalid employment type: %q", s)
	}
	return v, nil
}

// String returns the string representation of the employment type.
func (e EmploymentType) String() string { return e.value }

// IsZero returns true if the employment type has not been initialised.
func (e EmploymentType) IsZero() bool { return e.value == "" }

// Equal returns true when both types carry the same value.
func (e EmploymentType) Equal(other EmploymentType) bool { return e.value == other.value }

// ---------------------------------------------------------------------------
// Sentinel errors
// ---------------------------------------------------------------------------

var (
	// ErrUnknownProduct signals a product type with no matching policy
	// entry. This is a caller-contract violation, not a business outcome.
	ErrUnknownProduct = errors.New("unknown product type")

	// ErrInvalidInput signals applicant data that upstream validation
	// should have rejected (non-positive income or tenure).
	ErrInvalidInput = errors.New("invalid applicant input")
)
