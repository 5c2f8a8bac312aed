package model

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/internal/domain/event"
)

// ---------------------------------------------------------------------------
// AssessmentRecord aggregate root (audit trail)
// ---------------------------------------------------------------------------

// AssessmentRecord is the persisted audit entry for one assessment: the
// applicant snapshot it was computed from, the policy version in force,
// and the full assessment result. Records are write-once.
type AssessmentRecord struct {
	id            string
	correlationID string
	applicant     Applicant
	assessment    Assessment
	policyVersion string
	createdAt     time.Time
	domainEvents  []event.DomainEvent
}

// NewAssessmentRecord creates a record for a freshly computed assessment
// and raises AssessmentCompleted. The correlation ID is supplied by the
// caller; the engine never generates identifiers.
func NewAssessmentRecord(
	correlationID string,
	applicant Applicant,
	assessment Assessment,
	policyVersion string,
	now time.Time,
) (AssessmentRecord, error) {
	if correlationID == "" {
		return AssessmentRecord{}, errors.New("correlation ID is required")
	}
	if assessment.Decision().IsZero() {
		return AssessmentRecord{}, errors.New("assessment is required")
	}
	if policyVersion == "" {
		return AssessmentRecord{}, errors.New("policy version is required")
	}

	id := uuid.New().String()
	rec := AssessmentRecord{
		id:            id,
		correlationID: correlationID,
		applicant:     applicant,
		assessment:    assessment,
		policyVersion: policyVersion,
		createdAt:     now,
	}

	completed := event.NewAssessmentCompleted(
		id, correlationID, applicant.ProductType,
		assessment.Decision().String(), assessment.CompositeScore(),
		assessment.DTIRatioPercent(), assessment.EstimatedNewEMI(),
		policyVersion,
	)
	rec.domainEvents = append(rec.domainEvents, completed)
	return rec, nil
}

// ReconstructAssessmentRecord rebuilds a record from persistence without
// side-effects.
func ReconstructAssessmentRecord(
	id, correlationID string,
	applicant Applicant,
	assessment Assessment,
	policyVersion string,
	createdAt time.Time,
) AssessmentRecord {
	return AssessmentRecord{
		id:            id,
		correlationID: correlationID,
		applicant:     applicant,
		assessment:    assessment,
		policyVersion: policyVersion,
		createdAt:     createdAt,
	}
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (r AssessmentRecord) ID() string                 { return r.id }
func (r AssessmentRecord) CorrelationID() string      { return r.correlationID }
func (r AssessmentRecord) Applicant() Applicant       { return r.applicant }
func (r AssessmentRecord) Assessment() Assessment     { return r.assessment }
func (r AssessmentRecord) PolicyVersion() string      { return r.policyVersion }
func (r AssessmentRecord) CreatedAt() time.Time       { return r.createdAt }
func (r AssessmentRecord) DomainEvents() []event.DomainEvent { return r.domainEvents }

// ClearEvents returns a copy with an empty event list (call after publishing).
func (r AssessmentRecord) ClearEvents() AssessmentRecord {
	next := r
	next.domainEvents = nil
	return next
}
