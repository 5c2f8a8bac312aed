package event

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DomainEvent is the interface all domain events must implement.
type DomainEvent interface {
	EventID() string
	EventType() string
	AggregateID() string
	AggregateType() string
	OccurredAt() time.Time
}

// BaseEvent provides a default implementation of DomainEvent.
type BaseEvent struct {
	ID            string    `json:"event_id"`
	Type          string    `json:"event_type"`
	Aggregate     string    `json:"aggregate_id"`
	AggregateKind string    `json:"aggregate_type"`
	Occurred      time.Time `json:"occurred_at"`
}

// NewBaseEvent creates a BaseEvent with a generated UUID and the current time.
func NewBaseEvent(eventType, aggregateID, aggregateType string) BaseEvent {
	return BaseEvent{
		ID:            uuid.New().String(),
		Type:          eventType,
		Aggregate:     aggregateID,
		AggregateKind: aggregateType,
		Occurred:      time.Now().UTC(),
	}
}

func (e BaseEvent) EventID() string       { return e.ID }
func (e BaseEvent) EventType() string     { return e.Type }
func (e BaseEvent) AggregateID() string   { return e.Aggregate }
func (e BaseEvent) AggregateType() string { return e.AggregateKind }
func (e BaseEvent) OccurredAt() time.Time { return e.Occurred }

// ---------------------------------------------------------------------------
// Assessment events
// ---------------------------------------------------------------------------

// AssessmentCompleted is raised when an application has been assessed,
// whatever the decision. REJECTED and REVIEW are business outcomes, not
// failures, so they travel on the same event.
type AssessmentCompleted struct {
	BaseEvent
	CorrelationID   string          `json:"correlation_id"`
	ProductType     string          `json:"product_type"`
	Decision        string          `json:"decision"`
	CompositeScore  int             `json:"composite_score"`
	DTIRatioPercent decimal.Decimal `json:"dti_ratio_percent"`
	EstimatedNewEMI decimal.Decimal `json:"estimated_new_emi"`
	PolicyVersion   string          `json:"policy_version"`
}

// NewAssessmentCompleted builds the completion event for one assessment.
func NewAssessmentCompleted(
	assessmentID, correlationID, productType, decision string,
	compositeScore int,
	dtiRatioPercent, estimatedNewEMI decimal.Decimal,
	policyVersion string,
) AssessmentCompleted {
	return AssessmentCompleted{
		BaseEvent:       NewBaseEvent("assessment.completed", assessmentID, "Assessment"),
		CorrelationID:   correlationID,
		ProductType:     productType,
		Decision:        decision,
		CompositeScore:  compositeScore,
		DTIRatioPercent: dtiRatioPercent,
		EstimatedNewEMI: estimatedNewEMI,
		PolicyVersion:   policyVersion,
	}
}
