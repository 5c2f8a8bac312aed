package port

import (
	"context"
	"errors"

	"github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/internal/domain/event"
	"github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/internal/domain/model"
)

// ErrAssessmentNotFound is returned when no record matches the lookup.
var ErrAssessmentNotFound = errors.New("assessment not found")

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// AssessmentRepository persists and retrieves assessment audit records.
type AssessmentRepository interface {
	Save(ctx context.Context, rec model.AssessmentRecord) error
	FindByID(ctx context.Context, id string) (model.AssessmentRecord, error)
	FindByCorrelationID(ctx context.Context, correlationID string) ([]model.AssessmentRecord, error)
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}
