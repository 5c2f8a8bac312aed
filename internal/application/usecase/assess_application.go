package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/internal/application/dto"
	"github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/internal/domain/model"
	"github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/internal/domain/policy"
	"github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/internal/domain/port"
	"github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/internal/domain/service"
	"github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/internal/domain/valueobject"
	"github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/internal/infrastructure/metrics"
)

// Credit score domain bounds enforced at the collection boundary.
const (
	minCreditScore = 300
	maxCreditScore = 850
)

// AssessApplicationUseCase orchestrates applicant-boundary validation,
// the pure assessment computation, audit persistence, and event
// publication. The engine itself stays free of all of these concerns.
type AssessApplicationUseCase struct {
	repo      port.AssessmentRepository
	publisher port.EventPublisher
	engine    *service.AssessmentEngine
	dataset   *policy.Dataset
	metrics   *metrics.Metrics
}

// NewAssessApplicationUseCase wires dependencies. The dataset is loaded
// once at startup and shared read-only for the process lifetime.
func NewAssessApplicationUseCase(
	repo port.AssessmentRepository,
	publisher port.EventPublisher,
	engine *service.AssessmentEngine,
	dataset *policy.Dataset,
	m *metrics.Metrics,
) *AssessApplicationUseCase {
	return &AssessApplicationUseCase{
		repo:      repo,
		publisher: publisher,
		engine:    engine,
		dataset:   dataset,
		metrics:   m,
	}
}

// Execute validates, assesses, persists, and publishes one application.
func (uc *AssessApplicationUseCase) Execute(
	ctx context.Context,
	req dto.AssessApplicationRequest,
) (dto.AssessmentResponse, error) {
	start := time.Now()
	now := start.UTC()

	// 1. Collection-boundary validation. The engine assumes well-typed
	// fields; anything missing or out of range stops here.
	applicant, err := toApplicant(req)
	if err != nil {
		return dto.AssessmentResponse{}, err
	}

	// 2. Correlation ID travels in from the caller; mint one only when
	// the caller did not attach any.
	correlationID := req.CorrelationID
	if correlationID == "" {
		correlationID = uuid.New().String()
	}

	// 3. Run the pure assessment.
	assessment, err := uc.engine.Evaluate(applicant, uc.dataset)
	if err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("evaluate application: %w", err)
	}

	// 4. Build the audit record.
	rec, err := model.NewAssessmentRecord(correlationID, applicant, assessment, uc.dataset.Version(), now)
	if err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("create assessment record: %w", err)
	}

	// 5. Persist.
	if err := uc.repo.Save(ctx, rec); err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("save assessment: %w", err)
	}

	// 6. Publish domain events.
	if err := uc.publisher.Publish(ctx, rec.DomainEvents()...); err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("publish events: %w", err)
	}

	if uc.metrics != nil {
		uc.metrics.RecordDecision(assessment.Decision().String())
		uc.metrics.ObserveAssessment(start)
	}

	return toAssessmentResponse(rec), nil
}

func toApplicant(req dto.AssessApplicationRequest) (model.Applicant, error) {
	if req.Age <= 0 {
		return model.Applicant{}, fmt.Errorf("age must be positive: %w", valueobject.ErrInvalidInput)
	}
	employment, err := valueobject.NewEmploymentType(req.EmploymentType)
	if err != nil {
		return model.Applicant{}, fmt.Errorf("%v: %w", err, valueobject.ErrInvalidInput)
	}
	if req.MonthlyIncome.LessThanOrEqual(decimal.Zero) {
		return model.Applicant{}, fmt.Errorf("monthly income must be positive: %w", valueobject.ErrInvalidInput)
	}
	if req.CreditScore < minCreditScore || req.CreditScore > maxCreditScore {
		return model.Applicant{}, fmt.Errorf("credit score %d outside %d-%d: %w",
			req.CreditScore, minCreditScore, maxCreditScore, valueobject.ErrInvalidInput)
	}
	if req.ExistingMonthlyEMI.LessThan(decimal.Zero) {
		return model.Applicant{}, fmt.Errorf("existing EMI must not be negative: %w", valueobject.ErrInvalidInput)
	}
	if req.ExistingLoanCount < 0 {
		return model.Applicant{}, fmt.Errorf("existing loan count must not be negative: %w", valueobject.ErrInvalidInput)
	}
	if req.RequestedPrincipal.LessThanOrEqual(decimal.Zero) {
		return model.Applicant{}, fmt.Errorf("requested principal must be positive: %w", valueobject.ErrInvalidInput)
	}
	if req.ProductType == "" {
		return model.Applicant{}, fmt.Errorf("product type is required: %w", valueobject.ErrInvalidInput)
	}
	if req.RequestedTenureMonths <= 0 {
		return model.Applicant{}, fmt.Errorf("tenure months must be positive: %w", valueobject.ErrInvalidInput)
	}

	return model.Applicant{
		Age:                   req.Age,
		EmploymentType:        employment,
		EmploymentYears:       req.EmploymentYears,
		MonthlyIncome:         req.MonthlyIncome,
		CreditScore:           req.CreditScore,
		ExistingMonthlyEMI:    req.ExistingMonthlyEMI,
		ExistingLoanCount:     req.ExistingLoanCount,
		RequestedPrincipal:    req.RequestedPrincipal,
		ProductType:           req.ProductType,
		RequestedTenureMonths: req.RequestedTenureMonths,
	}, nil
}

func toAssessmentResponse(rec model.AssessmentRecord) dto.AssessmentResponse {
	assessment := rec.Assessment()
	cps := assessment.Checkpoints()
	cpResponses := make([]dto.CheckpointResponse, 0, len(cps))
	for _, cp := range cps {
		cpResponses = append(cpResponses, dto.CheckpointResponse{
			Label:  cp.Label,
			Status: cp.Status.String(),
			Detail: cp.Detail,
		})
	}

	return dto.AssessmentResponse{
		ID:                        rec.ID(),
		CorrelationID:             rec.CorrelationID(),
		Decision:                  assessment.Decision().String(),
		CompositeScore:            assessment.CompositeScore(),
		DTIRatioPercent:           assessment.DTIRatioPercent(),
		EstimatedNewEMI:           assessment.EstimatedNewEMI(),
		CombinedMonthlyObligation: assessment.CombinedMonthlyObligation(),
		Checkpoints:               cpResponses,
		PolicyVersion:             rec.PolicyVersion(),
		CreatedAt:                 rec.CreatedAt(),
	}
}
