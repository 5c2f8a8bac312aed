package grpc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/internal/application/dto"
	"github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/internal/application/usecase"
	"github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/internal/domain/port"
	"github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/internal/domain/valueobject"
)

// AssessmentHandler exposes assessment operations over gRPC.
type AssessmentHandler struct {
	UnimplementedAssessmentServiceServer
	assess *usecase.AssessApplicationUseCase
	get    *usecase.GetAssessmentUseCase
	logger *slog.Logger
}

// NewAssessmentHandler creates a new handler with all use-case dependencies.
func NewAssessmentHandler(
	assess *usecase.AssessApplicationUseCase,
	get *usecase.GetAssessmentUseCase,
	logger *slog.Logger,
) *AssessmentHandler {
	return &AssessmentHandler{
		assess: assess,
		get:    get,
		logger: logger,
	}
}

// SubmitAssessment runs one application through the assessment pipeline.
func (h *AssessmentHandler) SubmitAssessment(
	ctx context.Context,
	req *SubmitAssessmentRequest,
) (*SubmitAssessmentResponse, error) {
	employmentYears, err := parseDecimal(req.EmploymentYears, "employment_years")
	if err != nil {
		return nil, err
	}
	monthlyIncome, err := parseDecimal(req.MonthlyIncome, "monthly_income")
	if err != nil {
		return nil, err
	}
	existingEMI, err := parseDecimal(req.ExistingMonthlyEMI, "existing_monthly_emi")
	if err != nil {
		return nil, err
	}
	principal, err := parseDecimal(req.RequestedPrincipal, "requested_principal")
	if err != nil {
		return nil, err
	}

	resp, err := h.assess.Execute(ctx, dto.AssessApplicationRequest{
		CorrelationID:         req.CorrelationID,
		Age:                   req.Age,
		EmploymentType:        req.EmploymentType,
		EmploymentYears:       employmentYears,
		MonthlyIncome:         monthlyIncome,
		CreditScore:           req.CreditScore,
		ExistingMonthlyEMI:    existingEMI,
		ExistingLoanCount:     req.ExistingLoanCount,
		RequestedPrincipal:    principal,
		ProductType:           req.ProductType,
		RequestedTenureMonths: req.RequestedTenureMonths,
	})
	if err != nil {
		h.logger.Warn("assessment failed", "correlation_id", req.CorrelationID, "error", err)
		return nil, mapError(err)
	}

	return &SubmitAssessmentResponse{Assessment: toAssessmentMessage(resp)}, nil
}

// GetAssessment retrieves a past assessment by ID.
func (h *AssessmentHandler) GetAssessment(
	ctx context.Context,
	req *GetAssessmentRequest,
) (*GetAssessmentResponse, error) {
	resp, err := h.get.Execute(ctx, dto.GetAssessmentRequest{
		AssessmentID: req.AssessmentID,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &GetAssessmentResponse{Assessment: toAssessmentMessage(resp)}, nil
}

func parseDecimal(raw, field string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, status.Errorf(codes.InvalidArgument, "invalid %s: %v", field, err)
	}
	return d, nil
}

// mapError translates domain error kinds onto gRPC status codes.
func mapError(err error) error {
	switch {
	case errors.Is(err, valueobject.ErrUnknownProduct),
		errors.Is(err, valueobject.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, port.ErrAssessmentNotFound):
		return status.Error(codes.NotFound, err.Error())
	default:
		return status.Error(codes.Internal, fmt.Sprintf("assessment: %v", err))
	}
}

func toAssessmentMessage(resp dto.AssessmentResponse) AssessmentMessage {
	cps := make([]CheckpointMessage, 0, len(resp.Checkpoints))
	for _, cp := range resp.Checkpoints {
		cps = append(cps, CheckpointMessage{
			Label:  cp.Label,
			Status: cp.Status,
			Detail: cp.Detail,
		})
	}

	return AssessmentMessage{
		ID:                        resp.ID,
		CorrelationID:             resp.CorrelationID,
		Decision:                  resp.Decision,
		CompositeScore:            resp.CompositeScore,
		DTIRatioPercent:           resp.DTIRatioPercent.StringFixed(1),
		EstimatedNewEMI:           resp.EstimatedNewEMI.StringFixed(2),
		CombinedMonthlyObligation: resp.CombinedMonthlyObligation.StringFixed(2),
		Checkpoints:               cps,
		PolicyVersion:             resp.PolicyVersion,
		CreatedAt:                 resp.CreatedAt,
	}
}
