package usecase

import (
	"context"
	"fmt"

	"github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/internal/application/dto"
	"github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/internal/domain/port"
)

// GetAssessmentUseCase retrieves a past assessment from the audit trail.
type GetAssessmentUseCase struct {
	repo port.AssessmentRepository
}

// NewGetAssessmentUseCase wires dependencies.
func NewGetAssessmentUseCase(repo port.AssessmentRepository) *GetAssessmentUseCase {
	return &GetAssessmentUseCase{repo: repo}
}

// Execute fetches one assessment record by ID.
func (uc *GetAssessmentUseCase) Execute(
	ctx context.Context,
	req dto.GetAssessmentRequest,
) (dto.AssessmentResponse, error) {
	if req.AssessmentID == "" {
		return dto.AssessmentResponse{}, fmt.Errorf("assessment ID is required")
	}

	rec, err := uc.repo.FindByID(ctx, req.AssessmentID)
	if err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("find assessment: %w", err)
	}

	return toAssessmentResponse(rec), nil
}
