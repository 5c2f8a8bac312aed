package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/internal/application/dto"
	"github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/internal/application/usecase"
	"github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/internal/domain/event"
	"github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/internal/domain/model"
	"github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/internal/domain/policy"
	"github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/internal/domain/port"
	"github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/internal/domain/service"
	"github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/internal/domain/valueobject"
)

// --- Mock implementations ---

type mockAssessmentRepository struct {
	saveFunc     func(ctx context.Context, rec model.AssessmentRecord) error
	findByIDFunc func(ctx context.Context, id string) (model.AssessmentRecord, error)
	savedRecords []model.AssessmentRecord
}

func (m *mockAssessmentRepository) Save(ctx context.Context, rec model.AssessmentRecord) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, rec)
	}
	m.savedRecords = append(m.savedRecords, rec)
	return nil
}

func (m *mockAssessmentRepository) FindByID(ctx context.Context, id string) (model.AssessmentRecord, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.AssessmentRecord{}, port.ErrAssessmentNotFound
}

func (m *mockAssessmentRepository) FindByCorrelationID(_ context.Context, _ string) ([]model.AssessmentRecord, error) {
	return nil, nil
}

type mockEventPublisher struct {
	publishFunc     func(ctx context.Context, events ...event.DomainEvent) error
	publishedEvents []event.DomainEvent
}

func (m *mockEventPublisher) Publish(ctx context.Context, evts ...event.DomainEvent) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, evts...)
	}
	m.publishedEvents = append(m.publishedEvents, evts...)
	return nil
}

// --- Helpers ---

func testDataset(t *testing.T) *policy.Dataset {
	t.Helper()
	ds, err := policy.New(policy.Params{
		Version:       "uc-test-1",
		AgeLimits:     policy.AgeLimits{Min: 21, Max: 60},
		AnnualRateBps: 1000,
		CreditBands: []policy.CreditBand{
			{Name: "excellent", MinScore: 750, Score: 50},
			{Name: "good", MinScore: 700, Score: 40},
			{Name: "subprime", MinScore: 0, Score: 0},
		},
		DTIBands: []policy.DTIBand{
			{Category: "safe", Threshold: decimal.RequireFromString("0.40"), Score: 50},
			{Category: "overextended", Threshold: decimal.RequireFromString("10.00"), Score: 0},
		},
		Products: []policy.Product{
			{Type: "personal", MaxPrincipal: decimal.NewFromInt(1_000_000), MinTenureMonths: 12, MaxTenureMonths: 60},
		},
		Thresholds: policy.Thresholds{ApproveAt: 70, RejectBelow: 40},
	})
	require.NoError(t, err)
	return ds
}

func validRequest() dto.AssessApplicationRequest {
	return dto.AssessApplicationRequest{
		Age:                   34,
		EmploymentType:        "SALARIED",
		EmploymentYears:       decimal.NewFromInt(8),
		MonthlyIncome:         decimal.NewFromInt(85_000),
		CreditScore:           760,
		ExistingMonthlyEMI:    decimal.NewFromInt(12_000),
		ExistingLoanCount:     1,
		RequestedPrincipal:    decimal.NewFromInt(500_000),
		ProductType:           "personal",
		RequestedTenureMonths: 36,
	}
}

func newAssessUseCase(t *testing.T, repo *mockAssessmentRepository, pub *mockEventPublisher) *usecase.AssessApplicationUseCase {
	t.Helper()
	return usecase.NewAssessApplicationUseCase(repo, pub, service.NewAssessmentEngine(), testDataset(t), nil)
}

// --- Tests ---

func TestAssessApplication_Success(t *testing.T) {
	repo := &mockAssessmentRepository{}
	pub := &mockEventPublisher{}
	uc := newAssessUseCase(t, repo, pub)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.NotEmpty(t, resp.CorrelationID)
	assert.Equal(t, "APPROVED", resp.Decision)
	assert.Equal(t, 100, resp.CompositeScore)
	assert.Equal(t, "16133.59", resp.EstimatedNewEMI.StringFixed(2))
	assert.Equal(t, "uc-test-1", resp.PolicyVersion)
	assert.Len(t, resp.Checkpoints, 5)
	assert.False(t, resp.CreatedAt.IsZero())

	require.Len(t, repo.savedRecords, 1)
	assert.Equal(t, resp.ID, repo.savedRecords[0].ID())
}

func TestAssessApplication_PublishesCompletedEvent(t *testing.T) {
	repo := &mockAssessmentRepository{}
	pub := &mockEventPublisher{}
	uc := newAssessUseCase(t, repo, pub)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, pub.publishedEvents, 1)
	evt := pub.publishedEvents[0]
	assert.Equal(t, "assessment.completed", evt.EventType())
	assert.Equal(t, resp.ID, evt.AggregateID())

	completed, ok := evt.(event.AssessmentCompleted)
	require.True(t, ok)
	assert.Equal(t, "APPROVED", completed.Decision)
	assert.Equal(t, 100, completed.CompositeScore)
	assert.Equal(t, resp.CorrelationID, completed.CorrelationID)
}

func TestAssessApplication_CorrelationIDPassthrough(t *testing.T) {
	repo := &mockAssessmentRepository{}
	pub := &mockEventPublisher{}
	uc := newAssessUseCase(t, repo, pub)

	req := validRequest()
	req.CorrelationID = "batch-2026-08-row-17"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "batch-2026-08-row-17", resp.CorrelationID)
}

func TestAssessApplication_BoundaryValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.AssessApplicationRequest)
	}{
		{"zero age", func(r *dto.AssessApplicationRequest) { r.Age = 0 }},
		{"unknown employment type", func(r *dto.AssessApplicationRequest) { r.EmploymentType = "FREELANCE" }},
		{"zero income", func(r *dto.AssessApplicationRequest) { r.MonthlyIncome = decimal.Zero }},
		{"credit score below domain", func(r *dto.AssessApplicationRequest) { r.CreditScore = 299 }},
		{"credit score above domain", func(r *dto.AssessApplicationRequest) { r.CreditScore = 851 }},
		{"negative existing EMI", func(r *dto.AssessApplicationRequest) { r.ExistingMonthlyEMI = decimal.NewFromInt(-1) }},
		{"negative loan count", func(r *dto.AssessApplicationRequest) { r.ExistingLoanCount = -1 }},
		{"zero principal", func(r *dto.AssessApplicationRequest) { r.RequestedPrincipal = decimal.Zero }},
		{"empty product type", func(r *dto.AssessApplicationRequest) { r.ProductType = "" }},
		{"zero tenure", func(r *dto.AssessApplicationRequest) { r.RequestedTenureMonths = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mockAssessmentRepository{}
			pub := &mockEventPublisher{}
			uc := newAssessUseCase(t, repo, pub)

			req := validRequest()
			tc.mutate(&req)

			_, err := uc.Execute(context.Background(), req)
			require.Error(t, err)
			assert.ErrorIs(t, err, valueobject.ErrInvalidInput)

			// Nothing persisted, nothing published.
			assert.Empty(t, repo.savedRecords)
			assert.Empty(t, pub.publishedEvents)
		})
	}
}

func TestAssessApplication_UnknownProduct(t *testing.T) {
	repo := &mockAssessmentRepository{}
	pub := &mockEventPublisher{}
	uc := newAssessUseCase(t, repo, pub)

	req := validRequest()
	req.ProductType = "yacht"

	_, err := uc.Execute(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, valueobject.ErrUnknownProduct)
	assert.Empty(t, repo.savedRecords)
}

func TestAssessApplication_RepositoryFailure(t *testing.T) {
	repo := &mockAssessmentRepository{
		saveFunc: func(_ context.Context, _ model.AssessmentRecord) error {
			return assert.AnError
		},
	}
	pub := &mockEventPublisher{}
	uc := newAssessUseCase(t, repo, pub)

	_, err := uc.Execute(context.Background(), validRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save assessment")
	assert.Empty(t, pub.publishedEvents)
}

func TestAssessApplication_PublisherFailure(t *testing.T) {
	repo := &mockAssessmentRepository{}
	pub := &mockEventPublisher{
		publishFunc: func(_ context.Context, _ ...event.DomainEvent) error {
			return assert.AnError
		},
	}
	uc := newAssessUseCase(t, repo, pub)

	_, err := uc.Execute(context.Background(), validRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "publish events")
}

func TestGetAssessment(t *testing.T) {
	repo := &mockAssessmentRepository{}
	pub := &mockEventPublisher{}
	assessUC := newAssessUseCase(t, repo, pub)

	created, err := assessUC.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	repo.findByIDFunc = func(_ context.Context, id string) (model.AssessmentRecord, error) {
		require.Equal(t, created.ID, id)
		return repo.savedRecords[0], nil
	}

	getUC := usecase.NewGetAssessmentUseCase(repo)
	resp, err := getUC.Execute(context.Background(), dto.GetAssessmentRequest{AssessmentID: created.ID})
	require.NoError(t, err)

	assert.Equal(t, created.ID, resp.ID)
	assert.Equal(t, created.Decision, resp.Decision)
	assert.Len(t, resp.Checkpoints, 5)
}

func TestGetAssessment_NotFound(t *testing.T) {
	getUC := usecase.NewGetAssessmentUseCase(&mockAssessmentRepository{})

	_, err := getUC.Execute(context.Background(), dto.GetAssessmentRequest{AssessmentID: "nope"})
	require.Error(t, err)
	assert.ErrorIs(t, err, port.ErrAssessmentNotFound)
}

func TestGetAssessment_EmptyID(t *testing.T) {
	getUC := usecase.NewGetAssessmentUseCase(&mockAssessmentRepository{})

	_, err := getUC.Execute(context.Background(), dto.GetAssessmentRequest{})
	require.Error(t, err)
}
