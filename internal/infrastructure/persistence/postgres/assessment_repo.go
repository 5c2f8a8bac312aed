package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/internal/domain/model"
	"github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/internal/domain/port"
	"github.com/DeepanBomb/AI-Loan-Eligibility-Risk-Assessment/internal/domain/valueobject"
)

// AssessmentRepo implements port.AssessmentRepository.
type AssessmentRepo struct {
	pool *pgxpool.Pool
}

// NewAssessmentRepo creates a new repository backed by PostgreSQL.
func NewAssessmentRepo(pool *pgxpool.Pool) *AssessmentRepo {
	return &AssessmentRepo{pool: pool}
}

// checkpointRow is the JSONB shape of one checkpoint in the audit table.
type checkpointRow struct {
	Label  string `json:"label"`
	Status string `json:"status"`
	Detail string `json:"detail"`
}

// Save persists an assessment record. Records are write-once; a
// duplicate ID is a programming error surfaced by the unique constraint.
func (r *AssessmentRepo) Save(ctx context.Context, rec model.AssessmentRecord) error {
	applicant := rec.Applicant()
	assessment := rec.Assessment()

	cps := assessment.Checkpoints()
	rows := make([]checkpointRow, 0, len(cps))
	for _, cp := range cps {
		rows = append(rows, checkpointRow{
			Label:  cp.Label,
			Status: cp.Status.String(),
			Detail: cp.Detail,
		})
	}
	checkpointsJSON, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("marshal checkpoints: %w", err)
	}

	query := `
		INSERT INTO assessments (
			id, correlation_id,
			age, employment_type, employment_years, monthly_income,
			credit_score, existing_monthly_emi, existing_loan_count,
			requested_principal, product_type, requested_tenure_months,
			decision, composite_score, dti_ratio,
			estimated_new_emi, combined_obligation,
			checkpoints, policy_version, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20)
	`
	_, err = r.pool.Exec(ctx, query,
		rec.ID(), rec.CorrelationID(),
		applicant.Age, applicant.EmploymentType.String(), applicant.EmploymentYears, applicant.MonthlyIncome,
		applicant.CreditScore, applicant.ExistingMonthlyEMI, applicant.ExistingLoanCount,
		applicant.RequestedPrincipal, applicant.ProductType, applicant.RequestedTenureMonths,
		assessment.Decision().String(), assessment.CompositeScore(), assessment.DTIRatio(),
		assessment.EstimatedNewEMI(), assessment.CombinedMonthlyObligation(),
		checkpointsJSON, rec.PolicyVersion(), rec.CreatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save assessment: %w", err)
	}
	return nil
}

// FindByID retrieves a single assessment record.
func (r *AssessmentRepo) FindByID(ctx context.Context, id string) (model.AssessmentRecord, error) {
	query := selectColumns + ` WHERE id = $1`
	rec, err := scanRecord(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.AssessmentRecord{}, fmt.Errorf("assessment %s: %w", id, port.ErrAssessmentNotFound)
	}
	return rec, err
}

// FindByCorrelationID retrieves all assessments sharing a correlation ID,
// newest first.
func (r *AssessmentRepo) FindByCorrelationID(ctx context.Context, correlationID string) ([]model.AssessmentRecord, error) {
	query := selectColumns + ` WHERE correlation_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, correlationID)
	if err != nil {
		return nil, fmt.Errorf("query assessments: %w", err)
	}
	defer rows.Close()

	var result []model.AssessmentRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	return result, rows.Err()
}

const selectColumns = `
	SELECT id, correlation_id,
	       age, employment_type, employment_years, monthly_income,
	       credit_score, existing_monthly_emi, existing_loan_count,
	       requested_principal, product_type, requested_tenure_months,
	       decision, composite_score, dti_ratio,
	       estimated_new_emi, combined_obligation,
	       checkpoints, policy_version, created_at
	FROM assessments`

type scannable interface {
	Scan(dest ...any) error
}

func scanRecord(s scannable) (model.AssessmentRecord, error) {
	var (
		id, correlationID                  string
		age                                int
		employmentStr                      string
		employmentYears, monthlyIncome     decimal.Decimal
		creditScore                        int
		existingEMI                        decimal.Decimal
		existingLoanCount                  int
		requestedPrincipal                 decimal.Decimal
		productType                        string
		tenureMonths                       int
		decisionStr                        string
		compositeScore                     int
		dtiRatio, estimatedEMI, obligation decimal.Decimal
		checkpointsJSON                    []byte
		policyVersion                      string
		createdAt                          time.Time
	)

	err := s.Scan(
		&id, &correlationID,
		&age, &employmentStr, &employmentYears, &monthlyIncome,
		&creditScore, &existingEMI, &existingLoanCount,
		&requestedPrincipal, &productType, &tenureMonths,
		&decisionStr, &compositeScore, &dtiRatio,
		&estimatedEMI, &obligation,
		&checkpointsJSON, &policyVersion, &createdAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.AssessmentRecord{}, err
		}
		return model.AssessmentRecord{}, fmt.Errorf("scan assessment: %w", err)
	}

	employment, err := valueobject.NewEmploymentType(employmentStr)
	if err != nil {
		return model.AssessmentRecord{}, fmt.Errorf("stored employment type: %w", err)
	}
	decision, err := valueobject.NewDecision(decisionStr)
	if err != nil {
		return model.AssessmentRecord{}, fmt.Errorf("stored decision: %w", err)
	}

	var cpRows []checkpointRow
	if err := json.Unmarshal(checkpointsJSON, &cpRows); err != nil {
		return model.AssessmentRecord{}, fmt.Errorf("unmarshal checkpoints: %w", err)
	}
	checkpoints := make([]model.Checkpoint, 0, len(cpRows))
	for _, row := range cpRows {
		status, err := valueobject.NewCheckpointStatus(row.Status)
		if err != nil {
			return model.AssessmentRecord{}, fmt.Errorf("stored checkpoint status: %w", err)
		}
		checkpoints = append(checkpoints, model.Checkpoint{
			Label:  row.Label,
			Status: status,
			Detail: row.Detail,
		})
	}

	applicant := model.Applicant{
		Age:                   age,
		EmploymentType:        employment,
		EmploymentYears:       employmentYears,
		MonthlyIncome:         monthlyIncome,
		CreditScore:           creditScore,
		ExistingMonthlyEMI:    existingEMI,
		ExistingLoanCount:     existingLoanCount,
		RequestedPrincipal:    requestedPrincipal,
		ProductType:           productType,
		RequestedTenureMonths: tenureMonths,
	}

	assessment := model.NewAssessment(decision, compositeScore, dtiRatio, estimatedEMI, obligation, checkpoints)

	return model.ReconstructAssessmentRecord(id, correlationID, applicant, assessment, policyVersion, createdAt), nil
}
