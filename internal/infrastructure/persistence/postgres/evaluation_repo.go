package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/amanafinance/amana/internal/domain/model"
	"github.com/amanafinance/amana/internal/domain/valueobject"
	pkgpostgres "github.com/amanafinance/amana/pkg/postgres"
)

// EvaluationRepo implements port.EvaluationRepository. It holds a Querier so
// callers can rebind it onto a transaction.
type EvaluationRepo struct {
	db pkgpostgres.Querier
}

// NewEvaluationRepo creates a new repository backed by PostgreSQL.
func NewEvaluationRepo(pool *pgxpool.Pool) *EvaluationRepo {
	return &EvaluationRepo{db: pool}
}

// WithQuerier returns a copy of the repository bound to the given querier,
// typically a pgx.Tx inside postgres.WithTransaction.
func (r *EvaluationRepo) WithQuerier(q pkgpostgres.Querier) *EvaluationRepo {
	return &EvaluationRepo{db: q}
}

const evaluationColumns = `
	id, tenant_id, application_id, business_name, requested_amount, currency,
	requested_instrument, years_in_operation, financials, checklist, status,
	ratios, risk, recommendation, version, created_at, updated_at
`

// Save persists an evaluation (upsert by ID with optimistic locking). The
// analysis payloads live in JSONB columns; the identifying fields stay
// relational for lookups.
func (r *EvaluationRepo) Save(ctx context.Context, ev model.Evaluation) error {
	financials, err := marshalFinancials(ev.Financials())
	if err != nil {
		return err
	}
	checklist, err := marshalChecklist(ev.Checklist())
	if err != nil {
		return err
	}
	ratios, err := marshalRatios(ev.Ratios())
	if err != nil {
		return err
	}
	risk, err := marshalRisk(ev.Risk())
	if err != nil {
		return err
	}
	recommendation, err := marshalRecommendation(ev.Recommendation())
	if err != nil {
		return err
	}

	query := `
		INSERT INTO financing_evaluations (` + evaluationColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
		ON CONFLICT (id) DO UPDATE SET
			business_name  = EXCLUDED.business_name,
			financials     = EXCLUDED.financials,
			checklist      = EXCLUDED.checklist,
			status         = EXCLUDED.status,
			ratios         = EXCLUDED.ratios,
			risk           = EXCLUDED.risk,
			recommendation = EXCLUDED.recommendation,
			version        = financing_evaluations.version + 1,
			updated_at     = EXCLUDED.updated_at
		WHERE financing_evaluations.version = $15
	`
	tag, err := r.db.Exec(ctx, query,
		ev.ID(), ev.TenantID(), ev.ApplicationID(), ev.BusinessName(),
		ev.RequestedAmount(), ev.Currency(),
		ev.RequestedInstrument().String(), ev.YearsInOperation(),
		financials, checklist, ev.Status().String(),
		ratios, risk, recommendation,
		ev.Version(), ev.CreatedAt(), ev.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save evaluation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errors.New("optimistic locking conflict on evaluation")
	}
	return nil
}

// FindByID retrieves a single evaluation.
func (r *EvaluationRepo) FindByID(ctx context.Context, tenantID, id string) (model.Evaluation, error) {
	query := `
		SELECT ` + evaluationColumns + `
		FROM financing_evaluations
		WHERE tenant_id = $1 AND id = $2
	`
	return r.scanOne(ctx, query, tenantID, id)
}

// FindByApplicationID retrieves the evaluation attached to an application.
// An application has at most one evaluation; re-runs update it in place.
func (r *EvaluationRepo) FindByApplicationID(ctx context.Context, tenantID, applicationID string) (model.Evaluation, error) {
	query := `
		SELECT ` + evaluationColumns + `
		FROM financing_evaluations
		WHERE tenant_id = $1 AND application_id = $2
	`
	return r.scanOne(ctx, query, tenantID, applicationID)
}

func (r *EvaluationRepo) scanOne(ctx context.Context, query string, args ...any) (model.Evaluation, error) {
	row := r.db.QueryRow(ctx, query, args...)
	ev, err := scanEvaluation(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Evaluation{}, fmt.Errorf("evaluation: %w", model.ErrNotFound)
	}
	return ev, err
}

func scanEvaluation(row pgx.Row) (model.Evaluation, error) {
	var (
		id, tenantID, applicationID, businessName string
		requestedAmount                           decimal.Decimal
		currency, instrumentStr                   string
		yearsInOperation                          int
		financialsJSON, checklistJSON             []byte
		statusStr                                 string
		ratiosJSON, riskJSON, recommendationJSON  []byte
		version                                   int
		createdAt, updatedAt                      time.Time
	)

	err := row.Scan(
		&id, &tenantID, &applicationID, &businessName,
		&requestedAmount, &currency,
		&instrumentStr, &yearsInOperation,
		&financialsJSON, &checklistJSON, &statusStr,
		&ratiosJSON, &riskJSON, &recommendationJSON,
		&version, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Evaluation{}, err
		}
		return model.Evaluation{}, fmt.Errorf("scan evaluation: %w", err)
	}

	instrument, err := valueobject.NewContractType(instrumentStr)
	if err != nil {
		return model.Evaluation{}, fmt.Errorf("parse instrument: %w", err)
	}
	status, err := valueobject.NewEvaluationStatus(statusStr)
	if err != nil {
		return model.Evaluation{}, fmt.Errorf("parse status: %w", err)
	}

	financials, err := unmarshalFinancials(financialsJSON)
	if err != nil {
		return model.Evaluation{}, err
	}
	checklist, err := unmarshalChecklist(checklistJSON)
	if err != nil {
		return model.Evaluation{}, err
	}
	ratios, err := unmarshalRatios(ratiosJSON)
	if err != nil {
		return model.Evaluation{}, err
	}
	risk, err := unmarshalRisk(riskJSON)
	if err != nil {
		return model.Evaluation{}, err
	}
	recommendation, err := unmarshalRecommendation(recommendationJSON)
	if err != nil {
		return model.Evaluation{}, err
	}

	return model.ReconstructEvaluation(
		id, tenantID, applicationID, businessName,
		requestedAmount, currency,
		instrument, yearsInOperation,
		financials, checklist, status,
		ratios, risk, recommendation,
		version, createdAt, updatedAt,
	), nil
}
