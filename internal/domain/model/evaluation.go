package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/amanafinance/amana/internal/domain/event"
	"github.com/amanafinance/amana/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Evaluation aggregate root (financing application evaluation)
// ---------------------------------------------------------------------------

// Evaluation is an immutable aggregate. Every mutation returns a new copy.
// It carries the inputs of one financing application's underwriting review
// (financial figures, due-diligence checklist, requested terms) and the
// latest computed outcome (ratios, risk assessment, recommendation).
type Evaluation struct {
	id                  string
	tenantID            string
	applicationID       string
	businessName        string
	requestedAmount     decimal.Decimal
	currency            string
	requestedInstrument valueobject.ContractType
	yearsInOperation    int
	financials          FinancialInputs
	checklist           valueobject.Checklist
	status              valueobject.EvaluationStatus
	ratios              FinancialRatios
	risk                RiskAssessment
	recommendation      Recommendation
	version             int
	createdAt           time.Time
	updatedAt           time.Time
	domainEvents        []event.DomainEvent
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// NewEvaluation creates a brand-new evaluation in PENDING status with the
// standard checklist, every check UNKNOWN.
func NewEvaluation(
	tenantID, applicationID, businessName string,
	requestedAmount decimal.Decimal,
	currency string,
	requestedInstrument valueobject.ContractType,
	yearsInOperation int,
	financials FinancialInputs,
	now time.Time,
) (Evaluation, error) {
	if tenantID == "" {
		return Evaluation{}, errors.New("tenant ID is required")
	}
	if applicationID == "" {
		return Evaluation{}, errors.New("application ID is required")
	}
	if requestedAmount.LessThanOrEqual(decimal.Zero) {
		return Evaluation{}, errors.New("requested amount must be positive")
	}
	if currency == "" {
		return Evaluation{}, errors.New("currency is required")
	}
	if requestedInstrument.IsZero() {
		return Evaluation{}, errors.New("requested instrument is required")
	}
	if yearsInOperation < 0 {
		return Evaluation{}, errors.New("years in operation must not be negative")
	}
	if err := financials.Validate(); err != nil {
		return Evaluation{}, err
	}

	id := uuid.New().String()
	ev := Evaluation{
		id:                  id,
		tenantID:            tenantID,
		applicationID:       applicationID,
		businessName:        businessName,
		requestedAmount:     requestedAmount,
		currency:            currency,
		requestedInstrument: requestedInstrument,
		yearsInOperation:    yearsInOperation,
		financials:          financials,
		checklist:           valueobject.NewChecklist(),
		status:              valueobject.EvaluationStatusPending,
		version:             1,
		createdAt:           now,
		updatedAt:           now,
	}

	created := event.NewEvaluationCreated(
		id, tenantID, applicationID, businessName,
		requestedAmount, currency, requestedInstrument.String(),
	)
	ev.domainEvents = append(ev.domainEvents, created)
	return ev, nil
}

// ReconstructEvaluation rebuilds an aggregate from persistence without
// side-effects.
func ReconstructEvaluation(
	id, tenantID, applicationID, businessName string,
	requestedAmount decimal.Decimal,
	currency string,
	requestedInstrument valueobject.ContractType,
	yearsInOperation int,
	financials FinancialInputs,
	checklist valueobject.Checklist,
	status valueobject.EvaluationStatus,
	ratios FinancialRatios,
	risk RiskAssessment,
	recommendation Recommendation,
	version int,
	createdAt, updatedAt time.Time,
) Evaluation {
	return Evaluation{
		id:                  id,
		tenantID:            tenantID,
		applicationID:       applicationID,
		businessName:        businessName,
		requestedAmount:     requestedAmount,
		currency:            currency,
		requestedInstrument: requestedInstrument,
		yearsInOperation:    yearsInOperation,
		financials:          financials,
		checklist:           checklist,
		status:              status,
		ratios:              ratios,
		risk:                risk,
		recommendation:      recommendation,
		version:             version,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}
}

// ---------------------------------------------------------------------------
// State transitions (each returns a new copy)
// ---------------------------------------------------------------------------

// RecordCheck sets one due-diligence check outcome. Any previously computed
// result stays attached until the next Complete; callers are expected to
// re-run the pipeline after edits.
func (e Evaluation) RecordCheck(
	category valueobject.ChecklistCategory,
	check string,
	status valueobject.CheckStatus,
	now time.Time,
) (Evaluation, error) {
	if status.IsZero() {
		return e, errors.New("check status is required")
	}
	next := e
	next.checklist = e.checklist.Set(category, check, status)
	next.updatedAt = now
	next.domainEvents = copyEvents(e.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewChecklistItemRecorded(
		e.id, e.tenantID, string(category), check, status.String(),
	))
	return next, nil
}

// UpdateFinancials replaces the raw financial figures.
func (e Evaluation) UpdateFinancials(financials FinancialInputs, now time.Time) (Evaluation, error) {
	if err := financials.Validate(); err != nil {
		return e, err
	}
	next := e
	next.financials = financials
	next.updatedAt = now
	next.domainEvents = copyEvents(e.domainEvents)
	return next, nil
}

// Complete attaches a freshly computed outcome and moves the evaluation to
// EVALUATED. Recomputation is allowed from any status; the outcome always
// replaces the prior one wholesale.
func (e Evaluation) Complete(
	ratios FinancialRatios,
	risk RiskAssessment,
	recommendation Recommendation,
	now time.Time,
) (Evaluation, error) {
	if risk.RiskTier.IsZero() {
		return e, errors.New("risk tier is required")
	}
	if recommendation.Decision.IsZero() {
		return e, errors.New("recommendation decision is required")
	}

	next := e
	next.status = valueobject.EvaluationStatusEvaluated
	next.ratios = ratios
	next.risk = risk
	next.recommendation = recommendation
	next.updatedAt = now
	next.domainEvents = copyEvents(e.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewEvaluationCompleted(
		e.id, e.tenantID, e.applicationID,
		recommendation.Decision.String(), recommendation.CompositeScore,
		risk.RiskTier.String(), risk.CreditRating,
	))
	if recommendation.Decision.Equal(valueobject.DecisionReject) &&
		next.checklist.HasFailure(valueobject.CategoryShariah) {
		next.domainEvents = append(next.domainEvents, event.NewApplicationRejected(
			e.id, e.tenantID, e.applicationID, recommendation.Reasoning,
		))
	}
	return next, nil
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (e Evaluation) ID() string                                     { return e.id }
func (e Evaluation) TenantID() string                               { return e.tenantID }
func (e Evaluation) ApplicationID() string                          { return e.applicationID }
func (e Evaluation) BusinessName() string                           { return e.businessName }
func (e Evaluation) RequestedAmount() decimal.Decimal               { return e.requestedAmount }
func (e Evaluation) Currency() string                               { return e.currency }
func (e Evaluation) RequestedInstrument() valueobject.ContractType  { return e.requestedInstrument }
func (e Evaluation) YearsInOperation() int                          { return e.yearsInOperation }
func (e Evaluation) Financials() FinancialInputs                    { return e.financials }
func (e Evaluation) Checklist() valueobject.Checklist               { return e.checklist }
func (e Evaluation) Status() valueobject.EvaluationStatus           { return e.status }
func (e Evaluation) Ratios() FinancialRatios                        { return e.ratios }
func (e Evaluation) Risk() RiskAssessment                           { return e.risk }
func (e Evaluation) Recommendation() Recommendation                 { return e.recommendation }
func (e Evaluation) Version() int                                   { return e.version }
func (e Evaluation) CreatedAt() time.Time                           { return e.createdAt }
func (e Evaluation) UpdatedAt() time.Time                           { return e.updatedAt }
func (e Evaluation) DomainEvents() []event.DomainEvent              { return e.domainEvents }

// ClearEvents returns a copy with an empty event list (call after publishing).
func (e Evaluation) ClearEvents() Evaluation {
	next := e
	next.domainEvents = nil
	return next
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func copyEvents(src []event.DomainEvent) []event.DomainEvent {
	if len(src) == 0 {
		return nil
	}
	dst := make([]event.DomainEvent, len(src))
	copy(dst, src)
	return dst
}
