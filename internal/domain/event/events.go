package event

import (
	"github.com/shopspring/decimal"

	"github.com/amanafinance/amana/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// ---------------------------------------------------------------------------
// Financing Evaluation Events
// ---------------------------------------------------------------------------

// EvaluationCreated is raised when a financing application enters evaluation.
type EvaluationCreated struct {
	events.BaseEvent
	ApplicationID       string          `json:"application_id"`
	BusinessName        string          `json:"business_name"`
	RequestedAmount     decimal.Decimal `json:"requested_amount"`
	Currency            string          `json:"currency"`
	RequestedInstrument string          `json:"requested_instrument"`
}

func NewEvaluationCreated(
	evaluationID, tenantID, applicationID, businessName string,
	requestedAmount decimal.Decimal, currency, requestedInstrument string,
) EvaluationCreated {
	return EvaluationCreated{
		BaseEvent:           events.NewBaseEvent("financing.evaluation.created", evaluationID, "Evaluation", tenantID),
		ApplicationID:       applicationID,
		BusinessName:        businessName,
		RequestedAmount:     requestedAmount,
		Currency:            currency,
		RequestedInstrument: requestedInstrument,
	}
}

// EvaluationCompleted is raised every time the evaluation pipeline runs to a
// decision. Recomputations raise a fresh event with the new outcome.
type EvaluationCompleted struct {
	events.BaseEvent
	ApplicationID  string          `json:"application_id"`
	Decision       string          `json:"decision"`
	CompositeScore decimal.Decimal `json:"composite_score"`
	RiskTier       string          `json:"risk_tier"`
	CreditRating   string          `json:"credit_rating"`
}

func NewEvaluationCompleted(
	evaluationID, tenantID, applicationID, decision string,
	compositeScore decimal.Decimal, riskTier, creditRating string,
) EvaluationCompleted {
	return EvaluationCompleted{
		BaseEvent:      events.NewBaseEvent("financing.evaluation.completed", evaluationID, "Evaluation", tenantID),
		ApplicationID:  applicationID,
		Decision:       decision,
		CompositeScore: compositeScore,
		RiskTier:       riskTier,
		CreditRating:   creditRating,
	}
}

// ApplicationRejected is raised alongside EvaluationCompleted when a Shariah
// compliance failure forces a rejection, so compliance consumers do not have
// to inspect every completed evaluation.
type ApplicationRejected struct {
	events.BaseEvent
	ApplicationID string `json:"application_id"`
	Reason        string `json:"reason"`
}

func NewApplicationRejected(
	evaluationID, tenantID, applicationID, reason string,
) ApplicationRejected {
	return ApplicationRejected{
		BaseEvent:     events.NewBaseEvent("financing.application.rejected", evaluationID, "Evaluation", tenantID),
		ApplicationID: applicationID,
		Reason:        reason,
	}
}

// ChecklistItemRecorded is raised when a due-diligence check outcome changes.
type ChecklistItemRecorded struct {
	events.BaseEvent
	Category string `json:"category"`
	Check    string `json:"check"`
	Status   string `json:"status"`
}

func NewChecklistItemRecorded(
	evaluationID, tenantID, category, check, status string,
) ChecklistItemRecorded {
	return ChecklistItemRecorded{
		BaseEvent: events.NewBaseEvent("financing.evaluation.checklist_item_recorded", evaluationID, "Evaluation", tenantID),
		Category:  category,
		Check:     check,
		Status:    status,
	}
}
