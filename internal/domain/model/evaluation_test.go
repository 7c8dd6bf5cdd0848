package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amanafinance/amana/internal/domain/event"
	"github.com/amanafinance/amana/internal/domain/valueobject"
)

var evalNow = time.Date(2026, time.May, 10, 9, 0, 0, 0, time.UTC)

func newTestEvaluation(t *testing.T) Evaluation {
	t.Helper()
	ev, err := NewEvaluation(
		"tenant-1", "app-1", "Crescent Trading Ltd",
		dec("2000000"), "NGN",
		valueobject.ContractTypeMurabaha, 4,
		FinancialInputs{Revenue: dec("10000000"), NetIncome: dec("1500000")},
		evalNow,
	)
	require.NoError(t, err)
	return ev
}

func TestNewEvaluation(t *testing.T) {
	ev := newTestEvaluation(t)

	assert.NotEmpty(t, ev.ID())
	assert.True(t, ev.Status().Equal(valueobject.EvaluationStatusPending))
	assert.Equal(t, 1, ev.Version())

	require.Len(t, ev.DomainEvents(), 1)
	created, ok := ev.DomainEvents()[0].(event.EvaluationCreated)
	require.True(t, ok)
	assert.Equal(t, "financing.evaluation.created", created.EventType())
	assert.Equal(t, "app-1", created.ApplicationID)

	// The fresh checklist has every standard check in UNKNOWN.
	assert.InDelta(t, 0, ev.Checklist().CompletionScore(), 0.001)
}

func TestNewEvaluation_Validation(t *testing.T) {
	_, err := NewEvaluation("", "app-1", "x", dec("1"), "NGN",
		valueobject.ContractTypeMurabaha, 1, FinancialInputs{}, evalNow)
	assert.Error(t, err)

	_, err = NewEvaluation("tenant-1", "app-1", "x", dec("0"), "NGN",
		valueobject.ContractTypeMurabaha, 1, FinancialInputs{}, evalNow)
	assert.Error(t, err)

	_, err = NewEvaluation("tenant-1", "app-1", "x", dec("1"), "NGN",
		valueobject.ContractType{}, 1, FinancialInputs{}, evalNow)
	assert.Error(t, err)

	_, err = NewEvaluation("tenant-1", "app-1", "x", dec("1"), "NGN",
		valueobject.ContractTypeMurabaha, 1,
		FinancialInputs{Revenue: dec("-5")}, evalNow)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEvaluation_RecordCheckIsImmutable(t *testing.T) {
	ev := newTestEvaluation(t)

	next, err := ev.RecordCheck(valueobject.CategoryShariah, "businessActivitiesHalal", valueobject.CheckPass, evalNow.Add(time.Hour))
	require.NoError(t, err)

	// Original unchanged, copy updated.
	assert.InDelta(t, 0, ev.Checklist().CompletionScore(), 0.001)
	assert.Greater(t, next.Checklist().CompletionScore(), 0.0)
	assert.Len(t, next.DomainEvents(), 2)
	assert.Len(t, ev.DomainEvents(), 1)
}

func TestEvaluation_Complete(t *testing.T) {
	ev := newTestEvaluation(t)

	risk := RiskAssessment{Score: dec("85"), RiskTier: valueobject.RiskTierLow, CreditRating: "A+"}
	rec := Recommendation{
		Decision:       valueobject.DecisionApprove,
		CompositeScore: dec("88.5"),
		Reasoning:      "APPROVE: Strong overall assessment (88.5/100). ",
	}

	next, err := ev.Complete(FinancialRatios{CurrentRatio: dec("2.1")}, risk, rec, evalNow.Add(time.Hour))
	require.NoError(t, err)

	assert.True(t, next.Status().Equal(valueobject.EvaluationStatusEvaluated))
	assert.True(t, next.Recommendation().Decision.Equal(valueobject.DecisionApprove))

	completed, ok := next.DomainEvents()[len(next.DomainEvents())-1].(event.EvaluationCompleted)
	require.True(t, ok)
	assert.Equal(t, "APPROVE", completed.Decision)
	assert.Equal(t, "LOW", completed.RiskTier)

	// Recompute replaces the outcome wholesale.
	risk2 := RiskAssessment{Score: dec("40"), RiskTier: valueobject.RiskTierHigh, CreditRating: "C+"}
	rec2 := Recommendation{Decision: valueobject.DecisionRequestInfo, CompositeScore: dec("42")}
	again, err := next.Complete(FinancialRatios{}, risk2, rec2, evalNow.Add(2*time.Hour))
	require.NoError(t, err)
	assert.True(t, again.Recommendation().Decision.Equal(valueobject.DecisionRequestInfo))
}

func TestEvaluation_CompleteShariahRejectRaisesRejectionEvent(t *testing.T) {
	ev := newTestEvaluation(t)

	failed, err := ev.RecordCheck(valueobject.CategoryShariah, "noInterestBasedOperations", valueobject.CheckFail, evalNow)
	require.NoError(t, err)

	risk := RiskAssessment{Score: dec("60"), RiskTier: valueobject.RiskTierMedium, CreditRating: "B"}
	rec := Recommendation{
		Decision:       valueobject.DecisionReject,
		CompositeScore: dec("0"),
		Reasoning:      "REJECT: Business activities not Shariah-compliant.",
	}

	next, err := failed.Complete(FinancialRatios{}, risk, rec, evalNow.Add(time.Hour))
	require.NoError(t, err)

	rejected, ok := next.DomainEvents()[len(next.DomainEvents())-1].(event.ApplicationRejected)
	require.True(t, ok)
	assert.Equal(t, "financing.application.rejected", rejected.EventType())
	assert.Equal(t, "app-1", rejected.ApplicationID)
	assert.Contains(t, rejected.Reason, "Shariah")
}

func TestEvaluation_CompleteRequiresOutcome(t *testing.T) {
	ev := newTestEvaluation(t)

	_, err := ev.Complete(FinancialRatios{}, RiskAssessment{}, Recommendation{}, evalNow)
	assert.Error(t, err)
}

func TestEvaluation_ClearEvents(t *testing.T) {
	ev := newTestEvaluation(t)

	cleared := ev.ClearEvents()
	assert.Empty(t, cleared.DomainEvents())
	assert.Len(t, ev.DomainEvents(), 1)
}
