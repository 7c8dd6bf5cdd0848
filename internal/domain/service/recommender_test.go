package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amanafinance/amana/internal/domain/model"
	"github.com/amanafinance/amana/internal/domain/valueobject"
)

func checklistWithAll(status valueobject.CheckStatus) valueobject.Checklist {
	cl := valueobject.NewChecklist()
	for cat, checks := range cl {
		for name := range checks {
			cl = cl.Set(cat, name, status)
		}
	}
	return cl
}

func strongRatios() model.FinancialRatios {
	return model.FinancialRatios{
		CurrentRatio: dec("2.5"), DebtToEquity: dec("0.4"),
		ReturnOnAssets: dec("12"), ReturnOnEquity: dec("18"),
		ProfitMargin: dec("18"), OperatingMargin: dec("22"),
	}
}

func lowRisk() model.RiskAssessment {
	return model.RiskAssessment{Score: dec("100"), RiskTier: valueobject.RiskTierLow, CreditRating: "A+"}
}

func highRisk() model.RiskAssessment {
	return model.RiskAssessment{Score: dec("30"), RiskTier: valueobject.RiskTierHigh, CreditRating: "C"}
}

func TestRecommend_StrongApplicationApproves(t *testing.T) {
	r := NewUnderwritingRecommender(RecommenderConfig{})

	rec := r.Recommend(RecommendationInput{
		Checklist:           checklistWithAll(valueobject.CheckPass),
		Ratios:              strongRatios(),
		Risk:                lowRisk(),
		RequestedAmount:     dec("2000000"),
		RequestedInstrument: valueobject.ContractTypeIjarah,
		YearsInOperation:    5,
	})

	assert.True(t, rec.Decision.Equal(valueobject.DecisionApprove), "decision: %s", rec.Decision)
	assert.True(t, rec.CompositeScore.Equal(dec("100")), "composite: %s", rec.CompositeScore)
	assert.True(t, strings.HasPrefix(rec.Reasoning, "APPROVE:"), "reasoning: %s", rec.Reasoning)
	assert.Empty(t, rec.Concerns)
	assert.Contains(t, rec.Strengths, "Full Shariah compliance confirmed")
	assert.True(t, rec.RecommendedRate.Equal(rateLowRisk))
	assert.Equal(t, 24, rec.RecommendedTermMonths)
	assert.True(t, rec.RecommendedAmount.Equal(dec("2000000")))
}

func TestRecommend_ShariahFailureRejectsUnconditionally(t *testing.T) {
	r := NewUnderwritingRecommender(RecommenderConfig{})

	// Everything else is perfect; the hard gate must still reject.
	cl := checklistWithAll(valueobject.CheckPass).
		Set(valueobject.CategoryShariah, "noInterestBasedOperations", valueobject.CheckFail)

	rec := r.Recommend(RecommendationInput{
		Checklist:           cl,
		Ratios:              strongRatios(),
		Risk:                lowRisk(),
		RequestedAmount:     dec("2000000"),
		RequestedInstrument: valueobject.ContractTypeMurabaha,
		YearsInOperation:    5,
	})

	assert.True(t, rec.Decision.Equal(valueobject.DecisionReject), "decision: %s", rec.Decision)
	assert.True(t, strings.HasPrefix(rec.Reasoning, "REJECT: Business activities not Shariah-compliant."),
		"reasoning: %s", rec.Reasoning)
	assert.Contains(t, rec.Concerns, "Shariah compliance issues identified")
}

func TestRecommend_ConditionalApproveAddsQuarterlyReview(t *testing.T) {
	r := NewUnderwritingRecommender(RecommenderConfig{})

	// Composite 100*0.3 + 40*0.7 = 58: inside the conditional band.
	rec := r.Recommend(RecommendationInput{
		Checklist: checklistWithAll(valueobject.CheckPass),
		Ratios: model.FinancialRatios{
			CurrentRatio: dec("1.2"), DebtToEquity: dec("1.5"),
			ReturnOnAssets: dec("4"), ReturnOnEquity: dec("8"),
			ProfitMargin: dec("8"), OperatingMargin: dec("12"),
		},
		Risk:                model.RiskAssessment{Score: dec("40"), RiskTier: valueobject.RiskTierHigh, CreditRating: "C+"},
		RequestedAmount:     dec("1000000"),
		RequestedInstrument: valueobject.ContractTypeMurabaha,
		YearsInOperation:    4,
	})

	assert.True(t, rec.Decision.Equal(valueobject.DecisionConditionalApprove), "decision: %s", rec.Decision)
	assert.True(t, rec.CompositeScore.Equal(dec("58")), "composite: %s", rec.CompositeScore)
	assert.True(t, strings.HasPrefix(rec.Reasoning, "CONDITIONAL APPROVE:"), "reasoning: %s", rec.Reasoning)
	assert.Contains(t, rec.Conditions, "Regular quarterly reviews for first 12 months")
}

func TestRecommend_MidScoreRequestsMoreInfo(t *testing.T) {
	r := NewUnderwritingRecommender(RecommenderConfig{})

	// Half-completed checklist: pass half the checks, leave the rest unknown.
	cl := valueobject.NewChecklist()
	flip := true
	for cat, checks := range cl {
		for name := range checks {
			if flip {
				cl = cl.Set(cat, name, valueobject.CheckPass)
			}
			flip = !flip
		}
	}

	rec := r.Recommend(RecommendationInput{
		Checklist: cl,
		Ratios: model.FinancialRatios{
			CurrentRatio: dec("1.2"), DebtToEquity: dec("1.5"),
			ReturnOnAssets: dec("4"), ReturnOnEquity: dec("8"),
			ProfitMargin: dec("8"), OperatingMargin: dec("12"),
		},
		Risk:                model.RiskAssessment{Score: dec("30"), RiskTier: valueobject.RiskTierHigh, CreditRating: "C"},
		RequestedAmount:     dec("1000000"),
		RequestedInstrument: valueobject.ContractTypeMurabaha,
		YearsInOperation:    4,
	})

	assert.True(t, rec.Decision.Equal(valueobject.DecisionRequestInfo), "decision: %s", rec.Decision)
	assert.Contains(t, rec.Conditions, "Complete all due diligence items")
	assert.Contains(t, rec.Conditions, "Provide additional financial documentation")
}

func TestRecommend_WeakApplicationRejects(t *testing.T) {
	r := NewUnderwritingRecommender(RecommenderConfig{})

	rec := r.Recommend(RecommendationInput{
		Checklist:           checklistWithAll(valueobject.CheckUnknown),
		Ratios:              model.FinancialRatios{},
		Risk:                model.RiskAssessment{Score: dec("20"), RiskTier: valueobject.RiskTierHigh, CreditRating: "D"},
		RequestedAmount:     dec("1000000"),
		RequestedInstrument: valueobject.ContractTypeMurabaha,
		YearsInOperation:    4,
	})

	assert.True(t, rec.Decision.Equal(valueobject.DecisionReject), "decision: %s", rec.Decision)
	assert.True(t, strings.HasPrefix(rec.Reasoning, "REJECT: High risk with insufficient mitigation"),
		"reasoning: %s", rec.Reasoning)
}

func TestRecommend_HighRiskLargeAmountIsCapped(t *testing.T) {
	r := NewUnderwritingRecommender(RecommenderConfig{})

	rec := r.Recommend(RecommendationInput{
		Checklist:           checklistWithAll(valueobject.CheckPass),
		Ratios:              model.FinancialRatios{CurrentRatio: dec("1.2"), DebtToEquity: dec("1.5"), ReturnOnEquity: dec("8"), ProfitMargin: dec("8")},
		Risk:                highRisk(),
		RequestedAmount:     dec("10000000"),
		RequestedInstrument: valueobject.ContractTypeMurabaha,
		YearsInOperation:    4,
	})

	assert.True(t, rec.RecommendedAmount.Equal(dec("3000000")), "amount: %s", rec.RecommendedAmount)

	found := false
	for _, c := range rec.Conditions {
		if strings.Contains(c, "Reduce initial financing") {
			found = true
		}
	}
	assert.True(t, found, "expected a reduction condition, got %v", rec.Conditions)
}

func TestRecommend_HighRiskBelowCeilingKeepsRequestedAmount(t *testing.T) {
	r := NewUnderwritingRecommender(RecommenderConfig{})

	rec := r.Recommend(RecommendationInput{
		Checklist:           checklistWithAll(valueobject.CheckPass),
		Ratios:              strongRatios(),
		Risk:                highRisk(),
		RequestedAmount:     dec("4000000"),
		RequestedInstrument: valueobject.ContractTypeMurabaha,
		YearsInOperation:    4,
	})

	assert.True(t, rec.RecommendedAmount.Equal(dec("4000000")), "amount: %s", rec.RecommendedAmount)
}

func TestRecommend_InstrumentSuggestion(t *testing.T) {
	r := NewUnderwritingRecommender(RecommenderConfig{})

	tests := []struct {
		name       string
		ratios     model.FinancialRatios
		years      int
		instrument valueobject.ContractType
	}{
		{
			name:       "strong financials suggest murabaha",
			ratios:     strongRatios(),
			years:      1,
			instrument: valueobject.ContractTypeMurabaha,
		},
		{
			name: "established profitable business suggests musharakah",
			ratios: model.FinancialRatios{
				CurrentRatio: dec("1.2"), DebtToEquity: dec("1.5"),
				ReturnOnEquity: dec("14"), ProfitMargin: dec("8"),
			},
			years:      5,
			instrument: valueobject.ContractTypeMusharakah,
		},
		{
			name: "young business suggests mudarabah",
			ratios: model.FinancialRatios{
				CurrentRatio: dec("1.2"), DebtToEquity: dec("1.5"),
				ReturnOnEquity: dec("8"), ProfitMargin: dec("8"),
			},
			years:      1,
			instrument: valueobject.ContractTypeMudarabah,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := r.Recommend(RecommendationInput{
				Checklist:           checklistWithAll(valueobject.CheckPass),
				Ratios:              tt.ratios,
				Risk:                lowRisk(),
				RequestedAmount:     dec("1000000"),
				RequestedInstrument: valueobject.ContractTypeIjarah,
				YearsInOperation:    tt.years,
			})
			assert.True(t, rec.RecommendedInstrument.Equal(tt.instrument),
				"instrument: %s", rec.RecommendedInstrument)
		})
	}
}

func TestRecommend_LegalFailureAddsConditionButNotReject(t *testing.T) {
	r := NewUnderwritingRecommender(RecommenderConfig{})

	cl := checklistWithAll(valueobject.CheckPass).
		Set(valueobject.CategoryLegal, "taxComplianceConfirmed", valueobject.CheckFail)

	rec := r.Recommend(RecommendationInput{
		Checklist:           cl,
		Ratios:              strongRatios(),
		Risk:                lowRisk(),
		RequestedAmount:     dec("1000000"),
		RequestedInstrument: valueobject.ContractTypeMurabaha,
		YearsInOperation:    5,
	})

	require.False(t, rec.Decision.Equal(valueobject.DecisionReject), "legal failure alone must not hard-reject")
	assert.Contains(t, rec.Concerns, "Legal compliance deficiencies found")
	assert.Contains(t, rec.Conditions, "Resolve all legal and regulatory issues before disbursement")
}

func TestRecommend_Idempotent(t *testing.T) {
	r := NewUnderwritingRecommender(RecommenderConfig{})

	in := RecommendationInput{
		Checklist:           checklistWithAll(valueobject.CheckPass),
		Ratios:              strongRatios(),
		Risk:                lowRisk(),
		RequestedAmount:     dec("2000000"),
		RequestedInstrument: valueobject.ContractTypeMurabaha,
		YearsInOperation:    5,
	}

	first := r.Recommend(in)
	second := r.Recommend(in)

	assert.True(t, first.Decision.Equal(second.Decision))
	assert.True(t, first.CompositeScore.Equal(second.CompositeScore))
	assert.Equal(t, first.Reasoning, second.Reasoning)
	assert.Equal(t, first.Conditions, second.Conditions)
	assert.Equal(t, first.Strengths, second.Strengths)
	assert.Equal(t, first.Concerns, second.Concerns)
}
