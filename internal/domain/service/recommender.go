package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/amanafinance/amana/internal/domain/model"
	"github.com/amanafinance/amana/internal/domain/valueobject"
	"github.com/amanafinance/amana/pkg/money"
)

// ---------------------------------------------------------------------------
// UnderwritingRecommender – deterministic rule chain over checklist + ratios
// ---------------------------------------------------------------------------

// RecommenderConfig carries the tunable amounts of the rule chain. The rule
// thresholds themselves are fixed policy and not configurable.
type RecommenderConfig struct {
	// HighRiskAmountCeiling is the requested amount above which a high-risk
	// applicant's recommended amount is reduced.
	HighRiskAmountCeiling decimal.Decimal
	// HighRiskAmountCap is the reduced amount applied past the ceiling.
	HighRiskAmountCap decimal.Decimal
}

// DefaultRecommenderConfig returns the standard platform limits.
func DefaultRecommenderConfig() RecommenderConfig {
	return RecommenderConfig{
		HighRiskAmountCeiling: decimal.NewFromInt(5_000_000),
		HighRiskAmountCap:     decimal.NewFromInt(3_000_000),
	}
}

// RecommendationInput gathers everything the rule chain consumes. Ratios and
// Risk normally come from RatioAnalyzer.Analyze over the same application.
type RecommendationInput struct {
	Checklist           valueobject.Checklist
	Ratios              model.FinancialRatios
	Risk                model.RiskAssessment
	RequestedAmount     decimal.Decimal
	RequestedInstrument valueobject.ContractType
	YearsInOperation    int
}

// UnderwritingRecommender runs the deterministic recommendation rule chain.
// It is stateless apart from its config and safe for concurrent use.
type UnderwritingRecommender struct {
	cfg RecommenderConfig
}

// NewUnderwritingRecommender builds a recommender with the given config.
// Zero config values fall back to the defaults.
func NewUnderwritingRecommender(cfg RecommenderConfig) *UnderwritingRecommender {
	def := DefaultRecommenderConfig()
	if cfg.HighRiskAmountCeiling.IsZero() {
		cfg.HighRiskAmountCeiling = def.HighRiskAmountCeiling
	}
	if cfg.HighRiskAmountCap.IsZero() {
		cfg.HighRiskAmountCap = def.HighRiskAmountCap
	}
	return &UnderwritingRecommender{cfg: cfg}
}

// Suggested profit rates per risk tier, percent per annum.
var (
	rateLowRisk    = money.MustPercent(10)
	rateMediumRisk = money.MustPercent(12)
	rateHighRisk   = money.MustPercent(15)
)

// Recommend evaluates the rule chain in fixed order: due-diligence and ratio
// annotations, risk-tier pricing, instrument suggestion, the Shariah hard
// gate, the legal gate, then the composite-score decision. A Shariah failure
// rejects unconditionally and short-circuits the score gates.
func (r *UnderwritingRecommender) Recommend(in RecommendationInput) model.Recommendation {
	var (
		strengths  []string
		concerns   []string
		conditions []string
		reasoning  string
	)

	ddScore := decimal.NewFromFloat(in.Checklist.CompletionScore()).Round(1)

	switch {
	case ddScore.GreaterThanOrEqual(decimal.NewFromInt(80)):
		strengths = append(strengths, fmt.Sprintf("Excellent due diligence completion (%s%%)", ddScore))
	case ddScore.GreaterThanOrEqual(decimal.NewFromInt(60)):
		strengths = append(strengths, fmt.Sprintf("Good due diligence progress (%s%%)", ddScore))
	case ddScore.LessThan(decimal.NewFromInt(40)):
		concerns = append(concerns, fmt.Sprintf("Incomplete due diligence (%s%% completed)", ddScore))
		conditions = append(conditions, "Complete all required due diligence checks before approval")
	}

	ratios := in.Ratios
	if ratios.CurrentRatio.GreaterThanOrEqual(decimal.NewFromInt(2)) {
		strengths = append(strengths, fmt.Sprintf("Strong liquidity position (Current Ratio: %s)", ratios.CurrentRatio))
	} else if ratios.CurrentRatio.LessThan(decimal.NewFromInt(1)) {
		concerns = append(concerns, fmt.Sprintf("Weak liquidity (Current Ratio: %s)", ratios.CurrentRatio))
		conditions = append(conditions, "Require cash flow monitoring and liquidity improvement plan")
	}

	if ratios.DebtToEquity.LessThanOrEqual(decimal.NewFromInt(1)) {
		strengths = append(strengths, fmt.Sprintf("Healthy leverage (Debt-to-Equity: %s)", ratios.DebtToEquity))
	} else if ratios.DebtToEquity.GreaterThan(decimal.NewFromInt(2)) {
		concerns = append(concerns, fmt.Sprintf("High leverage risk (Debt-to-Equity: %s)", ratios.DebtToEquity))
		conditions = append(conditions, "Cap additional debt until ratio improves below 1.5")
	}

	if ratios.ReturnOnEquity.GreaterThanOrEqual(decimal.NewFromInt(15)) {
		strengths = append(strengths, fmt.Sprintf("Excellent profitability (ROE: %s%%)", ratios.ReturnOnEquity))
	} else if ratios.ReturnOnEquity.LessThan(decimal.NewFromInt(5)) {
		concerns = append(concerns, fmt.Sprintf("Low profitability (ROE: %s%%)", ratios.ReturnOnEquity))
	}

	if ratios.ProfitMargin.GreaterThanOrEqual(decimal.NewFromInt(15)) {
		strengths = append(strengths, fmt.Sprintf("Strong profit margins (%s%%)", ratios.ProfitMargin))
	} else if ratios.ProfitMargin.LessThan(decimal.NewFromInt(5)) {
		concerns = append(concerns, fmt.Sprintf("Thin profit margins (%s%%)", ratios.ProfitMargin))
	}

	rate := rateMediumRisk
	termMonths := 18
	switch {
	case in.Risk.RiskTier.Equal(valueobject.RiskTierLow):
		strengths = append(strengths, fmt.Sprintf("Low risk profile (Credit Rating: %s)", in.Risk.CreditRating))
		rate = rateLowRisk
		termMonths = 24
	case in.Risk.RiskTier.Equal(valueobject.RiskTierMedium):
		strengths = append(strengths, fmt.Sprintf("Moderate risk profile (Credit Rating: %s)", in.Risk.CreditRating))
	default:
		concerns = append(concerns, fmt.Sprintf("High risk profile (Credit Rating: %s)", in.Risk.CreditRating))
		rate = rateHighRisk
		termMonths = 12
		conditions = append(conditions, "Require enhanced collateral coverage (minimum 150%)")
		conditions = append(conditions, "Monthly financial reporting and covenant monitoring")
	}

	instrument := in.RequestedInstrument
	switch {
	case ratios.CurrentRatio.GreaterThanOrEqual(decimal.RequireFromString("1.5")) &&
		ratios.DebtToEquity.LessThanOrEqual(decimal.NewFromInt(1)) &&
		ratios.ProfitMargin.GreaterThanOrEqual(decimal.NewFromInt(10)):
		instrument = valueobject.ContractTypeMurabaha
		reasoning += "Murabaha recommended due to strong financial health and stable cash flows. "
	case ratios.ReturnOnEquity.GreaterThanOrEqual(decimal.NewFromInt(12)) && in.YearsInOperation >= 3:
		instrument = valueobject.ContractTypeMusharakah
		reasoning += "Musharakah partnership suitable given established operations and profit track record. "
	case in.YearsInOperation < 2:
		instrument = valueobject.ContractTypeMudarabah
		reasoning += "Mudarabah structure appropriate for newer business with growth potential. "
		conditions = append(conditions, "Platform takes active monitoring role as Rabb-ul-Mal")
	}

	var decision valueobject.Decision
	if in.Checklist.AllPassed(valueobject.CategoryShariah) {
		strengths = append(strengths, "Full Shariah compliance confirmed")
	} else if in.Checklist.HasFailure(valueobject.CategoryShariah) {
		concerns = append(concerns, "Shariah compliance issues identified")
		decision = valueobject.DecisionReject
		reasoning = "REJECT: Business activities not Shariah-compliant. " + reasoning
	}

	if in.Checklist.HasFailure(valueobject.CategoryLegal) {
		concerns = append(concerns, "Legal compliance deficiencies found")
		conditions = append(conditions, "Resolve all legal and regulatory issues before disbursement")
	}

	composite := ddScore.Mul(decimal.RequireFromString("0.3")).
		Add(in.Risk.Score.Mul(decimal.RequireFromString("0.7"))).Round(1)

	if decision.IsZero() {
		switch {
		case composite.GreaterThanOrEqual(decimal.NewFromInt(70)) && len(concerns) <= 2:
			decision = valueobject.DecisionApprove
			reasoning = fmt.Sprintf("APPROVE: Strong overall assessment (%s/100). ", composite.StringFixed(1)) + reasoning
		case composite.GreaterThanOrEqual(decimal.NewFromInt(50)) && len(concerns) <= 4:
			decision = valueobject.DecisionConditionalApprove
			reasoning = fmt.Sprintf("CONDITIONAL APPROVE: Acceptable risk with conditions (%s/100). ", composite.StringFixed(1)) + reasoning
			conditions = append(conditions, "Regular quarterly reviews for first 12 months")
		case composite.GreaterThanOrEqual(decimal.NewFromInt(35)):
			decision = valueobject.DecisionRequestInfo
			reasoning = fmt.Sprintf("REQUEST MORE INFO: Insufficient data for decision (%s/100). ", composite.StringFixed(1)) + reasoning
			conditions = append(conditions, "Complete all due diligence items")
			conditions = append(conditions, "Provide additional financial documentation")
		default:
			decision = valueobject.DecisionReject
			reasoning = fmt.Sprintf("REJECT: High risk with insufficient mitigation (%s/100). ", composite.StringFixed(1)) + reasoning
		}
	}

	amount := in.RequestedAmount
	if in.Risk.RiskTier.Equal(valueobject.RiskTierHigh) && amount.GreaterThan(r.cfg.HighRiskAmountCeiling) {
		amount = decimal.Min(amount, r.cfg.HighRiskAmountCap)
		millions := amount.Div(decimal.NewFromInt(1_000_000)).StringFixed(1)
		conditions = append(conditions, fmt.Sprintf("Reduce initial financing to ₦%sM due to risk profile", millions))
	}

	return model.Recommendation{
		Decision:              decision,
		CompositeScore:        composite,
		Reasoning:             reasoning,
		Strengths:             strengths,
		Concerns:              concerns,
		Conditions:            conditions,
		RecommendedInstrument: instrument,
		RecommendedRate:       rate,
		RecommendedTermMonths: termMonths,
		RecommendedAmount:     amount,
	}
}
