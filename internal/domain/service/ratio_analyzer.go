package service

import (
	"github.com/shopspring/decimal"

	"github.com/amanafinance/amana/internal/domain/model"
	"github.com/amanafinance/amana/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// RatioAnalyzer – financial ratios, weighted score, risk tier, credit rating
// ---------------------------------------------------------------------------

// scoreBand awards Points when the ratio clears Threshold. Bands are ordered
// best-first and the first band that matches wins.
type scoreBand struct {
	Threshold decimal.Decimal
	Points    int64
}

// ratioScorecard is one scored metric: how to read the bands and how much
// the metric weighs in the 100-point total.
type ratioScorecard struct {
	Name      string
	MaxPoints int64
	// LowerIsBetter flips the comparison: bands match when the ratio is at
	// most the threshold instead of at least.
	LowerIsBetter bool
	Bands         []scoreBand
}

func band(threshold string, points int64) scoreBand {
	return scoreBand{Threshold: decimal.RequireFromString(threshold), Points: points}
}

// scorecards is the full 100-point weighting: liquidity and leverage 20
// points each, the four profitability metrics 15 each. Kept as data so the
// thresholds can be audited and tested row by row.
var scorecards = []ratioScorecard{
	{Name: "current ratio", MaxPoints: 20, Bands: []scoreBand{
		band("2", 20), band("1.5", 15), band("1", 10), band("0.5", 5),
	}},
	{Name: "debt-to-equity", MaxPoints: 20, LowerIsBetter: true, Bands: []scoreBand{
		band("0.5", 20), band("1", 15), band("2", 10), band("3", 5),
	}},
	{Name: "return on assets", MaxPoints: 15, Bands: []scoreBand{
		band("10", 15), band("5", 10), band("2", 5),
	}},
	{Name: "return on equity", MaxPoints: 15, Bands: []scoreBand{
		band("15", 15), band("10", 10), band("5", 5),
	}},
	{Name: "profit margin", MaxPoints: 15, Bands: []scoreBand{
		band("15", 15), band("10", 10), band("5", 5),
	}},
	{Name: "operating margin", MaxPoints: 15, Bands: []scoreBand{
		band("20", 15), band("15", 10), band("10", 5),
	}},
}

// ratingBand maps a minimum score percentage to a risk tier and letter
// rating. Ordered best-first; the catch-all D band has threshold zero.
type ratingBand struct {
	MinScore     decimal.Decimal
	Tier         valueobject.RiskTier
	CreditRating string
}

var ratingBands = []ratingBand{
	{decimal.RequireFromString("85"), valueobject.RiskTierLow, "A+"},
	{decimal.RequireFromString("75"), valueobject.RiskTierLow, "A"},
	{decimal.RequireFromString("65"), valueobject.RiskTierMedium, "B+"},
	{decimal.RequireFromString("55"), valueobject.RiskTierMedium, "B"},
	{decimal.RequireFromString("45"), valueobject.RiskTierMedium, "B-"},
	{decimal.RequireFromString("35"), valueobject.RiskTierHigh, "C+"},
	{decimal.RequireFromString("25"), valueobject.RiskTierHigh, "C"},
	{decimal.Zero, valueobject.RiskTierHigh, "D"},
}

// RatioAnalyzer derives financial ratios from raw figures and scores them
// into a risk tier and credit rating. It is stateless and safe for
// concurrent use.
type RatioAnalyzer struct{}

// NewRatioAnalyzer returns a new analyzer instance.
func NewRatioAnalyzer() *RatioAnalyzer {
	return &RatioAnalyzer{}
}

// ComputeRatios derives the seven standard ratios, rounded to two places.
func (a *RatioAnalyzer) ComputeRatios(in model.FinancialInputs) (model.FinancialRatios, error) {
	if err := in.Validate(); err != nil {
		return model.FinancialRatios{}, err
	}

	hundred := decimal.NewFromInt(100)
	return model.FinancialRatios{
		CurrentRatio:      guardedDiv(in.CurrentAssets, in.CurrentLiabilities).Round(2),
		DebtToEquity:      guardedDiv(in.TotalLiabilities, in.TotalEquity).Round(2),
		ReturnOnAssets:    guardedDiv(in.NetIncome, in.TotalAssets).Mul(hundred).Round(2),
		ReturnOnEquity:    guardedDiv(in.NetIncome, in.TotalEquity).Mul(hundred).Round(2),
		ProfitMargin:      guardedDiv(in.NetIncome, in.Revenue).Mul(hundred).Round(2),
		OperatingMargin:   guardedDiv(in.OperatingIncome, in.Revenue).Mul(hundred).Round(2),
		InventoryTurnover: guardedDiv(in.CostOfGoodsSold, in.Inventory).Round(2),
	}, nil
}

// Score walks every scorecard, sums the awarded points, and maps the
// resulting percentage through the rating bands.
func (a *RatioAnalyzer) Score(ratios model.FinancialRatios) model.RiskAssessment {
	var score, maxScore int64
	for _, card := range scorecards {
		maxScore += card.MaxPoints
		score += card.score(ratioValue(ratios, card.Name))
	}

	percentage := decimal.Zero
	if maxScore > 0 {
		percentage = decimal.NewFromInt(score).
			Div(decimal.NewFromInt(maxScore)).
			Mul(decimal.NewFromInt(100)).Round(1)
	}

	for _, b := range ratingBands {
		if percentage.GreaterThanOrEqual(b.MinScore) {
			return model.RiskAssessment{Score: percentage, RiskTier: b.Tier, CreditRating: b.CreditRating}
		}
	}
	last := ratingBands[len(ratingBands)-1]
	return model.RiskAssessment{Score: percentage, RiskTier: last.Tier, CreditRating: last.CreditRating}
}

// Analyze is the full pipeline: derive ratios, then score them.
func (a *RatioAnalyzer) Analyze(in model.FinancialInputs) (model.FinancialRatios, model.RiskAssessment, error) {
	ratios, err := a.ComputeRatios(in)
	if err != nil {
		return model.FinancialRatios{}, model.RiskAssessment{}, err
	}
	return ratios, a.Score(ratios), nil
}

func (c ratioScorecard) score(value decimal.Decimal) int64 {
	for _, b := range c.Bands {
		if c.LowerIsBetter {
			if value.LessThanOrEqual(b.Threshold) {
				return b.Points
			}
		} else if value.GreaterThanOrEqual(b.Threshold) {
			return b.Points
		}
	}
	return 0
}

// ratioValue resolves a scorecard name to its ratio. The names and cards are
// package-private and kept in sync by the scorecard tests.
func ratioValue(r model.FinancialRatios, name string) decimal.Decimal {
	switch name {
	case "current ratio":
		return r.CurrentRatio
	case "debt-to-equity":
		return r.DebtToEquity
	case "return on assets":
		return r.ReturnOnAssets
	case "return on equity":
		return r.ReturnOnEquity
	case "profit margin":
		return r.ProfitMargin
	case "operating margin":
		return r.OperatingMargin
	default:
		return decimal.Zero
	}
}

// guardedDiv divides with an explicit zero-denominator guard resolving to
// zero. Ratio arithmetic never produces NaN or infinity.
func guardedDiv(numerator, denominator decimal.Decimal) decimal.Decimal {
	if denominator.IsZero() {
		return decimal.Zero
	}
	return numerator.Div(denominator)
}
