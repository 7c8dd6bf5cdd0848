package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amanafinance/amana/internal/domain/model"
	"github.com/amanafinance/amana/internal/domain/valueobject"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestComputeRatios_StandardFigures(t *testing.T) {
	a := NewRatioAnalyzer()

	ratios, err := a.ComputeRatios(model.FinancialInputs{
		CurrentAssets:      dec("250000"),
		CurrentLiabilities: dec("100000"),
		TotalAssets:        dec("150000"),
		TotalLiabilities:   dec("40000"),
		TotalEquity:        dec("100000"),
		Revenue:            dec("100000"),
		NetIncome:          dec("18000"),
		OperatingIncome:    dec("22000"),
		Inventory:          dec("10000"),
		CostOfGoodsSold:    dec("50000"),
	})
	require.NoError(t, err)

	assert.True(t, ratios.CurrentRatio.Equal(dec("2.5")), "current ratio: %s", ratios.CurrentRatio)
	assert.True(t, ratios.DebtToEquity.Equal(dec("0.4")), "debt-to-equity: %s", ratios.DebtToEquity)
	assert.True(t, ratios.ReturnOnAssets.Equal(dec("12")), "roa: %s", ratios.ReturnOnAssets)
	assert.True(t, ratios.ReturnOnEquity.Equal(dec("18")), "roe: %s", ratios.ReturnOnEquity)
	assert.True(t, ratios.ProfitMargin.Equal(dec("18")), "profit margin: %s", ratios.ProfitMargin)
	assert.True(t, ratios.OperatingMargin.Equal(dec("22")), "operating margin: %s", ratios.OperatingMargin)
	assert.True(t, ratios.InventoryTurnover.Equal(dec("5")), "inventory turnover: %s", ratios.InventoryTurnover)
}

func TestComputeRatios_ZeroDenominatorsResolveToZero(t *testing.T) {
	a := NewRatioAnalyzer()

	ratios, err := a.ComputeRatios(model.FinancialInputs{NetIncome: dec("50000")})
	require.NoError(t, err)

	assert.True(t, ratios.CurrentRatio.IsZero())
	assert.True(t, ratios.DebtToEquity.IsZero())
	assert.True(t, ratios.ReturnOnAssets.IsZero())
	assert.True(t, ratios.ReturnOnEquity.IsZero())
	assert.True(t, ratios.ProfitMargin.IsZero())
	assert.True(t, ratios.OperatingMargin.IsZero())
	assert.True(t, ratios.InventoryTurnover.IsZero())
}

func TestComputeRatios_RejectsNegativeInputs(t *testing.T) {
	a := NewRatioAnalyzer()

	_, err := a.ComputeRatios(model.FinancialInputs{TotalAssets: dec("-1")})
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestScore_TopBandYieldsLowRiskAPlus(t *testing.T) {
	a := NewRatioAnalyzer()

	assessment := a.Score(model.FinancialRatios{
		CurrentRatio:    dec("2.5"),
		DebtToEquity:    dec("0.4"),
		ReturnOnAssets:  dec("12"),
		ReturnOnEquity:  dec("18"),
		ProfitMargin:    dec("18"),
		OperatingMargin: dec("22"),
	})

	assert.True(t, assessment.Score.Equal(dec("100")), "score: %s", assessment.Score)
	assert.True(t, assessment.RiskTier.Equal(valueobject.RiskTierLow))
	assert.Equal(t, "A+", assessment.CreditRating)
}

func TestScore_AllZeroRatiosStillScoreLeveragePoints(t *testing.T) {
	a := NewRatioAnalyzer()

	// A zero debt-to-equity clears every leverage band, so an empty balance
	// sheet is not an automatic D.
	assessment := a.Score(model.FinancialRatios{})

	assert.True(t, assessment.Score.Equal(dec("20")), "score: %s", assessment.Score)
	assert.True(t, assessment.RiskTier.Equal(valueobject.RiskTierHigh))
	assert.Equal(t, "D", assessment.CreditRating)
}

func TestScore_RatingBandBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		ratios  model.FinancialRatios
		tier    valueobject.RiskTier
		rating  string
		minimum string
	}{
		{
			// 20+20+15+15+15+15 = 100
			name: "all top bands",
			ratios: model.FinancialRatios{
				CurrentRatio: dec("2"), DebtToEquity: dec("0.5"),
				ReturnOnAssets: dec("10"), ReturnOnEquity: dec("15"),
				ProfitMargin: dec("15"), OperatingMargin: dec("20"),
			},
			tier: valueobject.RiskTierLow, rating: "A+", minimum: "85",
		},
		{
			// 15+15+10+10+10+10 = 70
			name: "second bands",
			ratios: model.FinancialRatios{
				CurrentRatio: dec("1.5"), DebtToEquity: dec("1"),
				ReturnOnAssets: dec("5"), ReturnOnEquity: dec("10"),
				ProfitMargin: dec("10"), OperatingMargin: dec("15"),
			},
			tier: valueobject.RiskTierMedium, rating: "B+", minimum: "65",
		},
		{
			// 10+10+5+5+5+5 = 40
			name: "third bands",
			ratios: model.FinancialRatios{
				CurrentRatio: dec("1"), DebtToEquity: dec("2"),
				ReturnOnAssets: dec("2"), ReturnOnEquity: dec("5"),
				ProfitMargin: dec("5"), OperatingMargin: dec("10"),
			},
			tier: valueobject.RiskTierHigh, rating: "C+", minimum: "35",
		},
		{
			// 5+5 = 10
			name: "bottom bands",
			ratios: model.FinancialRatios{
				CurrentRatio: dec("0.5"), DebtToEquity: dec("3"),
				ReturnOnAssets: dec("1"), ReturnOnEquity: dec("1"),
				ProfitMargin: dec("1"), OperatingMargin: dec("1"),
			},
			tier: valueobject.RiskTierHigh, rating: "D", minimum: "0",
		},
	}

	a := NewRatioAnalyzer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assessment := a.Score(tt.ratios)
			assert.True(t, assessment.RiskTier.Equal(tt.tier), "tier: %s", assessment.RiskTier)
			assert.Equal(t, tt.rating, assessment.CreditRating)
			assert.True(t, assessment.Score.GreaterThanOrEqual(dec(tt.minimum)),
				"score %s below band minimum %s", assessment.Score, tt.minimum)
		})
	}
}

func TestScore_MonotonicInEachPositiveRatio(t *testing.T) {
	a := NewRatioAnalyzer()

	base := model.FinancialRatios{
		CurrentRatio: dec("1"), DebtToEquity: dec("1.5"),
		ReturnOnAssets: dec("4"), ReturnOnEquity: dec("8"),
		ProfitMargin: dec("8"), OperatingMargin: dec("12"),
	}
	baseScore := a.Score(base).Score

	improved := []model.FinancialRatios{
		{CurrentRatio: dec("3"), DebtToEquity: base.DebtToEquity, ReturnOnAssets: base.ReturnOnAssets, ReturnOnEquity: base.ReturnOnEquity, ProfitMargin: base.ProfitMargin, OperatingMargin: base.OperatingMargin},
		{CurrentRatio: base.CurrentRatio, DebtToEquity: base.DebtToEquity, ReturnOnAssets: dec("12"), ReturnOnEquity: base.ReturnOnEquity, ProfitMargin: base.ProfitMargin, OperatingMargin: base.OperatingMargin},
		{CurrentRatio: base.CurrentRatio, DebtToEquity: base.DebtToEquity, ReturnOnAssets: base.ReturnOnAssets, ReturnOnEquity: dec("20"), ProfitMargin: base.ProfitMargin, OperatingMargin: base.OperatingMargin},
		{CurrentRatio: base.CurrentRatio, DebtToEquity: base.DebtToEquity, ReturnOnAssets: base.ReturnOnAssets, ReturnOnEquity: base.ReturnOnEquity, ProfitMargin: dec("20"), OperatingMargin: base.OperatingMargin},
		{CurrentRatio: base.CurrentRatio, DebtToEquity: base.DebtToEquity, ReturnOnAssets: base.ReturnOnAssets, ReturnOnEquity: base.ReturnOnEquity, ProfitMargin: base.ProfitMargin, OperatingMargin: dec("25")},
	}

	for i, r := range improved {
		score := a.Score(r).Score
		assert.True(t, score.GreaterThanOrEqual(baseScore),
			"case %d: improving a ratio dropped the score from %s to %s", i, baseScore, score)
	}
}
