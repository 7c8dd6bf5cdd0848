package model

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/amanafinance/amana/internal/domain/valueobject"
	"github.com/amanafinance/amana/pkg/money"
)

// ---------------------------------------------------------------------------
// Financial analysis records
// ---------------------------------------------------------------------------

// FinancialInputs are the raw balance-sheet and income-statement figures an
// evaluation starts from. All figures must be non-negative; absent figures
// default to zero and the affected ratios resolve to zero.
type FinancialInputs struct {
	CurrentAssets      decimal.Decimal
	CurrentLiabilities decimal.Decimal
	TotalAssets        decimal.Decimal
	TotalLiabilities   decimal.Decimal
	TotalEquity        decimal.Decimal
	Revenue            decimal.Decimal
	NetIncome          decimal.Decimal
	OperatingIncome    decimal.Decimal
	Inventory          decimal.Decimal
	CostOfGoodsSold    decimal.Decimal
}

// Validate rejects negative inputs. Zero is always acceptable.
func (in FinancialInputs) Validate() error {
	fields := []struct {
		name  string
		value decimal.Decimal
	}{
		{"current assets", in.CurrentAssets},
		{"current liabilities", in.CurrentLiabilities},
		{"total assets", in.TotalAssets},
		{"total liabilities", in.TotalLiabilities},
		{"total equity", in.TotalEquity},
		{"revenue", in.Revenue},
		{"net income", in.NetIncome},
		{"operating income", in.OperatingIncome},
		{"inventory", in.Inventory},
		{"cost of goods sold", in.CostOfGoodsSold},
	}
	for _, f := range fields {
		if f.value.IsNegative() {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidInput, f.name)
		}
	}
	return nil
}

// FinancialRatios are the seven derived ratios. Every division is guarded:
// a zero denominator yields a zero ratio, never an error. The margin and
// return ratios are percentages; the others are plain multiples.
type FinancialRatios struct {
	CurrentRatio      decimal.Decimal
	DebtToEquity      decimal.Decimal
	ReturnOnAssets    decimal.Decimal
	ReturnOnEquity    decimal.Decimal
	ProfitMargin      decimal.Decimal
	OperatingMargin   decimal.Decimal
	InventoryTurnover decimal.Decimal
}

// RiskAssessment is the scored outcome of a ratio analysis.
type RiskAssessment struct {
	Score        decimal.Decimal // 0..100
	RiskTier     valueobject.RiskTier
	CreditRating string
}

// Recommendation is the produced underwriting advice. It is a fresh value on
// every run, never a mutation of a prior recommendation.
type Recommendation struct {
	Decision              valueobject.Decision
	CompositeScore        decimal.Decimal
	Reasoning             string
	Strengths             []string
	Concerns              []string
	Conditions            []string
	RecommendedInstrument valueobject.ContractType
	RecommendedRate       money.Percent
	RecommendedTermMonths int
	RecommendedAmount     decimal.Decimal
}
