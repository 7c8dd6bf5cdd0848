package postgres

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/amanafinance/amana/internal/domain/model"
	"github.com/amanafinance/amana/internal/domain/valueobject"
	"github.com/amanafinance/amana/pkg/money"
)

// JSONB persistence records. The domain records carry value objects; these
// flatten them to plain JSON so the stored shape stays stable even if the
// domain types move.

type financialsRecord struct {
	CurrentAssets      decimal.Decimal `json:"current_assets"`
	CurrentLiabilities decimal.Decimal `json:"current_liabilities"`
	TotalAssets        decimal.Decimal `json:"total_assets"`
	TotalLiabilities   decimal.Decimal `json:"total_liabilities"`
	TotalEquity        decimal.Decimal `json:"total_equity"`
	Revenue            decimal.Decimal `json:"revenue"`
	NetIncome          decimal.Decimal `json:"net_income"`
	OperatingIncome    decimal.Decimal `json:"operating_income"`
	Inventory          decimal.Decimal `json:"inventory"`
	CostOfGoodsSold    decimal.Decimal `json:"cost_of_goods_sold"`
}

type ratiosRecord struct {
	CurrentRatio      decimal.Decimal `json:"current_ratio"`
	DebtToEquity      decimal.Decimal `json:"debt_to_equity"`
	ReturnOnAssets    decimal.Decimal `json:"return_on_assets"`
	ReturnOnEquity    decimal.Decimal `json:"return_on_equity"`
	ProfitMargin      decimal.Decimal `json:"profit_margin"`
	OperatingMargin   decimal.Decimal `json:"operating_margin"`
	InventoryTurnover decimal.Decimal `json:"inventory_turnover"`
}

type riskRecord struct {
	Score        decimal.Decimal `json:"score"`
	RiskTier     string          `json:"risk_tier"`
	CreditRating string          `json:"credit_rating"`
}

type recommendationRecord struct {
	Decision              string          `json:"decision"`
	CompositeScore        decimal.Decimal `json:"composite_score"`
	Reasoning             string          `json:"reasoning"`
	Strengths             []string        `json:"strengths,omitempty"`
	Concerns              []string        `json:"concerns,omitempty"`
	Conditions            []string        `json:"conditions,omitempty"`
	RecommendedInstrument string          `json:"recommended_instrument"`
	RecommendedRate       decimal.Decimal `json:"recommended_rate"`
	RecommendedTermMonths int             `json:"recommended_term_months"`
	RecommendedAmount     decimal.Decimal `json:"recommended_amount"`
}

func marshalFinancials(in model.FinancialInputs) ([]byte, error) {
	data, err := json.Marshal(financialsRecord{
		CurrentAssets:      in.CurrentAssets,
		CurrentLiabilities: in.CurrentLiabilities,
		TotalAssets:        in.TotalAssets,
		TotalLiabilities:   in.TotalLiabilities,
		TotalEquity:        in.TotalEquity,
		Revenue:            in.Revenue,
		NetIncome:          in.NetIncome,
		OperatingIncome:    in.OperatingIncome,
		Inventory:          in.Inventory,
		CostOfGoodsSold:    in.CostOfGoodsSold,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal financials: %w", err)
	}
	return data, nil
}

func unmarshalFinancials(data []byte) (model.FinancialInputs, error) {
	var rec financialsRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return model.FinancialInputs{}, fmt.Errorf("unmarshal financials: %w", err)
	}
	return model.FinancialInputs{
		CurrentAssets:      rec.CurrentAssets,
		CurrentLiabilities: rec.CurrentLiabilities,
		TotalAssets:        rec.TotalAssets,
		TotalLiabilities:   rec.TotalLiabilities,
		TotalEquity:        rec.TotalEquity,
		Revenue:            rec.Revenue,
		NetIncome:          rec.NetIncome,
		OperatingIncome:    rec.OperatingIncome,
		Inventory:          rec.Inventory,
		CostOfGoodsSold:    rec.CostOfGoodsSold,
	}, nil
}

func marshalChecklist(cl valueobject.Checklist) ([]byte, error) {
	flat := make(map[string]map[string]string, len(cl))
	for category, checks := range cl {
		m := make(map[string]string, len(checks))
		for check, status := range checks {
			m[check] = status.String()
		}
		flat[string(category)] = m
	}
	data, err := json.Marshal(flat)
	if err != nil {
		return nil, fmt.Errorf("marshal checklist: %w", err)
	}
	return data, nil
}

func unmarshalChecklist(data []byte) (valueobject.Checklist, error) {
	var flat map[string]map[string]string
	if err := json.Unmarshal(data, &flat); err != nil {
		return nil, fmt.Errorf("unmarshal checklist: %w", err)
	}
	cl := make(valueobject.Checklist, len(flat))
	for category, checks := range flat {
		m := make(map[string]valueobject.CheckStatus, len(checks))
		for check, raw := range checks {
			status, err := valueobject.NewCheckStatus(raw)
			if err != nil {
				return nil, fmt.Errorf("parse checklist %s/%s: %w", category, check, err)
			}
			m[check] = status
		}
		cl[valueobject.ChecklistCategory(category)] = m
	}
	return cl, nil
}

func marshalRatios(r model.FinancialRatios) ([]byte, error) {
	data, err := json.Marshal(ratiosRecord{
		CurrentRatio:      r.CurrentRatio,
		DebtToEquity:      r.DebtToEquity,
		ReturnOnAssets:    r.ReturnOnAssets,
		ReturnOnEquity:    r.ReturnOnEquity,
		ProfitMargin:      r.ProfitMargin,
		OperatingMargin:   r.OperatingMargin,
		InventoryTurnover: r.InventoryTurnover,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal ratios: %w", err)
	}
	return data, nil
}

func unmarshalRatios(data []byte) (model.FinancialRatios, error) {
	var rec ratiosRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return model.FinancialRatios{}, fmt.Errorf("unmarshal ratios: %w", err)
	}
	return model.FinancialRatios{
		CurrentRatio:      rec.CurrentRatio,
		DebtToEquity:      rec.DebtToEquity,
		ReturnOnAssets:    rec.ReturnOnAssets,
		ReturnOnEquity:    rec.ReturnOnEquity,
		ProfitMargin:      rec.ProfitMargin,
		OperatingMargin:   rec.OperatingMargin,
		InventoryTurnover: rec.InventoryTurnover,
	}, nil
}

func marshalRisk(r model.RiskAssessment) ([]byte, error) {
	data, err := json.Marshal(riskRecord{
		Score:        r.Score,
		RiskTier:     r.RiskTier.String(),
		CreditRating: r.CreditRating,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal risk: %w", err)
	}
	return data, nil
}

func unmarshalRisk(data []byte) (model.RiskAssessment, error) {
	var rec riskRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return model.RiskAssessment{}, fmt.Errorf("unmarshal risk: %w", err)
	}
	out := model.RiskAssessment{Score: rec.Score, CreditRating: rec.CreditRating}
	// Pending evaluations have no tier yet.
	if rec.RiskTier != "" {
		tier, err := valueobject.NewRiskTier(rec.RiskTier)
		if err != nil {
			return model.RiskAssessment{}, fmt.Errorf("parse risk tier: %w", err)
		}
		out.RiskTier = tier
	}
	return out, nil
}

func marshalRecommendation(r model.Recommendation) ([]byte, error) {
	data, err := json.Marshal(recommendationRecord{
		Decision:              r.Decision.String(),
		CompositeScore:        r.CompositeScore,
		Reasoning:             r.Reasoning,
		Strengths:             r.Strengths,
		Concerns:              r.Concerns,
		Conditions:            r.Conditions,
		RecommendedInstrument: r.RecommendedInstrument.String(),
		RecommendedRate:       r.RecommendedRate.Value(),
		RecommendedTermMonths: r.RecommendedTermMonths,
		RecommendedAmount:     r.RecommendedAmount,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal recommendation: %w", err)
	}
	return data, nil
}

func unmarshalRecommendation(data []byte) (model.Recommendation, error) {
	var rec recommendationRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return model.Recommendation{}, fmt.Errorf("unmarshal recommendation: %w", err)
	}
	out := model.Recommendation{
		CompositeScore:        rec.CompositeScore,
		Reasoning:             rec.Reasoning,
		Strengths:             rec.Strengths,
		Concerns:              rec.Concerns,
		Conditions:            rec.Conditions,
		RecommendedTermMonths: rec.RecommendedTermMonths,
		RecommendedAmount:     rec.RecommendedAmount,
	}
	if rec.Decision != "" {
		decision, err := valueobject.NewDecision(rec.Decision)
		if err != nil {
			return model.Recommendation{}, fmt.Errorf("parse decision: %w", err)
		}
		out.Decision = decision
	}
	if rec.RecommendedInstrument != "" {
		instrument, err := valueobject.NewContractType(rec.RecommendedInstrument)
		if err != nil {
			return model.Recommendation{}, fmt.Errorf("parse recommended instrument: %w", err)
		}
		out.RecommendedInstrument = instrument
	}
	if !rec.RecommendedRate.IsZero() {
		rate, err := money.NewPercent(rec.RecommendedRate)
		if err != nil {
			return model.Recommendation{}, fmt.Errorf("parse recommended rate: %w", err)
		}
		out.RecommendedRate = rate
	}
	return out, nil
}
