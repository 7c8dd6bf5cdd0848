package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/amanafinance/amana/internal/domain/model"
	"github.com/amanafinance/amana/pkg/money"
)

// ---------------------------------------------------------------------------
// ProfitLossDistributor – domain service for partnership distributions
// ---------------------------------------------------------------------------

// Party tags on distribution shares.
const (
	PartyInvestor = "investor"
	PartyBusiness = "business"
)

// Distribution rules reported on results.
const (
	RuleProfitRatio         = "profit-ratio"
	RuleCapitalProviderOnly = "capital-provider-only"
	RuleCapitalProportion   = "capital-proportion"
)

// PartyShare is one party's cut of a distributed amount.
type PartyShare struct {
	Party      string
	Percentage money.Percent
	Amount     money.Money
}

// ProfitLossResult is the outcome of a profit distribution or loss
// allocation. Approximate is set when the loss rule had to fall back to the
// profit ratio because capital contributions are not modeled.
type ProfitLossResult struct {
	TotalAmount money.Money
	Shares      []PartyShare
	Rule        string
	Approximate bool
	Warnings    []model.Warning
}

// ProfitLossDistributor encapsulates the Shariah distribution rules shared
// by the two partnership archetypes.
type ProfitLossDistributor struct{}

// NewProfitLossDistributor returns a new distributor instance.
func NewProfitLossDistributor() *ProfitLossDistributor {
	return &ProfitLossDistributor{}
}

// DistributeProfit splits a realized profit by the agreed ratio. The two
// shares always reconstruct the total exactly: both are rounded to the cent
// and the rounding remainder is assigned to the larger share.
//
// totalProfit is a magnitude; negative values are rejected.
func (d *ProfitLossDistributor) DistributeProfit(terms model.ContractTerms, totalProfit money.Money) (ProfitLossResult, error) {
	investorShare, counterpartyShare, err := partnershipShares(terms)
	if err != nil {
		return ProfitLossResult{}, err
	}
	if totalProfit.IsNegative() {
		return ProfitLossResult{}, fmt.Errorf("%w: total profit must be a magnitude, got %s",
			model.ErrInvalidInput, totalProfit)
	}

	investorAmount := investorShare.OfMoney(totalProfit).Round(2)
	businessAmount := counterpartyShare.OfMoney(totalProfit).Round(2)

	// Conservation: assign the rounding remainder to the larger share.
	distributed, err := investorAmount.Add(businessAmount)
	if err != nil {
		return ProfitLossResult{}, err
	}
	remainder, err := totalProfit.Subtract(distributed)
	if err != nil {
		return ProfitLossResult{}, err
	}
	if !remainder.IsZero() {
		if investorAmount.GreaterThan(businessAmount) {
			investorAmount, err = investorAmount.Add(remainder)
		} else {
			businessAmount, err = businessAmount.Add(remainder)
		}
		if err != nil {
			return ProfitLossResult{}, err
		}
	}

	return ProfitLossResult{
		TotalAmount: totalProfit,
		Rule:        RuleProfitRatio,
		Shares: []PartyShare{
			{Party: PartyInvestor, Percentage: investorShare, Amount: investorAmount},
			{Party: PartyBusiness, Percentage: counterpartyShare, Amount: businessAmount},
		},
	}, nil
}

// AllocateLoss applies the archetype's loss rule:
//
//   - Silent partnership (Mudarabah): the capital provider bears 100% of the
//     financial loss regardless of the profit ratio; the business loses its
//     effort only. This is the defining rule of the archetype and is not
//     parameterizable.
//   - Joint venture (Musharakah): loss is shared in proportion to capital
//     contributions. When contributions are not modeled the allocation falls
//     back to the investor's profit share and the result is flagged as an
//     approximation with a warning.
//
// totalLoss is a magnitude; negative values are rejected.
func (d *ProfitLossDistributor) AllocateLoss(terms model.ContractTerms, totalLoss money.Money) (ProfitLossResult, error) {
	if err := terms.Validate(); err != nil {
		return ProfitLossResult{}, err
	}
	if totalLoss.IsNegative() {
		return ProfitLossResult{}, fmt.Errorf("%w: total loss must be a magnitude, got %s",
			model.ErrInvalidInput, totalLoss)
	}

	switch {
	case terms.SilentPartnership != nil:
		full := money.MustPercent(100)
		return ProfitLossResult{
			TotalAmount: totalLoss,
			Rule:        RuleCapitalProviderOnly,
			Shares: []PartyShare{
				{Party: PartyInvestor, Percentage: full, Amount: totalLoss},
				{Party: PartyBusiness, Percentage: money.ZeroPercent, Amount: money.Zero(totalLoss.Currency())},
			},
		}, nil

	case terms.JointVenture != nil:
		jv := terms.JointVenture
		if jv.CapitalModeled() {
			totalCapital := jv.InvestorCapital.Add(jv.CounterpartyCapital)
			investorPct, err := money.NewPercent(
				jv.InvestorCapital.Div(totalCapital).Mul(decimal.NewFromInt(100)))
			if err != nil {
				return ProfitLossResult{}, fmt.Errorf("%w: capital proportion: %v", model.ErrInvalidInput, err)
			}
			result, err := splitByRatio(totalLoss, investorPct)
			if err != nil {
				return ProfitLossResult{}, err
			}
			result.Rule = RuleCapitalProportion
			return result, nil
		}

		// Capital contributions unknown: approximate with the profit ratio.
		result, err := splitByRatio(totalLoss, jv.InvestorProfitShare)
		if err != nil {
			return ProfitLossResult{}, err
		}
		result.Rule = RuleProfitRatio
		result.Approximate = true
		result.Warnings = append(result.Warnings, model.Warning(
			"loss allocated by profit ratio because capital contributions are not modeled; review before relying on this split"))
		return result, nil

	default:
		return ProfitLossResult{}, fmt.Errorf("%w: loss allocation applies to partnership contracts only, got %s",
			model.ErrInvalidInput, terms.Type)
	}
}

// partnershipShares extracts and validates the profit-share pair from a
// partnership contract.
func partnershipShares(terms model.ContractTerms) (investor, counterparty money.Percent, err error) {
	if err := terms.Validate(); err != nil {
		return money.Percent{}, money.Percent{}, err
	}
	switch {
	case terms.SilentPartnership != nil:
		return terms.SilentPartnership.InvestorProfitShare, terms.SilentPartnership.CounterpartyProfitShare, nil
	case terms.JointVenture != nil:
		return terms.JointVenture.InvestorProfitShare, terms.JointVenture.CounterpartyProfitShare, nil
	default:
		return money.Percent{}, money.Percent{}, fmt.Errorf(
			"%w: profit distribution applies to partnership contracts only, got %s",
			model.ErrInvalidInput, terms.Type)
	}
}

// splitByRatio divides an amount between the two parties by the investor's
// percentage, conserving the total exactly.
func splitByRatio(total money.Money, investorPct money.Percent) (ProfitLossResult, error) {
	investorAmount := investorPct.OfMoney(total).Round(2)
	businessAmount, err := total.Subtract(investorAmount)
	if err != nil {
		return ProfitLossResult{}, err
	}

	return ProfitLossResult{
		TotalAmount: total,
		Shares: []PartyShare{
			{Party: PartyInvestor, Percentage: investorPct, Amount: investorAmount},
			{Party: PartyBusiness, Percentage: investorPct.Complement(), Amount: businessAmount},
		},
	}, nil
}
