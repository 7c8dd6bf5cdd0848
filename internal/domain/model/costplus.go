package model

import (
	"fmt"

	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Murabaha (cost-plus) schedule and settlement arithmetic
// ---------------------------------------------------------------------------

// GenerateCostPlusSchedule computes the equal-installment repayment schedule
// for cost-plus terms.
//
// Each of the N installments is sellingPrice / N, split into its principal
// and mark-up components in the same straight-line proportion. There is no
// compounding: the mark-up is a disclosed fixed amount, not an interest rate.
// The first due date is the contract date plus the deferment period; later
// dates step by the installment frequency. The final installment absorbs the
// rounding remainder so that the schedule reconstructs the selling price,
// cost price, and profit amount exactly.
func GenerateCostPlusSchedule(terms CostPlusTerms, startDate time.Time) ([]PaymentScheduleEntry, error) {
	terms, err := terms.Normalize()
	if err != nil {
		return nil, err
	}
	if err := terms.Validate(); err != nil {
		return nil, err
	}

	n := terms.NumberOfInstallments
	nDec := decimal.NewFromInt(int64(n))
	sellingPrice := terms.SellingPrice()

	perPrincipal := terms.CostPrice.Div(nDec).Round(2)
	perProfit := terms.ProfitAmount.Div(nDec).Round(2)

	schedule := make([]PaymentScheduleEntry, 0, n)
	remaining := sellingPrice
	cumulative := decimal.Zero

	dueDate := startDate.AddDate(0, terms.DefermentPeriodMonths, 0)
	stepMonths := terms.InstallmentFrequency.MonthsPerPeriod()

	for period := 1; period <= n; period++ {
		if period > 1 {
			dueDate = dueDate.AddDate(0, stepMonths, 0)
		}

		principal := perPrincipal
		profit := perProfit

		// Last period: absorb rounding so the totals reconstruct exactly.
		if period == n {
			nMinusOne := decimal.NewFromInt(int64(n - 1))
			principal = terms.CostPrice.Sub(perPrincipal.Mul(nMinusOne))
			profit = terms.ProfitAmount.Sub(perProfit.Mul(nMinusOne))
		}

		total := principal.Add(profit)
		remaining = remaining.Sub(total)
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}
		cumulative = cumulative.Add(total)

		schedule = append(schedule, PaymentScheduleEntry{
			Period:           period,
			DueDate:          dueDate,
			Principal:        principal,
			Profit:           profit,
			Total:            total,
			RemainingBalance: remaining,
			CumulativeAmount: cumulative,
		})
	}

	return schedule, nil
}

// EarlySettlement is the payoff quote for closing a cost-plus contract
// before maturity. The discount applies to the remaining mark-up only,
// never the principal.
type EarlySettlement struct {
	RemainingPrincipal decimal.Decimal
	RemainingProfit    decimal.Decimal
	Discount           decimal.Decimal
	SettlementAmount   decimal.Decimal
}

// CostPlusEarlySettlement quotes the settlement amount after the given
// number of installments have been paid.
func CostPlusEarlySettlement(terms CostPlusTerms, paidInstallments int) (EarlySettlement, error) {
	terms, err := terms.Normalize()
	if err != nil {
		return EarlySettlement{}, err
	}
	if err := terms.Validate(); err != nil {
		return EarlySettlement{}, err
	}
	if paidInstallments < 0 {
		return EarlySettlement{}, fmt.Errorf("%w: paid installments must not be negative", ErrInvalidInput)
	}
	if paidInstallments >= terms.NumberOfInstallments {
		return EarlySettlement{}, fmt.Errorf("%w: %d of %d installments already paid, nothing to settle",
			ErrStateInconsistency, paidInstallments, terms.NumberOfInstallments)
	}

	nDec := decimal.NewFromInt(int64(terms.NumberOfInstallments))
	remainingDec := decimal.NewFromInt(int64(terms.NumberOfInstallments - paidInstallments))

	remainingPrincipal := terms.CostPrice.Mul(remainingDec).Div(nDec).Round(2)
	remainingProfit := terms.ProfitAmount.Mul(remainingDec).Div(nDec).Round(2)
	discount := terms.EarlySettlementDiscountPct.Of(remainingProfit).Round(2)

	return EarlySettlement{
		RemainingPrincipal: remainingPrincipal,
		RemainingProfit:    remainingProfit,
		Discount:           discount,
		SettlementAmount:   remainingPrincipal.Add(remainingProfit).Sub(discount),
	}, nil
}

// CostPlusMetricsResult summarises a cost-plus contract for disclosure.
// The APR figure annualizes the mark-up over the tenor; it is informational
// only and plays no part in the amortization itself.
type CostPlusMetricsResult struct {
	SellingPrice decimal.Decimal
	Markup       decimal.Decimal
	MarkupRate   decimal.Decimal
	APR          decimal.Decimal
	TenorMonths  int
}

// CostPlusMetrics computes disclosure metrics for cost-plus terms.
func CostPlusMetrics(terms CostPlusTerms) (CostPlusMetricsResult, error) {
	terms, err := terms.Normalize()
	if err != nil {
		return CostPlusMetricsResult{}, err
	}
	if err := terms.Validate(); err != nil {
		return CostPlusMetricsResult{}, err
	}

	markup := terms.ProfitAmount
	tenor := terms.TenorMonths()

	markupRate := decimal.Zero
	apr := decimal.Zero
	if terms.CostPrice.IsPositive() {
		hundred := decimal.NewFromInt(100)
		markupRate = markup.Div(terms.CostPrice).Mul(hundred)
		if tenor > 0 {
			monthlyRate := markup.Div(terms.CostPrice).Div(decimal.NewFromInt(int64(tenor)))
			apr = monthlyRate.Mul(decimal.NewFromInt(12)).Mul(hundred)
		}
	}

	return CostPlusMetricsResult{
		SellingPrice: terms.SellingPrice(),
		Markup:       markup,
		MarkupRate:   markupRate.Round(2),
		APR:          apr.Round(2),
		TenorMonths:  tenor,
	}, nil
}
