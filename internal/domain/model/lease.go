package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Ijarah (lease) schedule and metrics
// ---------------------------------------------------------------------------

// GenerateLeaseSchedule produces one rental row per month of the lease term,
// tracking the cumulative amount collected. The first rental falls due one
// month after the start date.
func GenerateLeaseSchedule(terms LeaseTerms, startDate time.Time) ([]PaymentScheduleEntry, error) {
	if err := terms.Validate(); err != nil {
		return nil, err
	}

	totalRental := terms.TotalRental()
	schedule := make([]PaymentScheduleEntry, 0, terms.LeaseTermMonths)
	cumulative := decimal.Zero

	for period := 1; period <= terms.LeaseTermMonths; period++ {
		cumulative = cumulative.Add(terms.MonthlyRental)

		schedule = append(schedule, PaymentScheduleEntry{
			Period:           period,
			DueDate:          startDate.AddDate(0, period, 0),
			Principal:        terms.MonthlyRental,
			Profit:           decimal.Zero,
			Total:            terms.MonthlyRental,
			RemainingBalance: totalRental.Sub(cumulative),
			CumulativeAmount: cumulative,
		})
	}

	return schedule, nil
}

// LeaseMetricsResult summarises lease economics. The purchase-option fields
// are zero unless the terms include the option.
type LeaseMetricsResult struct {
	TotalRental         decimal.Decimal
	RentalYield         decimal.Decimal // total rental over asset value, %
	MonthlyReturnRate   decimal.Decimal
	PaybackPeriodMonths decimal.Decimal
	TotalCost           decimal.Decimal // rental plus purchase price
	AssetMarkupPct      decimal.Decimal
}

// LeaseMetrics computes yield, payback, and lease-to-own metrics. Divisions
// with a zero denominator resolve to zero.
func LeaseMetrics(terms LeaseTerms) (LeaseMetricsResult, error) {
	if err := terms.Validate(); err != nil {
		return LeaseMetricsResult{}, err
	}

	hundred := decimal.NewFromInt(100)
	totalRental := terms.TotalRental()

	result := LeaseMetricsResult{TotalRental: totalRental}

	if terms.AssetValue.IsPositive() {
		result.RentalYield = totalRental.Div(terms.AssetValue).Mul(hundred).Round(2)
		result.MonthlyReturnRate = result.RentalYield.Div(decimal.NewFromInt(int64(terms.LeaseTermMonths))).Round(2)
	}
	if terms.MonthlyRental.IsPositive() {
		result.PaybackPeriodMonths = terms.AssetValue.Div(terms.MonthlyRental).Round(2)
	}

	if terms.PurchaseOption {
		result.TotalCost = totalRental.Add(terms.PurchasePrice)
		if terms.AssetValue.IsPositive() {
			result.AssetMarkupPct = result.TotalCost.Sub(terms.AssetValue).
				Div(terms.AssetValue).Mul(hundred).Round(2)
		}
	}

	return result, nil
}
