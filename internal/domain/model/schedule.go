package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentScheduleEntry is an immutable value object representing one period
// in a payment schedule. Periods are numbered 1..N with no gaps.
//
// For cost-plus schedules Principal and Profit carry the disclosed split of
// each installment. For lease schedules Principal carries the rental amount
// and Profit is zero.
type PaymentScheduleEntry struct {
	DueDate          time.Time
	Principal        decimal.Decimal
	Profit           decimal.Decimal
	Total            decimal.Decimal
	RemainingBalance decimal.Decimal
	CumulativeAmount decimal.Decimal
	Period           int
}

// ScheduleTotal sums the Total column of a schedule.
func ScheduleTotal(entries []PaymentScheduleEntry) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range entries {
		sum = sum.Add(e.Total)
	}
	return sum
}
