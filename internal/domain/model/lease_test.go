package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaseToOwnTerms() LeaseTerms {
	return LeaseTerms{
		AssetValue:                dec("2000000"),
		MonthlyRental:             dec("120000"),
		LeaseTermMonths:           24,
		PurchaseOption:            true,
		PurchasePrice:             dec("200000"),
		MaintenanceResponsibility: MaintenanceLessor,
		TakafulCoverage:           true,
		Currency:                  "NGN",
	}
}

func TestGenerateLeaseSchedule(t *testing.T) {
	start := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)

	schedule, err := GenerateLeaseSchedule(leaseToOwnTerms(), start)
	require.NoError(t, err)
	require.Len(t, schedule, 24)

	first := schedule[0]
	assert.Equal(t, 1, first.Period)
	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), first.DueDate)
	assert.True(t, first.Principal.Equal(dec("120000")))
	assert.True(t, first.Profit.IsZero())
	assert.True(t, first.CumulativeAmount.Equal(dec("120000")))
	assert.True(t, first.RemainingBalance.Equal(dec("2760000")))

	last := schedule[23]
	assert.True(t, last.CumulativeAmount.Equal(dec("2880000")))
	assert.True(t, last.RemainingBalance.IsZero())
	assert.True(t, ScheduleTotal(schedule).Equal(dec("2880000")))
}

func TestGenerateLeaseSchedule_RejectsInvalidTerms(t *testing.T) {
	terms := leaseToOwnTerms()
	terms.LeaseTermMonths = 0

	_, err := GenerateLeaseSchedule(terms, time.Now())
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLeaseMetrics_LeaseToOwn(t *testing.T) {
	metrics, err := LeaseMetrics(leaseToOwnTerms())
	require.NoError(t, err)

	assert.True(t, metrics.TotalRental.Equal(dec("2880000")))
	assert.True(t, metrics.RentalYield.Equal(dec("144")), "yield: %s", metrics.RentalYield)
	assert.True(t, metrics.MonthlyReturnRate.Equal(dec("6")), "monthly return: %s", metrics.MonthlyReturnRate)
	assert.True(t, metrics.PaybackPeriodMonths.Equal(dec("16.67")), "payback: %s", metrics.PaybackPeriodMonths)
	assert.True(t, metrics.TotalCost.Equal(dec("3080000")), "total cost: %s", metrics.TotalCost)
	assert.True(t, metrics.AssetMarkupPct.Equal(dec("54")), "markup: %s", metrics.AssetMarkupPct)
}

func TestLeaseMetrics_NoPurchaseOption(t *testing.T) {
	terms := leaseToOwnTerms()
	terms.PurchaseOption = false
	terms.PurchasePrice = dec("0")

	metrics, err := LeaseMetrics(terms)
	require.NoError(t, err)

	assert.True(t, metrics.TotalCost.IsZero())
	assert.True(t, metrics.AssetMarkupPct.IsZero())
}

func TestLeaseMetrics_ZeroDenominatorsResolveToZero(t *testing.T) {
	terms := LeaseTerms{
		AssetValue:                dec("0"),
		MonthlyRental:             dec("0"),
		LeaseTermMonths:           12,
		MaintenanceResponsibility: MaintenanceLessee,
		Currency:                  "NGN",
	}

	metrics, err := LeaseMetrics(terms)
	require.NoError(t, err)

	assert.True(t, metrics.RentalYield.IsZero())
	assert.True(t, metrics.MonthlyReturnRate.IsZero())
	assert.True(t, metrics.PaybackPeriodMonths.IsZero())
}

func TestLeaseTermsValidate_PurchaseOptionRequiresPrice(t *testing.T) {
	terms := leaseToOwnTerms()
	terms.PurchasePrice = dec("0")

	assert.ErrorIs(t, terms.Validate(), ErrInvalidInput)
}
