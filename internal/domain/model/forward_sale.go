package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Salam (forward sale) metrics and delivery tracking
// ---------------------------------------------------------------------------

// ForwardSaleMetricsResult summarises the economics of a forward sale.
// DaysUntilDelivery is signed: a negative count means the delivery is
// overdue by that many days, never clamped to zero.
type ForwardSaleMetricsResult struct {
	DeliveryValue     decimal.Decimal
	Discount          decimal.Decimal
	DiscountRate      decimal.Decimal
	BuyerBenefit      decimal.Decimal
	AnnualizedReturn  decimal.Decimal
	DaysUntilDelivery int
}

// ForwardSaleMetrics computes discount and delivery metrics for forward-sale
// terms as of the given time. Standard Salam requires the full price in
// advance; a partial advance yields a warning for underwriting review while
// the contract remains computable.
func ForwardSaleMetrics(terms ForwardSaleTerms, now time.Time) (ForwardSaleMetricsResult, []Warning, error) {
	if err := terms.Validate(); err != nil {
		return ForwardSaleMetricsResult{}, nil, err
	}

	hundred := decimal.NewFromInt(100)
	deliveryValue := terms.AgreedPrice
	discount := deliveryValue.Sub(terms.AdvancePayment)

	result := ForwardSaleMetricsResult{
		DeliveryValue: deliveryValue,
		Discount:      discount,
		BuyerBenefit:  discount,
	}

	if deliveryValue.IsPositive() {
		result.DiscountRate = discount.Div(deliveryValue).Mul(hundred).Round(2)
	}
	if terms.AdvancePayment.IsPositive() && terms.DeliveryPeriodDays > 0 {
		days := decimal.NewFromInt(int64(terms.DeliveryPeriodDays))
		result.AnnualizedReturn = discount.Div(terms.AdvancePayment).
			Div(days).Mul(decimal.NewFromInt(365)).Mul(hundred).Round(2)
	}

	result.DaysUntilDelivery = daysBetween(now, terms.DeliveryDate)

	var warnings []Warning
	if terms.AdvancePayment.LessThan(deliveryValue) {
		pct := decimal.Zero
		if deliveryValue.IsPositive() {
			pct = terms.AdvancePayment.Div(deliveryValue).Mul(hundred).Round(1)
		}
		warnings = append(warnings, Warning(fmt.Sprintf(
			"advance payment covers only %s%% of the delivery value; standard Salam requires 100%% upfront", pct)))
	}

	return result, warnings, nil
}

// DeliveryProgress tracks partial delivery against a forward-sale contract.
type DeliveryProgress struct {
	DeliveredQuantity decimal.Decimal
	RemainingQuantity decimal.Decimal
	RemainingValue    decimal.Decimal
	PercentDelivered  decimal.Decimal
}

// ForwardSaleDeliveryProgress computes remaining quantity and value for a
// partially delivered contract. Over-delivery against the contracted
// quantity is an inconsistency, not something to clamp away.
func ForwardSaleDeliveryProgress(terms ForwardSaleTerms, delivered decimal.Decimal) (DeliveryProgress, error) {
	if err := terms.Validate(); err != nil {
		return DeliveryProgress{}, err
	}
	if delivered.IsNegative() {
		return DeliveryProgress{}, fmt.Errorf("%w: delivered quantity must not be negative", ErrInvalidInput)
	}
	if delivered.GreaterThan(terms.Quantity) {
		return DeliveryProgress{}, fmt.Errorf("%w: delivered quantity %s exceeds contracted quantity %s",
			ErrStateInconsistency, delivered, terms.Quantity)
	}

	remaining := terms.Quantity.Sub(delivered)
	progress := DeliveryProgress{
		DeliveredQuantity: delivered,
		RemainingQuantity: remaining,
	}

	if terms.Quantity.IsPositive() {
		hundred := decimal.NewFromInt(100)
		progress.RemainingValue = remaining.Div(terms.Quantity).Mul(terms.AgreedPrice).Round(2)
		progress.PercentDelivered = delivered.Div(terms.Quantity).Mul(hundred).Round(2)
	}

	return progress, nil
}

// daysBetween counts whole days from now until the target, rounding partial
// days toward the target so a delivery later today still counts as one day.
func daysBetween(now, target time.Time) int {
	diff := target.Sub(now)
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return days
}
