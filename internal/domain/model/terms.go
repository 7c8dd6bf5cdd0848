package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amanafinance/amana/internal/domain/valueobject"
	"github.com/amanafinance/amana/pkg/money"
)

// ---------------------------------------------------------------------------
// Contract terms – closed sum type over the five archetypes
// ---------------------------------------------------------------------------

// LatePaymentPolicy governs what happens to late-payment penalties. Under
// Shariah rules a penalty may not enrich the financier, so it either goes to
// charity or is waived entirely.
type LatePaymentPolicy string

const (
	LatePaymentCharity LatePaymentPolicy = "CHARITY"
	LatePaymentNone    LatePaymentPolicy = "NONE"
)

// MaintenanceResponsibility assigns upkeep of a leased asset.
type MaintenanceResponsibility string

const (
	MaintenanceLessor MaintenanceResponsibility = "LESSOR"
	MaintenanceLessee MaintenanceResponsibility = "LESSEE"
	MaintenanceShared MaintenanceResponsibility = "SHARED"
)

// CostPlusTerms are the negotiated terms of a Murabaha (cost-plus sale):
// the financier discloses its cost and a fixed mark-up, and the buyer repays
// the selling price in installments.
type CostPlusTerms struct {
	CostPrice decimal.Decimal
	// ProfitRate and ProfitAmount are mutually derivable. When both are
	// set, ProfitRate is authoritative and Normalize recomputes the amount.
	ProfitRate                 money.Percent
	ProfitAmount               decimal.Decimal
	NumberOfInstallments       int
	InstallmentFrequency       valueobject.InstallmentFrequency
	DefermentPeriodMonths      int
	EarlySettlementDiscountPct money.Percent
	LatePaymentPolicy          LatePaymentPolicy
	Currency                   string
}

// Normalize reconciles the two profit input modes. A set ProfitRate
// recomputes ProfitAmount; otherwise a set ProfitAmount back-fills the rate.
// The two are never derived independently of each other.
func (t CostPlusTerms) Normalize() (CostPlusTerms, error) {
	switch {
	case !t.ProfitRate.IsZero():
		t.ProfitAmount = t.ProfitRate.Of(t.CostPrice)
	case t.ProfitAmount.IsPositive():
		if t.CostPrice.IsZero() {
			return CostPlusTerms{}, fmt.Errorf("%w: profit amount without cost price", ErrInvalidInput)
		}
		rate, err := money.NewPercent(t.ProfitAmount.Div(t.CostPrice).Mul(decimal.NewFromInt(100)))
		if err != nil {
			return CostPlusTerms{}, fmt.Errorf("%w: derived profit rate: %v", ErrInvalidInput, err)
		}
		t.ProfitRate = rate
	}
	return t, nil
}

// SellingPrice is the disclosed cost plus the agreed mark-up.
func (t CostPlusTerms) SellingPrice() decimal.Decimal {
	return t.CostPrice.Add(t.ProfitAmount)
}

// TenorMonths is the full repayment horizon including any grace period.
func (t CostPlusTerms) TenorMonths() int {
	return t.DefermentPeriodMonths + t.NumberOfInstallments*t.InstallmentFrequency.MonthsPerPeriod()
}

// Validate enforces the structural input rules for cost-plus terms.
func (t CostPlusTerms) Validate() error {
	if t.CostPrice.IsNegative() {
		return fmt.Errorf("%w: cost price must not be negative", ErrInvalidInput)
	}
	if t.ProfitAmount.IsNegative() {
		return fmt.Errorf("%w: profit amount must not be negative", ErrInvalidInput)
	}
	if t.NumberOfInstallments <= 0 {
		return fmt.Errorf("%w: number of installments must be positive", ErrInvalidInput)
	}
	if t.InstallmentFrequency.IsZero() {
		return fmt.Errorf("%w: installment frequency is required", ErrInvalidInput)
	}
	if t.DefermentPeriodMonths < 0 {
		return fmt.Errorf("%w: deferment period must not be negative", ErrInvalidInput)
	}
	switch t.LatePaymentPolicy {
	case LatePaymentCharity, LatePaymentNone:
	default:
		return fmt.Errorf("%w: invalid late payment policy %q", ErrInvalidInput, t.LatePaymentPolicy)
	}
	return nil
}

// SilentPartnershipTerms are the terms of a Mudarabah: the investor provides
// all capital, the business provides effort, profit is split by ratio, and
// financial loss falls entirely on the capital provider.
type SilentPartnershipTerms struct {
	CapitalAmount               decimal.Decimal
	InvestorProfitShare         money.Percent
	CounterpartyProfitShare     money.Percent
	ExpectedReturnRate          money.Percent // estimate only, never a guarantee
	ProfitDistributionFrequency valueobject.InstallmentFrequency
	// CapitalGuaranteed is recorded for compliance review; a guaranteed
	// principal makes the structure non-compliant but does not change the
	// loss allocation rule applied here.
	CapitalGuaranteed bool
	Currency          string
}

// Validate enforces the structural input rules for silent-partnership terms.
func (t SilentPartnershipTerms) Validate() error {
	if t.CapitalAmount.IsNegative() {
		return fmt.Errorf("%w: capital amount must not be negative", ErrInvalidInput)
	}
	if !t.InvestorProfitShare.SumsToWhole(t.CounterpartyProfitShare) {
		return fmt.Errorf("%w: profit shares must sum to 100%%, got %s + %s",
			ErrInvalidInput, t.InvestorProfitShare, t.CounterpartyProfitShare)
	}
	return nil
}

// JointVentureTerms are the terms of a Musharakah: both parties contribute
// capital, profit is split by agreement, and loss is shared in proportion to
// capital contributions.
type JointVentureTerms struct {
	CapitalAmount           decimal.Decimal
	InvestorProfitShare     money.Percent
	CounterpartyProfitShare money.Percent
	// InvestorCapital and CounterpartyCapital drive loss allocation. When
	// both are zero the contributions are not yet modeled and loss falls
	// back to the profit ratio, flagged as an approximation.
	InvestorCapital             decimal.Decimal
	CounterpartyCapital         decimal.Decimal
	ExpectedReturnRate          money.Percent
	ProfitDistributionFrequency valueobject.InstallmentFrequency
	CapitalGuaranteed           bool
	Currency                    string
}

// CapitalModeled reports whether per-party capital contributions are known.
func (t JointVentureTerms) CapitalModeled() bool {
	return t.InvestorCapital.IsPositive() || t.CounterpartyCapital.IsPositive()
}

// Validate enforces the structural input rules for joint-venture terms.
func (t JointVentureTerms) Validate() error {
	if t.CapitalAmount.IsNegative() {
		return fmt.Errorf("%w: capital amount must not be negative", ErrInvalidInput)
	}
	if t.InvestorCapital.IsNegative() || t.CounterpartyCapital.IsNegative() {
		return fmt.Errorf("%w: capital contributions must not be negative", ErrInvalidInput)
	}
	if !t.InvestorProfitShare.SumsToWhole(t.CounterpartyProfitShare) {
		return fmt.Errorf("%w: profit shares must sum to 100%%, got %s + %s",
			ErrInvalidInput, t.InvestorProfitShare, t.CounterpartyProfitShare)
	}
	return nil
}

// LeaseTerms are the terms of an Ijarah: an asset leased for a fixed monthly
// rental, optionally with an end-of-term purchase option (lease-to-own).
type LeaseTerms struct {
	AssetValue                decimal.Decimal
	MonthlyRental             decimal.Decimal
	LeaseTermMonths           int
	PurchaseOption            bool
	PurchasePrice             decimal.Decimal
	MaintenanceResponsibility MaintenanceResponsibility
	// TakafulCoverage flags Islamic cooperative insurance on the asset.
	TakafulCoverage bool
	Currency        string
}

// TotalRental is the rental income over the full lease term.
func (t LeaseTerms) TotalRental() decimal.Decimal {
	return t.MonthlyRental.Mul(decimal.NewFromInt(int64(t.LeaseTermMonths)))
}

// Validate enforces the structural input rules for lease terms.
func (t LeaseTerms) Validate() error {
	if t.AssetValue.IsNegative() || t.MonthlyRental.IsNegative() {
		return fmt.Errorf("%w: asset value and rental must not be negative", ErrInvalidInput)
	}
	if t.LeaseTermMonths <= 0 {
		return fmt.Errorf("%w: lease term must be positive", ErrInvalidInput)
	}
	if t.PurchaseOption && !t.PurchasePrice.IsPositive() {
		return fmt.Errorf("%w: purchase price is required when the purchase option is set", ErrInvalidInput)
	}
	if t.PurchasePrice.IsNegative() {
		return fmt.Errorf("%w: purchase price must not be negative", ErrInvalidInput)
	}
	switch t.MaintenanceResponsibility {
	case MaintenanceLessor, MaintenanceLessee, MaintenanceShared:
	default:
		return fmt.Errorf("%w: invalid maintenance responsibility %q", ErrInvalidInput, t.MaintenanceResponsibility)
	}
	return nil
}

// ForwardSaleTerms are the terms of a Salam: the buyer pays upfront for goods
// delivered on a future date. Standard Salam requires the full price in
// advance; a partial advance is surfaced as a warning, not a failure.
type ForwardSaleTerms struct {
	Quantity decimal.Decimal
	Unit     string
	// AgreedPrice is the total contract price, i.e. the delivery value.
	AgreedPrice            decimal.Decimal
	AdvancePayment         decimal.Decimal
	DeliveryDate           time.Time
	DeliveryPeriodDays     int
	LateDeliveryPenaltyPct money.Percent // of contract value, per day late
	Currency               string
}

// Validate enforces the structural input rules for forward-sale terms.
func (t ForwardSaleTerms) Validate() error {
	if t.Quantity.IsNegative() || t.AgreedPrice.IsNegative() || t.AdvancePayment.IsNegative() {
		return fmt.Errorf("%w: quantity, agreed price and advance payment must not be negative", ErrInvalidInput)
	}
	if t.Unit == "" {
		return fmt.Errorf("%w: unit of measurement is required", ErrInvalidInput)
	}
	if t.DeliveryPeriodDays < 0 {
		return fmt.Errorf("%w: delivery period must not be negative", ErrInvalidInput)
	}
	return nil
}

// ContractTerms is the tagged union over the five archetypes. Exactly one
// variant pointer matching Type must be set; Validate enforces this so that
// calculators can dispatch on Type without re-checking.
type ContractTerms struct {
	Type valueobject.ContractType

	CostPlus          *CostPlusTerms
	SilentPartnership *SilentPartnershipTerms
	JointVenture      *JointVentureTerms
	Lease             *LeaseTerms
	ForwardSale       *ForwardSaleTerms
}

// Validate checks the discriminant, the presence of exactly the matching
// variant, and the variant's own field rules.
func (t ContractTerms) Validate() error {
	if t.Type.IsZero() {
		return fmt.Errorf("%w: contract type is required", ErrInvalidInput)
	}

	set := 0
	for _, p := range []bool{
		t.CostPlus != nil, t.SilentPartnership != nil, t.JointVenture != nil,
		t.Lease != nil, t.ForwardSale != nil,
	} {
		if p {
			set++
		}
	}
	if set != 1 {
		return fmt.Errorf("%w: exactly one terms variant must be set, got %d", ErrInvalidInput, set)
	}

	switch {
	case t.Type.Equal(valueobject.ContractTypeMurabaha):
		if t.CostPlus == nil {
			return fmt.Errorf("%w: murabaha requires cost-plus terms", ErrInvalidInput)
		}
		return t.CostPlus.Validate()
	case t.Type.Equal(valueobject.ContractTypeMudarabah):
		if t.SilentPartnership == nil {
			return fmt.Errorf("%w: mudarabah requires silent-partnership terms", ErrInvalidInput)
		}
		return t.SilentPartnership.Validate()
	case t.Type.Equal(valueobject.ContractTypeMusharakah):
		if t.JointVenture == nil {
			return fmt.Errorf("%w: musharakah requires joint-venture terms", ErrInvalidInput)
		}
		return t.JointVenture.Validate()
	case t.Type.Equal(valueobject.ContractTypeIjarah):
		if t.Lease == nil {
			return fmt.Errorf("%w: ijarah requires lease terms", ErrInvalidInput)
		}
		return t.Lease.Validate()
	case t.Type.Equal(valueobject.ContractTypeSalam):
		if t.ForwardSale == nil {
			return fmt.Errorf("%w: salam requires forward-sale terms", ErrInvalidInput)
		}
		return t.ForwardSale.Validate()
	default:
		return fmt.Errorf("%w: unsupported contract type %s", ErrInvalidInput, t.Type)
	}
}

// CurrencyCode returns the currency recorded on the active variant.
func (t ContractTerms) CurrencyCode() string {
	switch {
	case t.CostPlus != nil:
		return t.CostPlus.Currency
	case t.SilentPartnership != nil:
		return t.SilentPartnership.Currency
	case t.JointVenture != nil:
		return t.JointVenture.Currency
	case t.Lease != nil:
		return t.Lease.Currency
	case t.ForwardSale != nil:
		return t.ForwardSale.Currency
	default:
		return ""
	}
}
