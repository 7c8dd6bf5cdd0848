package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Contract terms requests
// ---------------------------------------------------------------------------

// ContractTermsRequest is the wire form of the contract-terms union. Exactly
// one variant matching ContractType must be populated.
type ContractTermsRequest struct {
	ContractType      string                         `json:"contract_type"`
	CostPlus          *CostPlusTermsRequest          `json:"cost_plus,omitempty"`
	SilentPartnership *SilentPartnershipTermsRequest `json:"silent_partnership,omitempty"`
	JointVenture      *JointVentureTermsRequest      `json:"joint_venture,omitempty"`
	Lease             *LeaseTermsRequest             `json:"lease,omitempty"`
	ForwardSale       *ForwardSaleTermsRequest       `json:"forward_sale,omitempty"`
}

// CostPlusTermsRequest carries Murabaha terms. ProfitRate and ProfitAmount
// are alternatives; a set rate wins.
type CostPlusTermsRequest struct {
	CostPrice                  decimal.Decimal `json:"cost_price"`
	ProfitRate                 decimal.Decimal `json:"profit_rate"`
	ProfitAmount               decimal.Decimal `json:"profit_amount"`
	NumberOfInstallments       int             `json:"number_of_installments"`
	InstallmentFrequency       string          `json:"installment_frequency"`
	DefermentPeriodMonths      int             `json:"deferment_period_months"`
	EarlySettlementDiscountPct decimal.Decimal `json:"early_settlement_discount_pct"`
	LatePaymentPolicy          string          `json:"late_payment_policy"`
	Currency                   string          `json:"currency"`
}

// SilentPartnershipTermsRequest carries Mudarabah terms.
type SilentPartnershipTermsRequest struct {
	CapitalAmount               decimal.Decimal `json:"capital_amount"`
	InvestorProfitShare         decimal.Decimal `json:"investor_profit_share"`
	CounterpartyProfitShare     decimal.Decimal `json:"counterparty_profit_share"`
	ExpectedReturnRate          decimal.Decimal `json:"expected_return_rate"`
	ProfitDistributionFrequency string          `json:"profit_distribution_frequency"`
	CapitalGuaranteed           bool            `json:"capital_guaranteed"`
	Currency                    string          `json:"currency"`
}

// JointVentureTermsRequest carries Musharakah terms.
type JointVentureTermsRequest struct {
	CapitalAmount               decimal.Decimal `json:"capital_amount"`
	InvestorProfitShare         decimal.Decimal `json:"investor_profit_share"`
	CounterpartyProfitShare     decimal.Decimal `json:"counterparty_profit_share"`
	InvestorCapital             decimal.Decimal `json:"investor_capital"`
	CounterpartyCapital         decimal.Decimal `json:"counterparty_capital"`
	ExpectedReturnRate          decimal.Decimal `json:"expected_return_rate"`
	ProfitDistributionFrequency string          `json:"profit_distribution_frequency"`
	CapitalGuaranteed           bool            `json:"capital_guaranteed"`
	Currency                    string          `json:"currency"`
}

// LeaseTermsRequest carries Ijarah terms.
type LeaseTermsRequest struct {
	AssetValue                decimal.Decimal `json:"asset_value"`
	MonthlyRental             decimal.Decimal `json:"monthly_rental"`
	LeaseTermMonths           int             `json:"lease_term_months"`
	PurchaseOption            bool            `json:"purchase_option"`
	PurchasePrice             decimal.Decimal `json:"purchase_price"`
	MaintenanceResponsibility string          `json:"maintenance_responsibility"`
	TakafulCoverage           bool            `json:"takaful_coverage"`
	Currency                  string          `json:"currency"`
}

// ForwardSaleTermsRequest carries Salam terms.
type ForwardSaleTermsRequest struct {
	Quantity               decimal.Decimal `json:"quantity"`
	Unit                   string          `json:"unit"`
	AgreedPrice            decimal.Decimal `json:"agreed_price"`
	AdvancePayment         decimal.Decimal `json:"advance_payment"`
	DeliveryDate           time.Time       `json:"delivery_date"`
	DeliveryPeriodDays     int             `json:"delivery_period_days"`
	LateDeliveryPenaltyPct decimal.Decimal `json:"late_delivery_penalty_pct"`
	Currency               string          `json:"currency"`
}

// ---------------------------------------------------------------------------
// Operation requests
// ---------------------------------------------------------------------------

// GenerateScheduleRequest asks for the payment schedule of a contract.
type GenerateScheduleRequest struct {
	Terms     ContractTermsRequest `json:"terms"`
	StartDate time.Time            `json:"start_date"`
}

// EarlySettlementRequest quotes closing a cost-plus contract early.
type EarlySettlementRequest struct {
	Terms            ContractTermsRequest `json:"terms"`
	PaidInstallments int                  `json:"paid_installments"`
}

// Distribution modes.
const (
	DistributionModeProfit = "PROFIT"
	DistributionModeLoss   = "LOSS"
)

// DistributeProfitLossRequest splits a realized profit or loss between the
// partnership parties.
type DistributeProfitLossRequest struct {
	Terms  ContractTermsRequest `json:"terms"`
	Mode   string               `json:"mode"`
	Amount decimal.Decimal      `json:"amount"`
}

// ContractMetricsRequest asks for the disclosure metrics of a contract.
// DeliveredQuantity is honored for forward-sale contracts only and adds
// delivery-progress figures to the response.
type ContractMetricsRequest struct {
	Terms             ContractTermsRequest `json:"terms"`
	AsOf              time.Time            `json:"as_of"`
	DeliveredQuantity *decimal.Decimal     `json:"delivered_quantity,omitempty"`
}

// FinancialInputsRequest carries the raw financial figures of an applicant.
type FinancialInputsRequest struct {
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

// EvaluateApplicationRequest runs the full underwriting pipeline for one
// financing application. Checklist entries are keyed category -> check ->
// status; omitted checks keep their previous (or UNKNOWN) status.
type EvaluateApplicationRequest struct {
	TenantID            string                       `json:"tenant_id"`
	ApplicationID       string                       `json:"application_id"`
	BusinessName        string                       `json:"business_name"`
	RequestedAmount     decimal.Decimal              `json:"requested_amount"`
	Currency            string                       `json:"currency"`
	RequestedInstrument string                       `json:"requested_instrument"`
	YearsInOperation    int                          `json:"years_in_operation"`
	Financials          FinancialInputsRequest       `json:"financials"`
	Checklist           map[string]map[string]string `json:"checklist,omitempty"`
}

// GetEvaluationRequest identifies an evaluation to retrieve.
type GetEvaluationRequest struct {
	TenantID      string `json:"tenant_id"`
	EvaluationID  string `json:"evaluation_id,omitempty"`
	ApplicationID string `json:"application_id,omitempty"`
}

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

// ScheduleEntryResponse is one period of a payment schedule.
type ScheduleEntryResponse struct {
	Period           int             `json:"period"`
	DueDate          time.Time       `json:"due_date"`
	Principal        decimal.Decimal `json:"principal"`
	Profit           decimal.Decimal `json:"profit"`
	Total            decimal.Decimal `json:"total"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
	CumulativeAmount decimal.Decimal `json:"cumulative_amount"`
}

// ScheduleResponse is a full payment schedule.
type ScheduleResponse struct {
	ContractType string                  `json:"contract_type"`
	Currency     string                  `json:"currency"`
	Entries      []ScheduleEntryResponse `json:"entries"`
	TotalAmount  decimal.Decimal         `json:"total_amount"`
}

// EarlySettlementResponse is the payoff quote for a cost-plus contract.
type EarlySettlementResponse struct {
	RemainingPrincipal decimal.Decimal `json:"remaining_principal"`
	RemainingProfit    decimal.Decimal `json:"remaining_profit"`
	Discount           decimal.Decimal `json:"discount"`
	SettlementAmount   decimal.Decimal `json:"settlement_amount"`
	Currency           string          `json:"currency"`
}

// DistributionShareResponse is one party's cut of a distribution.
type DistributionShareResponse struct {
	Party      string          `json:"party"`
	Percentage decimal.Decimal `json:"percentage"`
	Amount     decimal.Decimal `json:"amount"`
}

// DistributionResponse is the outcome of a profit or loss split.
type DistributionResponse struct {
	Mode        string                      `json:"mode"`
	TotalAmount decimal.Decimal             `json:"total_amount"`
	Currency    string                      `json:"currency"`
	Rule        string                      `json:"rule"`
	Approximate bool                        `json:"approximate"`
	Warnings    []string                    `json:"warnings,omitempty"`
	Shares      []DistributionShareResponse `json:"shares"`
}

// CostPlusMetricsResponse discloses cost-plus contract economics.
type CostPlusMetricsResponse struct {
	SellingPrice decimal.Decimal `json:"selling_price"`
	Markup       decimal.Decimal `json:"markup"`
	MarkupRate   decimal.Decimal `json:"markup_rate"`
	APR          decimal.Decimal `json:"apr"`
	TenorMonths  int             `json:"tenor_months"`
}

// LeaseMetricsResponse discloses lease contract economics.
type LeaseMetricsResponse struct {
	TotalRental         decimal.Decimal `json:"total_rental"`
	RentalYield         decimal.Decimal `json:"rental_yield"`
	MonthlyReturnRate   decimal.Decimal `json:"monthly_return_rate"`
	PaybackPeriodMonths decimal.Decimal `json:"payback_period_months"`
	TotalCost           decimal.Decimal `json:"total_cost"`
	AssetMarkupPct      decimal.Decimal `json:"asset_markup_pct"`
}

// ForwardSaleMetricsResponse discloses forward-sale contract economics.
type ForwardSaleMetricsResponse struct {
	DeliveryValue     decimal.Decimal           `json:"delivery_value"`
	Discount          decimal.Decimal           `json:"discount"`
	DiscountRate      decimal.Decimal           `json:"discount_rate"`
	BuyerBenefit      decimal.Decimal           `json:"buyer_benefit"`
	AnnualizedReturn  decimal.Decimal           `json:"annualized_return"`
	DaysUntilDelivery int                       `json:"days_until_delivery"`
	DeliveryProgress  *DeliveryProgressResponse `json:"delivery_progress,omitempty"`
}

// DeliveryProgressResponse tracks partial delivery against a forward sale.
type DeliveryProgressResponse struct {
	DeliveredQuantity decimal.Decimal `json:"delivered_quantity"`
	RemainingQuantity decimal.Decimal `json:"remaining_quantity"`
	RemainingValue    decimal.Decimal `json:"remaining_value"`
	PercentDelivered  decimal.Decimal `json:"percent_delivered"`
}

// ContractMetricsResponse is the type-dependent metrics union. The variant
// matching ContractType is set; the others are nil.
type ContractMetricsResponse struct {
	ContractType string                      `json:"contract_type"`
	Currency     string                      `json:"currency"`
	CostPlus     *CostPlusMetricsResponse    `json:"cost_plus,omitempty"`
	Lease        *LeaseMetricsResponse       `json:"lease,omitempty"`
	ForwardSale  *ForwardSaleMetricsResponse `json:"forward_sale,omitempty"`
	Warnings     []string                    `json:"warnings,omitempty"`
}

// FinancialRatiosResponse is the derived ratio set.
type FinancialRatiosResponse struct {
	CurrentRatio      decimal.Decimal `json:"current_ratio"`
	DebtToEquity      decimal.Decimal `json:"debt_to_equity"`
	ReturnOnAssets    decimal.Decimal `json:"return_on_assets"`
	ReturnOnEquity    decimal.Decimal `json:"return_on_equity"`
	ProfitMargin      decimal.Decimal `json:"profit_margin"`
	OperatingMargin   decimal.Decimal `json:"operating_margin"`
	InventoryTurnover decimal.Decimal `json:"inventory_turnover"`
}

// RiskAssessmentResponse is the scored risk outcome.
type RiskAssessmentResponse struct {
	Score        decimal.Decimal `json:"score"`
	RiskTier     string          `json:"risk_tier"`
	CreditRating string          `json:"credit_rating"`
}

// RecommendationResponse is the produced underwriting advice.
type RecommendationResponse struct {
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

// EvaluationResponse is the external representation of an evaluation.
type EvaluationResponse struct {
	ID                  string                       `json:"id"`
	TenantID            string                       `json:"tenant_id"`
	ApplicationID       string                       `json:"application_id"`
	BusinessName        string                       `json:"business_name"`
	RequestedAmount     decimal.Decimal              `json:"requested_amount"`
	Currency            string                       `json:"currency"`
	RequestedInstrument string                       `json:"requested_instrument"`
	YearsInOperation    int                          `json:"years_in_operation"`
	Status              string                       `json:"status"`
	Checklist           map[string]map[string]string `json:"checklist"`
	DueDiligenceScore   decimal.Decimal              `json:"due_diligence_score"`
	Ratios              FinancialRatiosResponse      `json:"ratios"`
	Risk                RiskAssessmentResponse       `json:"risk"`
	Recommendation      RecommendationResponse       `json:"recommendation"`
	Version             int                          `json:"version"`
	CreatedAt           time.Time                    `json:"created_at"`
	UpdatedAt           time.Time                    `json:"updated_at"`
}
