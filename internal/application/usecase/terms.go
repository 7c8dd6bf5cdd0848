package usecase

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/amanafinance/amana/internal/application/dto"
	"github.com/amanafinance/amana/internal/domain/model"
	"github.com/amanafinance/amana/internal/domain/valueobject"
	"github.com/amanafinance/amana/pkg/money"
)

// termsFromDTO converts the wire form of contract terms into the domain
// union. Validation of the assembled terms is left to the domain.
func termsFromDTO(req dto.ContractTermsRequest) (model.ContractTerms, error) {
	contractType, err := valueobject.NewContractType(req.ContractType)
	if err != nil {
		return model.ContractTerms{}, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}
	terms := model.ContractTerms{Type: contractType}

	switch {
	case req.CostPlus != nil:
		frequency, err := valueobject.NewInstallmentFrequency(req.CostPlus.InstallmentFrequency)
		if err != nil {
			return model.ContractTerms{}, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
		}
		profitRate, err := percentField("profit rate", req.CostPlus.ProfitRate)
		if err != nil {
			return model.ContractTerms{}, err
		}
		discount, err := percentField("early settlement discount", req.CostPlus.EarlySettlementDiscountPct)
		if err != nil {
			return model.ContractTerms{}, err
		}
		terms.CostPlus = &model.CostPlusTerms{
			CostPrice:                  req.CostPlus.CostPrice,
			ProfitRate:                 profitRate,
			ProfitAmount:               req.CostPlus.ProfitAmount,
			NumberOfInstallments:       req.CostPlus.NumberOfInstallments,
			InstallmentFrequency:       frequency,
			DefermentPeriodMonths:      req.CostPlus.DefermentPeriodMonths,
			EarlySettlementDiscountPct: discount,
			LatePaymentPolicy:          model.LatePaymentPolicy(req.CostPlus.LatePaymentPolicy),
			Currency:                   req.CostPlus.Currency,
		}

	case req.SilentPartnership != nil:
		investorShare, err := percentField("investor profit share", req.SilentPartnership.InvestorProfitShare)
		if err != nil {
			return model.ContractTerms{}, err
		}
		counterpartyShare, err := percentField("counterparty profit share", req.SilentPartnership.CounterpartyProfitShare)
		if err != nil {
			return model.ContractTerms{}, err
		}
		expectedReturn, err := percentField("expected return rate", req.SilentPartnership.ExpectedReturnRate)
		if err != nil {
			return model.ContractTerms{}, err
		}
		frequency, err := optionalFrequency(req.SilentPartnership.ProfitDistributionFrequency)
		if err != nil {
			return model.ContractTerms{}, err
		}
		terms.SilentPartnership = &model.SilentPartnershipTerms{
			CapitalAmount:               req.SilentPartnership.CapitalAmount,
			InvestorProfitShare:         investorShare,
			CounterpartyProfitShare:     counterpartyShare,
			ExpectedReturnRate:          expectedReturn,
			ProfitDistributionFrequency: frequency,
			CapitalGuaranteed:           req.SilentPartnership.CapitalGuaranteed,
			Currency:                    req.SilentPartnership.Currency,
		}

	case req.JointVenture != nil:
		investorShare, err := percentField("investor profit share", req.JointVenture.InvestorProfitShare)
		if err != nil {
			return model.ContractTerms{}, err
		}
		counterpartyShare, err := percentField("counterparty profit share", req.JointVenture.CounterpartyProfitShare)
		if err != nil {
			return model.ContractTerms{}, err
		}
		expectedReturn, err := percentField("expected return rate", req.JointVenture.ExpectedReturnRate)
		if err != nil {
			return model.ContractTerms{}, err
		}
		frequency, err := optionalFrequency(req.JointVenture.ProfitDistributionFrequency)
		if err != nil {
			return model.ContractTerms{}, err
		}
		terms.JointVenture = &model.JointVentureTerms{
			CapitalAmount:               req.JointVenture.CapitalAmount,
			InvestorProfitShare:         investorShare,
			CounterpartyProfitShare:     counterpartyShare,
			InvestorCapital:             req.JointVenture.InvestorCapital,
			CounterpartyCapital:         req.JointVenture.CounterpartyCapital,
			ExpectedReturnRate:          expectedReturn,
			ProfitDistributionFrequency: frequency,
			CapitalGuaranteed:           req.JointVenture.CapitalGuaranteed,
			Currency:                    req.JointVenture.Currency,
		}

	case req.Lease != nil:
		terms.Lease = &model.LeaseTerms{
			AssetValue:                req.Lease.AssetValue,
			MonthlyRental:             req.Lease.MonthlyRental,
			LeaseTermMonths:           req.Lease.LeaseTermMonths,
			PurchaseOption:            req.Lease.PurchaseOption,
			PurchasePrice:             req.Lease.PurchasePrice,
			MaintenanceResponsibility: model.MaintenanceResponsibility(req.Lease.MaintenanceResponsibility),
			TakafulCoverage:           req.Lease.TakafulCoverage,
			Currency:                  req.Lease.Currency,
		}

	case req.ForwardSale != nil:
		penalty, err := percentField("late delivery penalty", req.ForwardSale.LateDeliveryPenaltyPct)
		if err != nil {
			return model.ContractTerms{}, err
		}
		terms.ForwardSale = &model.ForwardSaleTerms{
			Quantity:               req.ForwardSale.Quantity,
			Unit:                   req.ForwardSale.Unit,
			AgreedPrice:            req.ForwardSale.AgreedPrice,
			AdvancePayment:         req.ForwardSale.AdvancePayment,
			DeliveryDate:           req.ForwardSale.DeliveryDate,
			DeliveryPeriodDays:     req.ForwardSale.DeliveryPeriodDays,
			LateDeliveryPenaltyPct: penalty,
			Currency:               req.ForwardSale.Currency,
		}

	default:
		return model.ContractTerms{}, fmt.Errorf("%w: no terms variant set", model.ErrInvalidInput)
	}

	if err := terms.Validate(); err != nil {
		return model.ContractTerms{}, err
	}
	return terms, nil
}

func percentField(name string, value decimal.Decimal) (money.Percent, error) {
	p, err := money.NewPercent(value)
	if err != nil {
		return money.Percent{}, fmt.Errorf("%w: %s: %v", model.ErrInvalidInput, name, err)
	}
	return p, nil
}

func optionalFrequency(s string) (valueobject.InstallmentFrequency, error) {
	if s == "" {
		return valueobject.InstallmentFrequency{}, nil
	}
	f, err := valueobject.NewInstallmentFrequency(s)
	if err != nil {
		return valueobject.InstallmentFrequency{}, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}
	return f, nil
}
