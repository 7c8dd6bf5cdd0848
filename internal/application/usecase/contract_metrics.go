package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/amanafinance/amana/internal/application/dto"
	"github.com/amanafinance/amana/internal/domain/model"
)

// ComputeContractMetricsUseCase derives the disclosure metrics of a contract
// from its terms.
type ComputeContractMetricsUseCase struct{}

// NewComputeContractMetricsUseCase wires dependencies.
func NewComputeContractMetricsUseCase() *ComputeContractMetricsUseCase {
	return &ComputeContractMetricsUseCase{}
}

// Execute computes the metrics variant matching the contract type.
// Partnership contracts carry no disclosure metrics beyond their terms.
func (uc *ComputeContractMetricsUseCase) Execute(
	_ context.Context,
	req dto.ContractMetricsRequest,
) (dto.ContractMetricsResponse, error) {
	terms, err := termsFromDTO(req.Terms)
	if err != nil {
		return dto.ContractMetricsResponse{}, fmt.Errorf("parse terms: %w", err)
	}

	resp := dto.ContractMetricsResponse{
		ContractType: terms.Type.String(),
		Currency:     terms.CurrencyCode(),
	}

	switch {
	case terms.CostPlus != nil:
		m, err := model.CostPlusMetrics(*terms.CostPlus)
		if err != nil {
			return dto.ContractMetricsResponse{}, fmt.Errorf("cost-plus metrics: %w", err)
		}
		resp.CostPlus = &dto.CostPlusMetricsResponse{
			SellingPrice: m.SellingPrice,
			Markup:       m.Markup,
			MarkupRate:   m.MarkupRate,
			APR:          m.APR,
			TenorMonths:  m.TenorMonths,
		}

	case terms.Lease != nil:
		m, err := model.LeaseMetrics(*terms.Lease)
		if err != nil {
			return dto.ContractMetricsResponse{}, fmt.Errorf("lease metrics: %w", err)
		}
		resp.Lease = &dto.LeaseMetricsResponse{
			TotalRental:         m.TotalRental,
			RentalYield:         m.RentalYield,
			MonthlyReturnRate:   m.MonthlyReturnRate,
			PaybackPeriodMonths: m.PaybackPeriodMonths,
			TotalCost:           m.TotalCost,
			AssetMarkupPct:      m.AssetMarkupPct,
		}

	case terms.ForwardSale != nil:
		asOf := req.AsOf
		if asOf.IsZero() {
			asOf = time.Now().UTC()
		}
		m, warnings, err := model.ForwardSaleMetrics(*terms.ForwardSale, asOf)
		if err != nil {
			return dto.ContractMetricsResponse{}, fmt.Errorf("forward-sale metrics: %w", err)
		}
		resp.ForwardSale = &dto.ForwardSaleMetricsResponse{
			DeliveryValue:     m.DeliveryValue,
			Discount:          m.Discount,
			DiscountRate:      m.DiscountRate,
			BuyerBenefit:      m.BuyerBenefit,
			AnnualizedReturn:  m.AnnualizedReturn,
			DaysUntilDelivery: m.DaysUntilDelivery,
		}
		for _, w := range warnings {
			resp.Warnings = append(resp.Warnings, string(w))
		}

		if req.DeliveredQuantity != nil {
			progress, err := model.ForwardSaleDeliveryProgress(*terms.ForwardSale, *req.DeliveredQuantity)
			if err != nil {
				return dto.ContractMetricsResponse{}, fmt.Errorf("delivery progress: %w", err)
			}
			resp.ForwardSale.DeliveryProgress = &dto.DeliveryProgressResponse{
				DeliveredQuantity: progress.DeliveredQuantity,
				RemainingQuantity: progress.RemainingQuantity,
				RemainingValue:    progress.RemainingValue,
				PercentDelivered:  progress.PercentDelivered,
			}
		}

	default:
		return dto.ContractMetricsResponse{}, fmt.Errorf("%w: %s contracts have no disclosure metrics",
			model.ErrInvalidInput, terms.Type)
	}

	return resp, nil
}
