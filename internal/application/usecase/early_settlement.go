package usecase

import (
	"context"
	"fmt"

	"github.com/amanafinance/amana/internal/application/dto"
	"github.com/amanafinance/amana/internal/domain/model"
)

// ComputeEarlySettlementUseCase quotes closing a cost-plus contract before
// maturity.
type ComputeEarlySettlementUseCase struct{}

// NewComputeEarlySettlementUseCase wires dependencies.
func NewComputeEarlySettlementUseCase() *ComputeEarlySettlementUseCase {
	return &ComputeEarlySettlementUseCase{}
}

// Execute returns the settlement quote after the given number of paid
// installments.
func (uc *ComputeEarlySettlementUseCase) Execute(
	_ context.Context,
	req dto.EarlySettlementRequest,
) (dto.EarlySettlementResponse, error) {
	terms, err := termsFromDTO(req.Terms)
	if err != nil {
		return dto.EarlySettlementResponse{}, fmt.Errorf("parse terms: %w", err)
	}
	if terms.CostPlus == nil {
		return dto.EarlySettlementResponse{}, fmt.Errorf("%w: early settlement applies to cost-plus contracts only, got %s",
			model.ErrInvalidInput, terms.Type)
	}

	quote, err := model.CostPlusEarlySettlement(*terms.CostPlus, req.PaidInstallments)
	if err != nil {
		return dto.EarlySettlementResponse{}, fmt.Errorf("compute settlement: %w", err)
	}

	return dto.EarlySettlementResponse{
		RemainingPrincipal: quote.RemainingPrincipal,
		RemainingProfit:    quote.RemainingProfit,
		Discount:           quote.Discount,
		SettlementAmount:   quote.SettlementAmount,
		Currency:           terms.CurrencyCode(),
	}, nil
}
