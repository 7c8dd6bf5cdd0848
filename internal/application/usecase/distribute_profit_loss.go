package usecase

import (
	"context"
	"fmt"

	"github.com/amanafinance/amana/internal/application/dto"
	"github.com/amanafinance/amana/internal/domain/model"
	"github.com/amanafinance/amana/internal/domain/service"
	"github.com/amanafinance/amana/pkg/money"
)

// DistributeProfitLossUseCase splits a realized profit or loss between the
// parties of a partnership contract.
type DistributeProfitLossUseCase struct {
	distributor *service.ProfitLossDistributor
}

// NewDistributeProfitLossUseCase wires dependencies.
func NewDistributeProfitLossUseCase(distributor *service.ProfitLossDistributor) *DistributeProfitLossUseCase {
	return &DistributeProfitLossUseCase{distributor: distributor}
}

// Execute applies the distribution rule selected by the request mode.
func (uc *DistributeProfitLossUseCase) Execute(
	_ context.Context,
	req dto.DistributeProfitLossRequest,
) (dto.DistributionResponse, error) {
	terms, err := termsFromDTO(req.Terms)
	if err != nil {
		return dto.DistributionResponse{}, fmt.Errorf("parse terms: %w", err)
	}

	currency, err := money.NewCurrency(terms.CurrencyCode())
	if err != nil {
		return dto.DistributionResponse{}, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}
	amount := money.New(req.Amount, currency)

	var result service.ProfitLossResult
	switch req.Mode {
	case dto.DistributionModeProfit:
		result, err = uc.distributor.DistributeProfit(terms, amount)
	case dto.DistributionModeLoss:
		result, err = uc.distributor.AllocateLoss(terms, amount)
	default:
		return dto.DistributionResponse{}, fmt.Errorf("%w: invalid distribution mode %q",
			model.ErrInvalidInput, req.Mode)
	}
	if err != nil {
		return dto.DistributionResponse{}, fmt.Errorf("distribute: %w", err)
	}

	shares := make([]dto.DistributionShareResponse, 0, len(result.Shares))
	for _, s := range result.Shares {
		shares = append(shares, dto.DistributionShareResponse{
			Party:      s.Party,
			Percentage: s.Percentage.Value(),
			Amount:     s.Amount.Amount(),
		})
	}

	warnings := make([]string, 0, len(result.Warnings))
	for _, w := range result.Warnings {
		warnings = append(warnings, string(w))
	}

	return dto.DistributionResponse{
		Mode:        req.Mode,
		TotalAmount: result.TotalAmount.Amount(),
		Currency:    currency.Code(),
		Rule:        result.Rule,
		Approximate: result.Approximate,
		Warnings:    warnings,
		Shares:      shares,
	}, nil
}
