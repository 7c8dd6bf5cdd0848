package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amanafinance/amana/internal/application/dto"
	"github.com/amanafinance/amana/internal/application/usecase"
	"github.com/amanafinance/amana/internal/domain/model"
	"github.com/amanafinance/amana/internal/domain/service"
)

func silentPartnershipTermsRequest() dto.ContractTermsRequest {
	return dto.ContractTermsRequest{
		ContractType: "MUDARABAH",
		SilentPartnership: &dto.SilentPartnershipTermsRequest{
			CapitalAmount:           decimal.NewFromInt(1_000_000),
			InvestorProfitShare:     decimal.NewFromInt(70),
			CounterpartyProfitShare: decimal.NewFromInt(30),
			Currency:                "NGN",
		},
	}
}

func TestDistributeProfitLoss_Execute(t *testing.T) {
	uc := usecase.NewDistributeProfitLossUseCase(service.NewProfitLossDistributor())

	t.Run("distributes profit by ratio", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), dto.DistributeProfitLossRequest{
			Terms:  silentPartnershipTermsRequest(),
			Mode:   dto.DistributionModeProfit,
			Amount: decimal.NewFromInt(100_000),
		})

		require.NoError(t, err)
		assert.Equal(t, dto.DistributionModeProfit, resp.Mode)
		assert.Equal(t, "NGN", resp.Currency)
		assert.False(t, resp.Approximate)
		require.Len(t, resp.Shares, 2)

		total := decimal.Zero
		byParty := map[string]decimal.Decimal{}
		for _, s := range resp.Shares {
			total = total.Add(s.Amount)
			byParty[s.Party] = s.Amount
		}
		assert.True(t, total.Equal(decimal.NewFromInt(100_000)))
		assert.True(t, byParty[service.PartyInvestor].Equal(decimal.NewFromInt(70_000)))
		assert.True(t, byParty[service.PartyBusiness].Equal(decimal.NewFromInt(30_000)))
	})

	t.Run("allocates mudarabah loss to the investor", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), dto.DistributeProfitLossRequest{
			Terms:  silentPartnershipTermsRequest(),
			Mode:   dto.DistributionModeLoss,
			Amount: decimal.NewFromInt(50_000),
		})

		require.NoError(t, err)
		byParty := map[string]decimal.Decimal{}
		for _, s := range resp.Shares {
			byParty[s.Party] = s.Amount
		}
		assert.True(t, byParty[service.PartyInvestor].Equal(decimal.NewFromInt(50_000)))
		assert.True(t, byParty[service.PartyBusiness].IsZero())
	})

	t.Run("flags joint-venture loss fallback as approximate", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), dto.DistributeProfitLossRequest{
			Terms: dto.ContractTermsRequest{
				ContractType: "MUSHARAKAH",
				JointVenture: &dto.JointVentureTermsRequest{
					CapitalAmount:           decimal.NewFromInt(1_000_000),
					InvestorProfitShare:     decimal.NewFromInt(60),
					CounterpartyProfitShare: decimal.NewFromInt(40),
					Currency:                "NGN",
				},
			},
			Mode:   dto.DistributionModeLoss,
			Amount: decimal.NewFromInt(100_000),
		})

		require.NoError(t, err)
		assert.True(t, resp.Approximate)
		require.NotEmpty(t, resp.Warnings)
	})

	t.Run("rejects an unknown mode", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), dto.DistributeProfitLossRequest{
			Terms:  silentPartnershipTermsRequest(),
			Mode:   "SPLIT",
			Amount: decimal.NewFromInt(100_000),
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("rejects non-partnership contracts", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), dto.DistributeProfitLossRequest{
			Terms:  costPlusTermsRequest(),
			Mode:   dto.DistributionModeProfit,
			Amount: decimal.NewFromInt(100_000),
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})
}
