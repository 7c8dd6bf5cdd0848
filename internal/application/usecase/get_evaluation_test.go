package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amanafinance/amana/internal/application/dto"
	"github.com/amanafinance/amana/internal/application/usecase"
	"github.com/amanafinance/amana/internal/domain/model"
	"github.com/amanafinance/amana/internal/domain/valueobject"
)

func storedEvaluation(t *testing.T) model.Evaluation {
	t.Helper()
	ev, err := model.NewEvaluation(
		"tenant-001", "app-001", "Crescent Traders Ltd",
		decimal.NewFromInt(2_000_000), "NGN",
		valueobject.ContractTypeMurabaha, 5,
		model.FinancialInputs{}, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return ev.ClearEvents()
}

func TestGetEvaluation_Execute(t *testing.T) {
	t.Run("finds by evaluation ID", func(t *testing.T) {
		ev := storedEvaluation(t)
		repo := &mockEvaluationRepository{
			findByIDFunc: func(_ context.Context, tenantID, id string) (model.Evaluation, error) {
				assert.Equal(t, "tenant-001", tenantID)
				assert.Equal(t, ev.ID(), id)
				return ev, nil
			},
		}
		uc := usecase.NewGetEvaluationUseCase(repo)

		resp, err := uc.Execute(context.Background(), dto.GetEvaluationRequest{
			TenantID:     "tenant-001",
			EvaluationID: ev.ID(),
		})

		require.NoError(t, err)
		assert.Equal(t, ev.ID(), resp.ID)
		assert.Equal(t, "app-001", resp.ApplicationID)
		assert.Equal(t, "PENDING", resp.Status)
	})

	t.Run("finds by application ID", func(t *testing.T) {
		ev := storedEvaluation(t)
		repo := &mockEvaluationRepository{
			findByApplicationIDFunc: func(_ context.Context, _, applicationID string) (model.Evaluation, error) {
				assert.Equal(t, "app-001", applicationID)
				return ev, nil
			},
		}
		uc := usecase.NewGetEvaluationUseCase(repo)

		resp, err := uc.Execute(context.Background(), dto.GetEvaluationRequest{
			TenantID:      "tenant-001",
			ApplicationID: "app-001",
		})

		require.NoError(t, err)
		assert.Equal(t, ev.ID(), resp.ID)
	})

	t.Run("propagates not found", func(t *testing.T) {
		repo := &mockEvaluationRepository{}
		uc := usecase.NewGetEvaluationUseCase(repo)

		_, err := uc.Execute(context.Background(), dto.GetEvaluationRequest{
			TenantID:     "tenant-001",
			EvaluationID: "missing",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("requires an identifier", func(t *testing.T) {
		repo := &mockEvaluationRepository{}
		uc := usecase.NewGetEvaluationUseCase(repo)

		_, err := uc.Execute(context.Background(), dto.GetEvaluationRequest{TenantID: "tenant-001"})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})
}
