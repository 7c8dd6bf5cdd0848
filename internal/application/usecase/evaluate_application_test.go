package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amanafinance/amana/internal/application/dto"
	"github.com/amanafinance/amana/internal/application/usecase"
	"github.com/amanafinance/amana/internal/domain/event"
	"github.com/amanafinance/amana/internal/domain/model"
	"github.com/amanafinance/amana/internal/domain/service"
)

// --- Mock implementations ---

type mockEvaluationRepository struct {
	saveFunc                func(ctx context.Context, ev model.Evaluation) error
	findByIDFunc            func(ctx context.Context, tenantID, id string) (model.Evaluation, error)
	findByApplicationIDFunc func(ctx context.Context, tenantID, applicationID string) (model.Evaluation, error)
	savedEvaluations        []model.Evaluation
}

func (m *mockEvaluationRepository) Save(ctx context.Context, ev model.Evaluation) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, ev)
	}
	m.savedEvaluations = append(m.savedEvaluations, ev)
	return nil
}

func (m *mockEvaluationRepository) FindByID(ctx context.Context, tenantID, id string) (model.Evaluation, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, tenantID, id)
	}
	return model.Evaluation{}, fmt.Errorf("evaluation %s: %w", id, model.ErrNotFound)
}

func (m *mockEvaluationRepository) FindByApplicationID(ctx context.Context, tenantID, applicationID string) (model.Evaluation, error) {
	if m.findByApplicationIDFunc != nil {
		return m.findByApplicationIDFunc(ctx, tenantID, applicationID)
	}
	return model.Evaluation{}, fmt.Errorf("evaluation for application %s: %w", applicationID, model.ErrNotFound)
}

type mockEventPublisher struct {
	publishFunc     func(ctx context.Context, events ...event.DomainEvent) error
	publishedEvents []event.DomainEvent
}

func (m *mockEventPublisher) Publish(ctx context.Context, evts ...event.DomainEvent) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, evts...)
	}
	m.publishedEvents = append(m.publishedEvents, evts...)
	return nil
}

// --- Tests ---

func strongFinancials() dto.FinancialInputsRequest {
	return dto.FinancialInputsRequest{
		CurrentAssets:      decimal.NewFromInt(250_000),
		CurrentLiabilities: decimal.NewFromInt(100_000),
		TotalAssets:        decimal.NewFromInt(150_000),
		TotalLiabilities:   decimal.NewFromInt(40_000),
		TotalEquity:        decimal.NewFromInt(100_000),
		Revenue:            decimal.NewFromInt(100_000),
		NetIncome:          decimal.NewFromInt(18_000),
		OperatingIncome:    decimal.NewFromInt(22_000),
		Inventory:          decimal.NewFromInt(10_000),
		CostOfGoodsSold:    decimal.NewFromInt(50_000),
	}
}

func fullChecklist(status string) map[string]map[string]string {
	standard := map[string][]string{
		"financial":   {"financialStatementsReviewed", "bankStatementsVerified", "cashFlowAnalyzed", "debtEquityRatioAcceptable", "profitabilityAcceptable"},
		"legal":       {"businessRegistrationValid", "licensesVerified", "taxComplianceConfirmed", "regulatoryApprovalsObtained"},
		"identity":    {"bvnVerified", "identityDocumentsValid", "backgroundCheckCleared", "ownershipStructureConfirmed"},
		"operational": {"businessViabilityConfirmed", "industryAnalysisCompleted", "businessModelAssessed", "marketPositionEvaluated"},
		"collateral":  {"assetValuationCompleted", "titleDocumentsVerified", "insuranceCoverageConfirmed", "legalEncumbrancesChecked"},
		"shariah":     {"businessActivitiesHalal", "noInterestBasedOperations", "noProhibitedSectors"},
	}
	out := make(map[string]map[string]string, len(standard))
	for category, checks := range standard {
		m := make(map[string]string, len(checks))
		for _, check := range checks {
			m[check] = status
		}
		out[category] = m
	}
	return out
}

func validEvaluateRequest() dto.EvaluateApplicationRequest {
	return dto.EvaluateApplicationRequest{
		TenantID:            "tenant-001",
		ApplicationID:       "app-001",
		BusinessName:        "Crescent Traders Ltd",
		RequestedAmount:     decimal.NewFromInt(2_000_000),
		Currency:            "NGN",
		RequestedInstrument: "MURABAHA",
		YearsInOperation:    5,
		Financials:          strongFinancials(),
		Checklist:           fullChecklist("PASS"),
	}
}

func newEvaluateUseCase(repo *mockEvaluationRepository, publisher *mockEventPublisher) *usecase.EvaluateApplicationUseCase {
	return usecase.NewEvaluateApplicationUseCase(
		repo, publisher,
		service.NewRatioAnalyzer(),
		service.NewUnderwritingRecommender(service.DefaultRecommenderConfig()),
	)
}

func TestEvaluateApplication_Execute(t *testing.T) {
	t.Run("approves a strong application end to end", func(t *testing.T) {
		repo := &mockEvaluationRepository{}
		publisher := &mockEventPublisher{}
		uc := newEvaluateUseCase(repo, publisher)

		resp, err := uc.Execute(context.Background(), validEvaluateRequest())

		require.NoError(t, err)
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, "EVALUATED", resp.Status)
		assert.Equal(t, "APPROVE", resp.Recommendation.Decision)
		assert.True(t, resp.Recommendation.CompositeScore.Equal(decimal.NewFromInt(100)),
			"composite %s", resp.Recommendation.CompositeScore)
		assert.Equal(t, "LOW", resp.Risk.RiskTier)
		assert.Equal(t, "A+", resp.Risk.CreditRating)
		assert.True(t, resp.DueDiligenceScore.Equal(decimal.NewFromInt(100)))
		assert.True(t, resp.Recommendation.RecommendedRate.Equal(decimal.NewFromInt(10)))
		assert.Equal(t, 24, resp.Recommendation.RecommendedTermMonths)

		require.Len(t, repo.savedEvaluations, 1)
		assert.NotEmpty(t, publisher.publishedEvents)

		types := make([]string, 0, len(publisher.publishedEvents))
		for _, e := range publisher.publishedEvents {
			types = append(types, e.EventType())
		}
		assert.Contains(t, types, "financing.evaluation.created")
		assert.Contains(t, types, "financing.evaluation.completed")
	})

	t.Run("rejects when a shariah check fails", func(t *testing.T) {
		repo := &mockEvaluationRepository{}
		publisher := &mockEventPublisher{}
		uc := newEvaluateUseCase(repo, publisher)

		req := validEvaluateRequest()
		req.Checklist["shariah"]["noInterestBasedOperations"] = "FAIL"
		resp, err := uc.Execute(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "REJECT", resp.Recommendation.Decision)
		assert.Contains(t, resp.Recommendation.Reasoning, "REJECT: Business activities not Shariah-compliant.")

		types := make([]string, 0, len(publisher.publishedEvents))
		for _, e := range publisher.publishedEvents {
			types = append(types, e.EventType())
		}
		assert.Contains(t, types, "financing.application.rejected")
	})

	t.Run("re-evaluates an existing application in place", func(t *testing.T) {
		req := validEvaluateRequest()
		repo := &mockEvaluationRepository{}
		publisher := &mockEventPublisher{}
		uc := newEvaluateUseCase(repo, publisher)

		first, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		require.Len(t, repo.savedEvaluations, 1)
		existing := repo.savedEvaluations[0].ClearEvents()

		repo.findByApplicationIDFunc = func(_ context.Context, _, _ string) (model.Evaluation, error) {
			return existing, nil
		}

		second, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "APPROVE", second.Recommendation.Decision)
		require.Len(t, repo.savedEvaluations, 2)

		// Only the re-run's events are published the second time.
		for _, e := range publisher.publishedEvents {
			assert.NotEmpty(t, e.EventType())
		}
	})

	t.Run("rejects an invalid check status", func(t *testing.T) {
		repo := &mockEvaluationRepository{}
		publisher := &mockEventPublisher{}
		uc := newEvaluateUseCase(repo, publisher)

		req := validEvaluateRequest()
		req.Checklist["shariah"]["businessActivitiesHalal"] = "MAYBE"
		_, err := uc.Execute(context.Background(), req)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("rejects an unknown instrument", func(t *testing.T) {
		repo := &mockEvaluationRepository{}
		publisher := &mockEventPublisher{}
		uc := newEvaluateUseCase(repo, publisher)

		req := validEvaluateRequest()
		req.RequestedInstrument = "CONVENTIONAL_LOAN"
		_, err := uc.Execute(context.Background(), req)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("rejects negative financial figures", func(t *testing.T) {
		repo := &mockEvaluationRepository{}
		publisher := &mockEventPublisher{}
		uc := newEvaluateUseCase(repo, publisher)

		req := validEvaluateRequest()
		req.Financials.Revenue = decimal.NewFromInt(-1)
		_, err := uc.Execute(context.Background(), req)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("fails when repository save fails", func(t *testing.T) {
		repo := &mockEvaluationRepository{
			saveFunc: func(_ context.Context, _ model.Evaluation) error {
				return fmt.Errorf("database unavailable")
			},
		}
		publisher := &mockEventPublisher{}
		uc := newEvaluateUseCase(repo, publisher)

		_, err := uc.Execute(context.Background(), validEvaluateRequest())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "save evaluation")
	})

	t.Run("fails when event publishing fails", func(t *testing.T) {
		repo := &mockEvaluationRepository{}
		publisher := &mockEventPublisher{
			publishFunc: func(_ context.Context, _ ...event.DomainEvent) error {
				return fmt.Errorf("kafka unavailable")
			},
		}
		uc := newEvaluateUseCase(repo, publisher)

		_, err := uc.Execute(context.Background(), validEvaluateRequest())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "publish events")
	})
}
