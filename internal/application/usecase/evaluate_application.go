package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amanafinance/amana/internal/application/dto"
	"github.com/amanafinance/amana/internal/domain/model"
	"github.com/amanafinance/amana/internal/domain/port"
	"github.com/amanafinance/amana/internal/domain/service"
	"github.com/amanafinance/amana/internal/domain/valueobject"
)

// EvaluateApplicationUseCase orchestrates one underwriting run: it loads or
// creates the evaluation, applies checklist and financial updates, derives
// ratios and risk, and attaches a fresh recommendation. Re-running with the
// same inputs replaces the outcome wholesale.
type EvaluateApplicationUseCase struct {
	evalRepo    port.EvaluationRepository
	publisher   port.EventPublisher
	analyzer    *service.RatioAnalyzer
	recommender *service.UnderwritingRecommender
}

// NewEvaluateApplicationUseCase wires dependencies.
func NewEvaluateApplicationUseCase(
	evalRepo port.EvaluationRepository,
	publisher port.EventPublisher,
	analyzer *service.RatioAnalyzer,
	recommender *service.UnderwritingRecommender,
) *EvaluateApplicationUseCase {
	return &EvaluateApplicationUseCase{
		evalRepo:    evalRepo,
		publisher:   publisher,
		analyzer:    analyzer,
		recommender: recommender,
	}
}

// Execute runs the full pipeline and persists the evaluated aggregate.
func (uc *EvaluateApplicationUseCase) Execute(
	ctx context.Context,
	req dto.EvaluateApplicationRequest,
) (dto.EvaluationResponse, error) {
	now := time.Now().UTC()

	instrument, err := valueobject.NewContractType(req.RequestedInstrument)
	if err != nil {
		return dto.EvaluationResponse{}, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}
	financials := financialsFromDTO(req.Financials)

	// 1. Load the existing evaluation, or create a fresh one.
	ev, err := uc.evalRepo.FindByApplicationID(ctx, req.TenantID, req.ApplicationID)
	switch {
	case err == nil:
		ev, err = ev.UpdateFinancials(financials, now)
		if err != nil {
			return dto.EvaluationResponse{}, fmt.Errorf("update financials: %w", err)
		}
	case errors.Is(err, model.ErrNotFound):
		ev, err = model.NewEvaluation(
			req.TenantID, req.ApplicationID, req.BusinessName,
			req.RequestedAmount, req.Currency, instrument,
			req.YearsInOperation, financials, now,
		)
		if err != nil {
			return dto.EvaluationResponse{}, fmt.Errorf("create evaluation: %w", err)
		}
	default:
		return dto.EvaluationResponse{}, fmt.Errorf("find evaluation: %w", err)
	}

	// 2. Record submitted checklist outcomes.
	for category, checks := range req.Checklist {
		for check, raw := range checks {
			status, err := valueobject.NewCheckStatus(raw)
			if err != nil {
				return dto.EvaluationResponse{}, fmt.Errorf("%w: %s/%s: %v",
					model.ErrInvalidInput, category, check, err)
			}
			ev, err = ev.RecordCheck(valueobject.ChecklistCategory(category), check, status, now)
			if err != nil {
				return dto.EvaluationResponse{}, fmt.Errorf("record check %s/%s: %w", category, check, err)
			}
		}
	}

	// 3. Derive ratios and risk.
	ratios, risk, err := uc.analyzer.Analyze(ev.Financials())
	if err != nil {
		return dto.EvaluationResponse{}, fmt.Errorf("analyze financials: %w", err)
	}

	// 4. Run the recommendation rule chain.
	recommendation := uc.recommender.Recommend(service.RecommendationInput{
		Checklist:           ev.Checklist(),
		Ratios:              ratios,
		Risk:                risk,
		RequestedAmount:     ev.RequestedAmount(),
		RequestedInstrument: ev.RequestedInstrument(),
		YearsInOperation:    ev.YearsInOperation(),
	})

	// 5. Attach the outcome.
	ev, err = ev.Complete(ratios, risk, recommendation, now)
	if err != nil {
		return dto.EvaluationResponse{}, fmt.Errorf("complete evaluation: %w", err)
	}

	// 6. Persist.
	if err := uc.evalRepo.Save(ctx, ev); err != nil {
		return dto.EvaluationResponse{}, fmt.Errorf("save evaluation: %w", err)
	}

	// 7. Publish domain events.
	if err := uc.publisher.Publish(ctx, ev.DomainEvents()...); err != nil {
		return dto.EvaluationResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toEvaluationResponse(ev), nil
}

func financialsFromDTO(in dto.FinancialInputsRequest) model.FinancialInputs {
	return model.FinancialInputs{
		CurrentAssets:      in.CurrentAssets,
		CurrentLiabilities: in.CurrentLiabilities,
		TotalAssets:        in.TotalAssets,
		TotalLiabilities:   in.TotalLiabilities,
		TotalEquity:        in.TotalEquity,
		Revenue:            in.Revenue,
		NetIncome:          in.NetIncome,
		OperatingIncome:    in.OperatingIncome,
		Inventory:          in.Inventory,
		CostOfGoodsSold:    in.CostOfGoodsSold,
	}
}

func toEvaluationResponse(ev model.Evaluation) dto.EvaluationResponse {
	checklist := make(map[string]map[string]string, len(ev.Checklist()))
	for category, checks := range ev.Checklist() {
		m := make(map[string]string, len(checks))
		for check, status := range checks {
			m[check] = status.String()
		}
		checklist[string(category)] = m
	}

	ratios := ev.Ratios()
	risk := ev.Risk()
	rec := ev.Recommendation()

	return dto.EvaluationResponse{
		ID:                  ev.ID(),
		TenantID:            ev.TenantID(),
		ApplicationID:       ev.ApplicationID(),
		BusinessName:        ev.BusinessName(),
		RequestedAmount:     ev.RequestedAmount(),
		Currency:            ev.Currency(),
		RequestedInstrument: ev.RequestedInstrument().String(),
		YearsInOperation:    ev.YearsInOperation(),
		Status:              ev.Status().String(),
		Checklist:           checklist,
		DueDiligenceScore:   decimal.NewFromFloat(ev.Checklist().CompletionScore()).Round(1),
		Ratios: dto.FinancialRatiosResponse{
			CurrentRatio:      ratios.CurrentRatio,
			DebtToEquity:      ratios.DebtToEquity,
			ReturnOnAssets:    ratios.ReturnOnAssets,
			ReturnOnEquity:    ratios.ReturnOnEquity,
			ProfitMargin:      ratios.ProfitMargin,
			OperatingMargin:   ratios.OperatingMargin,
			InventoryTurnover: ratios.InventoryTurnover,
		},
		Risk: dto.RiskAssessmentResponse{
			Score:        risk.Score,
			RiskTier:     risk.RiskTier.String(),
			CreditRating: risk.CreditRating,
		},
		Recommendation: dto.RecommendationResponse{
			Decision:              rec.Decision.String(),
			CompositeScore:        rec.CompositeScore,
			Reasoning:             rec.Reasoning,
			Strengths:             rec.Strengths,
			Concerns:              rec.Concerns,
			Conditions:            rec.Conditions,
			RecommendedInstrument: rec.RecommendedInstrument.String(),
			RecommendedRate:       rec.RecommendedRate.Value(),
			RecommendedTermMonths: rec.RecommendedTermMonths,
			RecommendedAmount:     rec.RecommendedAmount,
		},
		Version:   ev.Version(),
		CreatedAt: ev.CreatedAt(),
		UpdatedAt: ev.UpdatedAt(),
	}
}
