package usecase

import (
	"context"
	"fmt"

	"github.com/amanafinance/amana/internal/application/dto"
	"github.com/amanafinance/amana/internal/domain/model"
	"github.com/amanafinance/amana/internal/domain/port"
)

// GetEvaluationUseCase retrieves an evaluation by its own ID or by the
// application it belongs to.
type GetEvaluationUseCase struct {
	evalRepo port.EvaluationRepository
}

// NewGetEvaluationUseCase wires dependencies.
func NewGetEvaluationUseCase(evalRepo port.EvaluationRepository) *GetEvaluationUseCase {
	return &GetEvaluationUseCase{evalRepo: evalRepo}
}

// Execute returns the evaluation matching the request. EvaluationID wins when
// both identifiers are set.
func (uc *GetEvaluationUseCase) Execute(
	ctx context.Context,
	req dto.GetEvaluationRequest,
) (dto.EvaluationResponse, error) {
	switch {
	case req.EvaluationID != "":
		ev, err := uc.evalRepo.FindByID(ctx, req.TenantID, req.EvaluationID)
		if err != nil {
			return dto.EvaluationResponse{}, fmt.Errorf("find evaluation: %w", err)
		}
		return toEvaluationResponse(ev), nil

	case req.ApplicationID != "":
		ev, err := uc.evalRepo.FindByApplicationID(ctx, req.TenantID, req.ApplicationID)
		if err != nil {
			return dto.EvaluationResponse{}, fmt.Errorf("find evaluation: %w", err)
		}
		return toEvaluationResponse(ev), nil

	default:
		return dto.EvaluationResponse{}, fmt.Errorf("%w: evaluation ID or application ID is required",
			model.ErrInvalidInput)
	}
}
