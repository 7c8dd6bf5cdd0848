package grpc

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/amanafinance/amana/internal/application/dto"
	"github.com/amanafinance/amana/internal/application/usecase"
	"github.com/amanafinance/amana/internal/domain/model"
)

// Compile-time assertion that FinancingHandler implements FinancingServiceServer.
var _ FinancingServiceServer = (*FinancingHandler)(nil)

// FinancingHandler implements the gRPC FinancingServiceServer interface.
type FinancingHandler struct {
	UnimplementedFinancingServiceServer
	generateSchedule *usecase.GenerateScheduleUseCase
	earlySettlement  *usecase.ComputeEarlySettlementUseCase
	distribute       *usecase.DistributeProfitLossUseCase
	contractMetrics  *usecase.ComputeContractMetricsUseCase
	evaluate         *usecase.EvaluateApplicationUseCase
	getEvaluation    *usecase.GetEvaluationUseCase
	logger           *slog.Logger
}

// NewFinancingHandler creates a new gRPC handler with all use-case
// dependencies.
func NewFinancingHandler(
	generateSchedule *usecase.GenerateScheduleUseCase,
	earlySettlement *usecase.ComputeEarlySettlementUseCase,
	distribute *usecase.DistributeProfitLossUseCase,
	contractMetrics *usecase.ComputeContractMetricsUseCase,
	evaluate *usecase.EvaluateApplicationUseCase,
	getEvaluation *usecase.GetEvaluationUseCase,
	logger *slog.Logger,
) *FinancingHandler {
	return &FinancingHandler{
		generateSchedule: generateSchedule,
		earlySettlement:  earlySettlement,
		distribute:       distribute,
		contractMetrics:  contractMetrics,
		evaluate:         evaluate,
		getEvaluation:    getEvaluation,
		logger:           logger,
	}
}

// statusFromError maps domain sentinels onto gRPC status codes. Anything
// unrecognized is an internal error with the detail kept out of the response.
func (h *FinancingHandler) statusFromError(ctx context.Context, op string, err error) error {
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, model.ErrStateInconsistency):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, model.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	default:
		h.logger.ErrorContext(ctx, "operation failed", "op", op, "error", err)
		return status.Error(codes.Internal, "internal error")
	}
}

// GenerateSchedule handles a payment schedule request.
func (h *FinancingHandler) GenerateSchedule(ctx context.Context, req *dto.GenerateScheduleRequest) (*dto.ScheduleResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	resp, err := h.generateSchedule.Execute(ctx, *req)
	if err != nil {
		return nil, h.statusFromError(ctx, "GenerateSchedule", err)
	}
	return &resp, nil
}

// ComputeEarlySettlement handles an early settlement quote request.
func (h *FinancingHandler) ComputeEarlySettlement(ctx context.Context, req *dto.EarlySettlementRequest) (*dto.EarlySettlementResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	resp, err := h.earlySettlement.Execute(ctx, *req)
	if err != nil {
		return nil, h.statusFromError(ctx, "ComputeEarlySettlement", err)
	}
	return &resp, nil
}

// DistributeProfitLoss handles a profit or loss distribution request.
func (h *FinancingHandler) DistributeProfitLoss(ctx context.Context, req *dto.DistributeProfitLossRequest) (*dto.DistributionResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	resp, err := h.distribute.Execute(ctx, *req)
	if err != nil {
		return nil, h.statusFromError(ctx, "DistributeProfitLoss", err)
	}
	return &resp, nil
}

// ComputeContractMetrics handles a contract metrics request.
func (h *FinancingHandler) ComputeContractMetrics(ctx context.Context, req *dto.ContractMetricsRequest) (*dto.ContractMetricsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	resp, err := h.contractMetrics.Execute(ctx, *req)
	if err != nil {
		return nil, h.statusFromError(ctx, "ComputeContractMetrics", err)
	}
	return &resp, nil
}

// EvaluateApplication handles a full underwriting run.
func (h *FinancingHandler) EvaluateApplication(ctx context.Context, req *dto.EvaluateApplicationRequest) (*dto.EvaluationResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	h.logger.InfoContext(ctx, "evaluating application",
		"tenant_id", req.TenantID,
		"application_id", req.ApplicationID,
	)

	resp, err := h.evaluate.Execute(ctx, *req)
	if err != nil {
		return nil, h.statusFromError(ctx, "EvaluateApplication", err)
	}
	return &resp, nil
}

// GetEvaluation retrieves a stored evaluation.
func (h *FinancingHandler) GetEvaluation(ctx context.Context, req *dto.GetEvaluationRequest) (*dto.EvaluationResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	resp, err := h.getEvaluation.Execute(ctx, *req)
	if err != nil {
		return nil, h.statusFromError(ctx, "GetEvaluation", err)
	}
	return &resp, nil
}
