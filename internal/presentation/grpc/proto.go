package grpc

// proto.go defines the gRPC server interface derived from
// amana/financing/v1/financing.proto. This file serves as a stand-in for
// buf-generated code. Once `buf generate` is run, replace this file with the
// import from github.com/amanafinance/amana/api/gen/go/amana/financing/v1.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/amanafinance/amana/internal/application/dto"
)

// FinancingServiceServer is the server API for FinancingService. The message
// types are the application DTOs, which carry the proto-aligned JSON tags the
// codec frames with.
type FinancingServiceServer interface {
	GenerateSchedule(context.Context, *dto.GenerateScheduleRequest) (*dto.ScheduleResponse, error)
	ComputeEarlySettlement(context.Context, *dto.EarlySettlementRequest) (*dto.EarlySettlementResponse, error)
	DistributeProfitLoss(context.Context, *dto.DistributeProfitLossRequest) (*dto.DistributionResponse, error)
	ComputeContractMetrics(context.Context, *dto.ContractMetricsRequest) (*dto.ContractMetricsResponse, error)
	EvaluateApplication(context.Context, *dto.EvaluateApplicationRequest) (*dto.EvaluationResponse, error)
	GetEvaluation(context.Context, *dto.GetEvaluationRequest) (*dto.EvaluationResponse, error)
	mustEmbedUnimplementedFinancingServiceServer()
}

// UnimplementedFinancingServiceServer provides forward-compatible default
// implementations.
type UnimplementedFinancingServiceServer struct{}

func (UnimplementedFinancingServiceServer) GenerateSchedule(context.Context, *dto.GenerateScheduleRequest) (*dto.ScheduleResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GenerateSchedule not implemented")
}
func (UnimplementedFinancingServiceServer) ComputeEarlySettlement(context.Context, *dto.EarlySettlementRequest) (*dto.EarlySettlementResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ComputeEarlySettlement not implemented")
}
func (UnimplementedFinancingServiceServer) DistributeProfitLoss(context.Context, *dto.DistributeProfitLossRequest) (*dto.DistributionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DistributeProfitLoss not implemented")
}
func (UnimplementedFinancingServiceServer) ComputeContractMetrics(context.Context, *dto.ContractMetricsRequest) (*dto.ContractMetricsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ComputeContractMetrics not implemented")
}
func (UnimplementedFinancingServiceServer) EvaluateApplication(context.Context, *dto.EvaluateApplicationRequest) (*dto.EvaluationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method EvaluateApplication not implemented")
}
func (UnimplementedFinancingServiceServer) GetEvaluation(context.Context, *dto.GetEvaluationRequest) (*dto.EvaluationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetEvaluation not implemented")
}
func (UnimplementedFinancingServiceServer) mustEmbedUnimplementedFinancingServiceServer() {}

// RegisterFinancingServiceServer registers the FinancingServiceServer with
// the gRPC server.
func RegisterFinancingServiceServer(s *grpclib.Server, srv FinancingServiceServer) {
	s.RegisterService(&_FinancingService_serviceDesc, srv)
}

var _FinancingService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "amana.financing.v1.FinancingService",
	HandlerType: (*FinancingServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "GenerateSchedule", Handler: _FinancingService_GenerateSchedule_Handler},
		{MethodName: "ComputeEarlySettlement", Handler: _FinancingService_ComputeEarlySettlement_Handler},
		{MethodName: "DistributeProfitLoss", Handler: _FinancingService_DistributeProfitLoss_Handler},
		{MethodName: "ComputeContractMetrics", Handler: _FinancingService_ComputeContractMetrics_Handler},
		{MethodName: "EvaluateApplication", Handler: _FinancingService_EvaluateApplication_Handler},
		{MethodName: "GetEvaluation", Handler: _FinancingService_GetEvaluation_Handler},
	},
	Streams: []grpclib.StreamDesc{},
}

func _FinancingService_GenerateSchedule_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(dto.GenerateScheduleRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(FinancingServiceServer).GenerateSchedule(ctx, req)
}

func _FinancingService_ComputeEarlySettlement_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(dto.EarlySettlementRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(FinancingServiceServer).ComputeEarlySettlement(ctx, req)
}

func _FinancingService_DistributeProfitLoss_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(dto.DistributeProfitLossRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(FinancingServiceServer).DistributeProfitLoss(ctx, req)
}

func _FinancingService_ComputeContractMetrics_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(dto.ContractMetricsRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(FinancingServiceServer).ComputeContractMetrics(ctx, req)
}

func _FinancingService_EvaluateApplication_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(dto.EvaluateApplicationRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(FinancingServiceServer).EvaluateApplication(ctx, req)
}

func _FinancingService_GetEvaluation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(dto.GetEvaluationRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(FinancingServiceServer).GetEvaluation(ctx, req)
}
