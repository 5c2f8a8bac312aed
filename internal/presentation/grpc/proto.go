package grpc

// proto.go defines the gRPC server interface derived from
// assessment/v1/assessment.proto. This file serves as a stand-in for
// buf-generated code; messages travel over the JSON codec registered in
// json_codec.go.

import (
	"context"
	"time"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ---------------------------------------------------------------------------
// Wire messages
// ---------------------------------------------------------------------------

// SubmitAssessmentRequest carries one applicant snapshot. Monetary
// amounts travel as strings and are parsed into decimals at the handler
// boundary.
type SubmitAssessmentRequest struct {
	CorrelationID         string `json:"correlation_id"`
	Age                   int    `json:"age"`
	EmploymentType        string `json:"employment_type"`
	EmploymentYears       string `json:"employment_years"`
	MonthlyIncome         string `json:"monthly_income"`
	CreditScore           int    `json:"credit_score"`
	ExistingMonthlyEMI    string `json:"existing_monthly_emi"`
	ExistingLoanCount     int    `json:"existing_loan_count"`
	RequestedPrincipal    string `json:"requested_principal"`
	ProductType           string `json:"product_type"`
	RequestedTenureMonths int    `json:"requested_tenure_months"`
}

// CheckpointMessage is one audited rule evaluation.
type CheckpointMessage struct {
	Label  string `json:"label"`
	Status string `json:"status"`
	Detail string `json:"detail"`
}

// AssessmentMessage is the wire representation of an assessment.
type AssessmentMessage struct {
	ID                        string              `json:"id"`
	CorrelationID             string              `json:"correlation_id"`
	Decision                  string              `json:"decision"`
	CompositeScore            int                 `json:"composite_score"`
	DTIRatioPercent           string              `json:"dti_ratio_percent"`
	EstimatedNewEMI           string              `json:"estimated_new_emi"`
	CombinedMonthlyObligation string              `json:"combined_monthly_obligation"`
	Checkpoints               []CheckpointMessage `json:"checkpoints"`
	PolicyVersion             string              `json:"policy_version"`
	CreatedAt                 time.Time           `json:"created_at"`
}

// SubmitAssessmentResponse wraps the completed assessment.
type SubmitAssessmentResponse struct {
	Assessment AssessmentMessage `json:"assessment"`
}

// GetAssessmentRequest identifies a past assessment.
type GetAssessmentRequest struct {
	AssessmentID string `json:"assessment_id"`
}

// GetAssessmentResponse wraps the retrieved assessment.
type GetAssessmentResponse struct {
	Assessment AssessmentMessage `json:"assessment"`
}

// ---------------------------------------------------------------------------
// Service interface and registration
// ---------------------------------------------------------------------------

// AssessmentServiceServer is the server API for AssessmentService.
type AssessmentServiceServer interface {
	SubmitAssessment(context.Context, *SubmitAssessmentRequest) (*SubmitAssessmentResponse, error)
	GetAssessment(context.Context, *GetAssessmentRequest) (*GetAssessmentResponse, error)
	mustEmbedUnimplementedAssessmentServiceServer()
}

// UnimplementedAssessmentServiceServer provides forward-compatible default implementations.
type UnimplementedAssessmentServiceServer struct{}

func (UnimplementedAssessmentServiceServer) SubmitAssessment(context.Context, *SubmitAssessmentRequest) (*SubmitAssessmentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitAssessment not implemented")
}
func (UnimplementedAssessmentServiceServer) GetAssessment(context.Context, *GetAssessmentRequest) (*GetAssessmentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetAssessment not implemented")
}
func (UnimplementedAssessmentServiceServer) mustEmbedUnimplementedAssessmentServiceServer() {}

// RegisterAssessmentServiceServer registers the AssessmentServiceServer
// with the gRPC server.
func RegisterAssessmentServiceServer(s *grpclib.Server, srv AssessmentServiceServer) {
	s.RegisterService(&_AssessmentService_serviceDesc, srv)
}

var _AssessmentService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "assessment.v1.AssessmentService",
	HandlerType: (*AssessmentServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "SubmitAssessment", Handler: _AssessmentService_SubmitAssessment_Handler},
		{MethodName: "GetAssessment", Handler: _AssessmentService_GetAssessment_Handler},
	},
	Streams: []grpclib.StreamDesc{},
}

func _AssessmentService_SubmitAssessment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitAssessmentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AssessmentServiceServer).SubmitAssessment(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/assessment.v1.AssessmentService/SubmitAssessment",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AssessmentServiceServer).SubmitAssessment(ctx, req.(*SubmitAssessmentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AssessmentService_GetAssessment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetAssessmentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AssessmentServiceServer).GetAssessment(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/assessment.v1.AssessmentService/GetAssessment",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AssessmentServiceServer).GetAssessment(ctx, req.(*GetAssessmentRequest))
	}
	return interceptor(ctx, in, info, handler)
}
