package grpc

import (
	"context"

	"google.golang.org/grpc"
)

const ServiceName = "quickid.v1.IDService"

// Full method names.
const (
	MethodGenerateID       = "/" + ServiceName + "/GenerateID"
	MethodGenerateBatchIDs = "/" + ServiceName + "/GenerateBatchIDs"
	MethodValidateID       = "/" + ServiceName + "/ValidateID"
	MethodParseID          = "/" + ServiceName + "/ParseID"
	MethodVerifyUniqueness = "/" + ServiceName + "/VerifyUniqueness"
	MethodFindDuplicates   = "/" + ServiceName + "/FindDuplicates"
)

// IDServiceServer is the server API for the ID service.
type IDServiceServer interface {
	GenerateID(context.Context, *GenerateIDRequest) (*GenerateIDResponse, error)
	GenerateBatchIDs(context.Context, *GenerateBatchIDsRequest) (*GenerateBatchIDsResponse, error)
	ValidateID(context.Context, *ValidateIDRequest) (*ValidateIDResponse, error)
	ParseID(context.Context, *ParseIDRequest) (*ParseIDResponse, error)
	VerifyUniqueness(context.Context, *VerifyUniquenessRequest) (*VerifyUniquenessResponse, error)
	FindDuplicates(context.Context, *FindDuplicatesRequest) (*FindDuplicatesResponse, error)
}

// RegisterIDServiceServer registers srv on s.
func RegisterIDServiceServer(s grpc.ServiceRegistrar, srv IDServiceServer) {
	s.RegisterService(&serviceDesc, srv)
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*IDServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GenerateID", Handler: unaryHandler(MethodGenerateID, IDServiceServer.GenerateID)},
		{MethodName: "GenerateBatchIDs", Handler: unaryHandler(MethodGenerateBatchIDs, IDServiceServer.GenerateBatchIDs)},
		{MethodName: "ValidateID", Handler: unaryHandler(MethodValidateID, IDServiceServer.ValidateID)},
		{MethodName: "ParseID", Handler: unaryHandler(MethodParseID, IDServiceServer.ParseID)},
		{MethodName: "VerifyUniqueness", Handler: unaryHandler(MethodVerifyUniqueness, IDServiceServer.VerifyUniqueness)},
		{MethodName: "FindDuplicates", Handler: unaryHandler(MethodFindDuplicates, IDServiceServer.FindDuplicates)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "quickid/v1/id_service",
}

// unaryHandler adapts a typed server method to grpc's method handler shape,
// decoding the request and running the interceptor chain.
func unaryHandler[Req, Resp any](
	fullMethod string,
	call func(IDServiceServer, context.Context, *Req) (*Resp, error),
) func(interface{}, context.Context, func(interface{}) error, grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(IDServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(IDServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}
