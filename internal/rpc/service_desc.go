package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// Fully-qualified method names of astro.v1.FunctionService.
const (
	ServiceName                 = "astro.v1.FunctionService"
	FunctionServiceCall         = "/" + ServiceName + "/Call"
	FunctionServiceCallBatch    = "/" + ServiceName + "/CallBatch"
	FunctionServiceListFunction = "/" + ServiceName + "/ListFunctions"
)

// FunctionServiceServer is the server API of astro.v1.FunctionService. The
// messages are well-known protobuf types so no generated code is needed:
//
//	Call(Struct{function, args: [..]}) -> Value
//	CallBatch(Struct{function, rows: [[..], ..]}) -> ListValue
//	ListFunctions(Empty) -> ListValue of signature structs
type FunctionServiceServer interface {
	Call(context.Context, *structpb.Struct) (*structpb.Value, error)
	CallBatch(context.Context, *structpb.Struct) (*structpb.ListValue, error)
	ListFunctions(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
}

// RegisterFunctionServiceServer registers srv on s.
func RegisterFunctionServiceServer(s grpc.ServiceRegistrar, srv FunctionServiceServer) {
	s.RegisterService(&FunctionServiceDesc, srv)
}

// FunctionServiceDesc describes astro.v1.FunctionService for grpc.Server.
var FunctionServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*FunctionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Call", Handler: callHandler},
		{MethodName: "CallBatch", Handler: callBatchHandler},
		{MethodName: "ListFunctions", Handler: listFunctionsHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "astro/v1/function_service.proto",
}

func callHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FunctionServiceServer).Call(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FunctionServiceCall}
	return interceptor(ctx, in, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FunctionServiceServer).Call(ctx, req.(*structpb.Struct))
	})
}

func callBatchHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FunctionServiceServer).CallBatch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FunctionServiceCallBatch}
	return interceptor(ctx, in, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FunctionServiceServer).CallBatch(ctx, req.(*structpb.Struct))
	})
}

func listFunctionsHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FunctionServiceServer).ListFunctions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FunctionServiceListFunction}
	return interceptor(ctx, in, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FunctionServiceServer).ListFunctions(ctx, req.(*emptypb.Empty))
	})
}
