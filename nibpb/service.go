package nibpb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// NIBServiceServer is the server API for the NIB inspection service.
type NIBServiceServer interface {
	ListNeighbors(context.Context, *ListNeighborsRequest) (*ListNeighborsResponse, error)
	ListDefaultRouters(context.Context, *ListDefaultRoutersRequest) (*ListDefaultRoutersResponse, error)
	ListRoutes(context.Context, *ListRoutesRequest) (*ListRoutesResponse, error)
	ListABRs(context.Context, *ListABRsRequest) (*ListABRsResponse, error)
	GetRoute(context.Context, *GetRouteRequest) (*GetRouteResponse, error)
}

// UnimplementedNIBServiceServer may be embedded to satisfy
// NIBServiceServer for methods not yet implemented.
type UnimplementedNIBServiceServer struct{}

func (UnimplementedNIBServiceServer) ListNeighbors(context.Context, *ListNeighborsRequest) (*ListNeighborsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListNeighbors not implemented")
}

func (UnimplementedNIBServiceServer) ListDefaultRouters(context.Context, *ListDefaultRoutersRequest) (*ListDefaultRoutersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListDefaultRouters not implemented")
}

func (UnimplementedNIBServiceServer) ListRoutes(context.Context, *ListRoutesRequest) (*ListRoutesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListRoutes not implemented")
}

func (UnimplementedNIBServiceServer) ListABRs(context.Context, *ListABRsRequest) (*ListABRsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListABRs not implemented")
}

func (UnimplementedNIBServiceServer) GetRoute(context.Context, *GetRouteRequest) (*GetRouteResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetRoute not implemented")
}

// RegisterNIBServiceServer registers srv with s.
func RegisterNIBServiceServer(s grpc.ServiceRegistrar, srv NIBServiceServer) {
	s.RegisterService(&NIBService_ServiceDesc, srv)
}

func _NIBService_ListNeighbors_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListNeighborsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NIBServiceServer).ListNeighbors(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/nibpb.NIBService/ListNeighbors"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NIBServiceServer).ListNeighbors(ctx, req.(*ListNeighborsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _NIBService_ListDefaultRouters_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListDefaultRoutersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NIBServiceServer).ListDefaultRouters(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/nibpb.NIBService/ListDefaultRouters"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NIBServiceServer).ListDefaultRouters(ctx, req.(*ListDefaultRoutersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _NIBService_ListRoutes_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListRoutesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NIBServiceServer).ListRoutes(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/nibpb.NIBService/ListRoutes"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NIBServiceServer).ListRoutes(ctx, req.(*ListRoutesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _NIBService_ListABRs_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListABRsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NIBServiceServer).ListABRs(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/nibpb.NIBService/ListABRs"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NIBServiceServer).ListABRs(ctx, req.(*ListABRsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _NIBService_GetRoute_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetRouteRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NIBServiceServer).GetRoute(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/nibpb.NIBService/GetRoute"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NIBServiceServer).GetRoute(ctx, req.(*GetRouteRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// NIBService_ServiceDesc is the grpc.ServiceDesc for NIBService.
var NIBService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "nibpb.NIBService",
	HandlerType: (*NIBServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListNeighbors", Handler: _NIBService_ListNeighbors_Handler},
		{MethodName: "ListDefaultRouters", Handler: _NIBService_ListDefaultRouters_Handler},
		{MethodName: "ListRoutes", Handler: _NIBService_ListRoutes_Handler},
		{MethodName: "ListABRs", Handler: _NIBService_ListABRs_Handler},
		{MethodName: "GetRoute", Handler: _NIBService_GetRoute_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "nibpb/nib.proto",
}

// NIBServiceClient is the client API for the NIB inspection service.
type NIBServiceClient interface {
	ListNeighbors(ctx context.Context, in *ListNeighborsRequest, opts ...grpc.CallOption) (*ListNeighborsResponse, error)
	ListDefaultRouters(ctx context.Context, in *ListDefaultRoutersRequest, opts ...grpc.CallOption) (*ListDefaultRoutersResponse, error)
	ListRoutes(ctx context.Context, in *ListRoutesRequest, opts ...grpc.CallOption) (*ListRoutesResponse, error)
	ListABRs(ctx context.Context, in *ListABRsRequest, opts ...grpc.CallOption) (*ListABRsResponse, error)
	GetRoute(ctx context.Context, in *GetRouteRequest, opts ...grpc.CallOption) (*GetRouteResponse, error)
}

type nibServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewNIBServiceClient constructs a client bound to cc.
func NewNIBServiceClient(cc grpc.ClientConnInterface) NIBServiceClient {
	return &nibServiceClient{cc}
}

func (c *nibServiceClient) ListNeighbors(ctx context.Context, in *ListNeighborsRequest, opts ...grpc.CallOption) (*ListNeighborsResponse, error) {
	out := new(ListNeighborsResponse)
	if err := c.cc.Invoke(ctx, "/nibpb.NIBService/ListNeighbors", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *nibServiceClient) ListDefaultRouters(ctx context.Context, in *ListDefaultRoutersRequest, opts ...grpc.CallOption) (*ListDefaultRoutersResponse, error) {
	out := new(ListDefaultRoutersResponse)
	if err := c.cc.Invoke(ctx, "/nibpb.NIBService/ListDefaultRouters", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *nibServiceClient) ListRoutes(ctx context.Context, in *ListRoutesRequest, opts ...grpc.CallOption) (*ListRoutesResponse, error) {
	out := new(ListRoutesResponse)
	if err := c.cc.Invoke(ctx, "/nibpb.NIBService/ListRoutes", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *nibServiceClient) ListABRs(ctx context.Context, in *ListABRsRequest, opts ...grpc.CallOption) (*ListABRsResponse, error) {
	out := new(ListABRsResponse)
	if err := c.cc.Invoke(ctx, "/nibpb.NIBService/ListABRs", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *nibServiceClient) GetRoute(ctx context.Context, in *GetRouteRequest, opts ...grpc.CallOption) (*GetRouteResponse, error) {
	out := new(GetRouteResponse)
	if err := c.cc.Invoke(ctx, "/nibpb.NIBService/GetRoute", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
