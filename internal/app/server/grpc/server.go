// Package grpc exposes the redirect resolver as the shortener.v1.Redirector
// gRPC service. Messages are protobuf well-known types, so no generated
// code is needed: Resolve takes a google.protobuf.Struct with "id" and the
// optional "user_id", "method" and "host" keys, and returns the destination
// as a google.protobuf.StringValue.
package grpc

import (
	"context"
	"errors"
	"net"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/atinyakov/go-url-redirector/internal/app/service"
	"github.com/atinyakov/go-url-redirector/internal/intercepters"
	"github.com/atinyakov/go-url-redirector/internal/middleware"
	"github.com/atinyakov/go-url-redirector/internal/storage"
)

const (
	ServiceName   = "shortener.v1.Redirector"
	ResolveMethod = "/" + ServiceName + "/Resolve"
)

// RedirectorServer is the server API of shortener.v1.Redirector.
type RedirectorServer interface {
	Resolve(context.Context, *structpb.Struct) (*wrapperspb.StringValue, error)
}

var redirectorServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*RedirectorServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Resolve", Handler: resolveHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "shortener/v1/redirector.proto",
}

func resolveHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RedirectorServer).Resolve(ctx, in)
	}

	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ResolveMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RedirectorServer).Resolve(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// RedirectorClient calls shortener.v1.Redirector.
type RedirectorClient struct {
	cc grpc.ClientConnInterface
}

// NewRedirectorClient returns a client bound to cc.
func NewRedirectorClient(cc grpc.ClientConnInterface) *RedirectorClient {
	return &RedirectorClient{cc: cc}
}

func (c *RedirectorClient) Resolve(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, ResolveMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// Server wraps the gRPC server and dependencies.
type Server struct {
	grpcServer *grpc.Server
	addr       string
	logger     *zap.Logger
}

// New creates a gRPC server with request logging and the host filter chained
// in front of the resolver.
func New(addr string, resolver service.ResolverIface, hosts *middleware.HostFilter, logger *zap.Logger) *Server {
	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logging.UnaryServerInterceptor(intercepters.InterceptorLogger(logger)),
			hosts.UnaryServerInterceptor(),
		),
	)
	s.RegisterService(&redirectorServiceDesc, &redirectorServer{resolver: resolver})

	return &Server{
		grpcServer: s,
		addr:       addr,
		logger:     logger,
	}
}

// Start listens on the configured address and serves until stopped.
func (s *Server) Start() error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		s.logger.Error("gRPC server failed to listen", zap.Error(err))
		return err
	}
	return s.Serve(lis)
}

// Serve accepts connections on lis until the server is stopped.
func (s *Server) Serve(lis net.Listener) error {
	s.logger.Info("gRPC server listening", zap.String("addr", lis.Addr().String()))
	return s.grpcServer.Serve(lis)
}

// GracefulStop shuts down the server gracefully.
func (s *Server) GracefulStop() {
	s.grpcServer.GracefulStop()
}

type redirectorServer struct {
	resolver service.ResolverIface
}

func (s *redirectorServer) Resolve(ctx context.Context, req *structpb.Struct) (*wrapperspb.StringValue, error) {
	fields := req.GetFields()

	id, err := uuid.Parse(fields["id"].GetStringValue())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id is not a valid uuid")
	}

	var userID uuid.NullUUID
	if v := fields["user_id"].GetStringValue(); v != "" {
		u, err := uuid.Parse(v)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "user_id is not a valid uuid")
		}
		userID = uuid.NullUUID{UUID: u, Valid: true}
	}

	method := storage.MethodGet
	if v := fields["method"].GetStringValue(); v != "" {
		if method, err = storage.ParseMethod(v); err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
	}

	host := fields["host"].GetStringValue()
	if host == "" {
		host = middleware.Authority(ctx)
	}

	url, err := s.resolver.Resolve(ctx, id, userID, method, host)
	if err != nil {
		return nil, toStatus(err)
	}
	return wrapperspb.String(url), nil
}

func toStatus(err error) error {
	var se *storage.StoreError
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return status.Error(codes.NotFound, "Item not found")
	case errors.Is(err, service.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.As(err, &se):
		return status.Error(codes.Unavailable, "storage temporarily unavailable")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
