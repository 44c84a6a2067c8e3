// Package grpc exposes the token registry and the identity layer over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/tokenkeeper/internal/logging"
	pb "github.com/dmitrijs2005/tokenkeeper/internal/proto"
	"github.com/dmitrijs2005/tokenkeeper/internal/registry"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/models"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

type UserService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	ResolveUser(ctx context.Context, username string) (string, error)
}

type TokenService interface {
	Mint(ctx context.Context, caller registry.Identity, username, item string) (registry.TokenID, error)
	Transfer(ctx context.Context, caller, to registry.Identity, id registry.TokenID) error
	Get(ctx context.Context, id registry.TokenID) (registry.Record, bool, error)
	UpdateUsername(ctx context.Context, caller registry.Identity, id registry.TokenID, username string) error
	VerifyUsername(ctx context.Context, id registry.TokenID, username string) (string, error)
	History(ctx context.Context, id registry.TokenID) ([]*models.Transfer, error)
}

type GRPCServer struct {
	pb.UnimplementedTokenRegistryServer
	address   string
	users     UserService
	tokens    TokenService
	logger    logging.Logger
	jwtSecret []byte
	health    *health.Server
}

func NewGRPCServer(a string, l logging.Logger, us UserService, ts TokenService, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		tokens:    ts,
		jwtSecret: []byte(secretKey),
		health:    health.NewServer(),
	}
}

// NewServer builds a grpc.Server with the interceptor chain, the registry
// service and the standard health service registered.
func (s *GRPCServer) NewServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))

	pb.RegisterTokenRegistryServer(srv, s)
	grpc_health_v1.RegisterHealthServer(srv, s.health)
	s.health.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	s.health.SetServingStatus(pb.TokenRegistry_ServiceDesc.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	return srv
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled, then stops
// gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.NewServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
