// Package grpc serves palace.auth.v1.AuthService over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/palace/internal/logging"
	pb "github.com/dmitrijs2005/palace/internal/proto"
	"github.com/dmitrijs2005/palace/internal/server/metrics"
	"github.com/dmitrijs2005/palace/internal/server/models"
	"github.com/dmitrijs2005/palace/internal/server/services"
	"google.golang.org/grpc"
)

// UserService is the account logic the handlers delegate to.
type UserService interface {
	Signup(ctx context.Context, req services.SignupRequest) (*services.AuthResult, error)
	Login(ctx context.Context, email, password string) (*services.AuthResult, error)
	GetMe(ctx context.Context, token string) (*models.PublicUser, error)
	UpdateRegions(ctx context.Context, token string, regions []models.Region) (*models.PublicUser, error)
	DeleteAccount(ctx context.Context, token string) error
}

type GRPCServer struct {
	pb.UnimplementedAuthServiceServer
	address string
	users   UserService
	logger  logging.Logger
	metrics *metrics.Metrics
}

func NewGRPCServer(a string, l logging.Logger, us UserService, m *metrics.Metrics) *GRPCServer {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		users:   us,
		metrics: m,
	}
}

// newServer builds the grpc.Server with the interceptor chain and the
// service registered.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.observeInterceptor, s.authTokenInterceptor))
	pb.RegisterAuthServiceServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
// It returns once in-flight calls have finished and the stop watcher has
// exited.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	served := make(chan struct{})
	watcherDone := make(chan struct{})
	go func() {
		defer close(watcherDone)
		select {
		case <-ctx.Done():
			s.logger.Info(ctx, "Stopping gRPC server...")
			srv.GracefulStop()
		case <-served:
		}
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	err := srv.Serve(lis)
	close(served)
	<-watcherDone
	return err
}
