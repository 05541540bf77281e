package server

import (
	"errors"
	"fmt"
	"net"

	"github.com/memehoueibib/securecode-platform-sub001/internal/config"
	myGRPC "github.com/memehoueibib/securecode-platform-sub001/internal/handler/grpc"
	"github.com/memehoueibib/securecode-platform-sub001/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", cfg.GRPCAddress, err)
	}

	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		handler:         handler,
		server:          server,
		gRPCNetListener: listener,
		logger:          logger,
	}, nil
}

func (g *grpcServer) Addr() string {
	return g.gRPCNetListener.Addr().String()
}

// Serve blocks until Shutdown. Being stopped before serving started is not an
// error.
func (g *grpcServer) Serve() error {
	if err := g.server.Serve(g.gRPCNetListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

func (g *grpcServer) Shutdown() {
	g.handler.Shutdown()
	g.server.GracefulStop()
	g.logger.Info().Msg("gRPC server Shutdown")
}
