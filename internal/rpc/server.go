package rpc

import (
	"fmt"
	"net"

	"google.golang.org/grpc"

	"github.com/stocklane/product-service/api/productv1"
	"github.com/stocklane/product-service/internal/platform/logger"
	"github.com/stocklane/product-service/internal/services"
)

// Server owns the grpc.Server hosting ProductService.
type Server struct {
	grpc *grpc.Server
	log  *logger.Logger
}

func NewServer(products *services.ProductService, log *logger.Logger) *Server {
	gs := grpc.NewServer(
		grpc.ForceServerCodec(productv1.Codec{}),
		grpc.ChainUnaryInterceptor(UnaryLogging(log)),
		grpc.ChainStreamInterceptor(StreamLogging(log)),
	)
	productv1.RegisterProductServiceServer(gs, NewProductServer(products, log))
	return &Server{grpc: gs, log: log}
}

// Serve blocks until the listener fails or GracefulStop is called.
func (s *Server) Serve(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	s.log.Info("gRPC server listening", "addr", addr)
	return s.grpc.Serve(lis)
}

func (s *Server) GracefulStop() {
	s.grpc.GracefulStop()
}
