package rpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/stocklane/product-service/internal/platform/logger"
)

// UnaryLogging logs every unary call with its status code and latency.
func UnaryLogging(baseLog *logger.Logger) grpc.UnaryServerInterceptor {
	log := baseLog.With("component", "grpc")
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		log.Info("unary call",
			"method", info.FullMethod,
			"code", status.Code(err).String(),
			"duration", time.Since(start))
		return resp, err
	}
}

// StreamLogging logs stream lifecycle: the call pattern, terminal status and
// total stream duration.
func StreamLogging(baseLog *logger.Logger) grpc.StreamServerInterceptor {
	log := baseLog.With("component", "grpc")
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()
		err := handler(srv, ss)
		log.Info("stream call",
			"method", info.FullMethod,
			"clientStream", info.IsClientStream,
			"serverStream", info.IsServerStream,
			"code", status.Code(err).String(),
			"duration", time.Since(start))
		return err
	}
}
