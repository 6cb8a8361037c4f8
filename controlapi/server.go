package controlapi

import (
	"context"
	"net"

	"github.com/mikeydub/go-nostrss/controlapi/pb"
	"github.com/mikeydub/go-nostrss/service/logger"
	"github.com/pkg/errors"
	"google.golang.org/grpc"
)

// DefaultAddress is the control plane listen address when GRPC_ADDRESS
// is not set.
const DefaultAddress = "[::1]:33333"

// Serve runs the control plane on the given address until the context
// is done, then drains in-flight RPCs.
func (s *Service) Serve(ctx context.Context, address string) error {
	lis, err := net.Listen("tcp", address)
	if err != nil {
		return errors.Wrapf(err, "failed to listen on %s", address)
	}

	server := grpc.NewServer(grpc.ChainUnaryInterceptor(logRequests))
	pb.RegisterControlServer(server, s)

	go func() {
		<-ctx.Done()
		server.GracefulStop()
	}()

	logger.For(ctx).Infof("control plane listening on %s", address)
	return server.Serve(lis)
}

func logRequests(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	resp, err := handler(ctx, req)
	if err != nil {
		logger.For(ctx).Warnf("%s: %s", info.FullMethod, err)
	} else {
		logger.For(ctx).Debugf("%s ok", info.FullMethod)
	}
	return resp, err
}
