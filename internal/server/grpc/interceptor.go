package grpc

import (
	"context"
	"path"
	"time"

	"github.com/dmitrijs2005/palace/internal/common"
	pb "github.com/dmitrijs2005/palace/internal/proto"
	"github.com/dmitrijs2005/palace/internal/server/metrics"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

// TokenKey holds the session token taken from request metadata.
const TokenKey ctxKey = "authToken"

// tokenMethods read their token from metadata rather than from the message.
var tokenMethods = map[string]bool{
	pb.AuthService_UpdateRegions_FullMethodName: true,
	pb.AuthService_DeleteMe_FullMethodName:      true,
}

func (s *GRPCServer) authTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	if tokenMethods[info.FullMethod] {
		var token string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			values := md.Get(common.AuthTokenHeaderName)
			if len(values) > 0 {
				token = values[0]
			}
		}
		if len(token) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}

		ctx = context.WithValue(ctx, TokenKey, token)
	}

	return handler(ctx, req)
}

func tokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(TokenKey).(string)
	return token
}

// observeInterceptor records a metric and a log line for every call.
func (s *GRPCServer) observeInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	elapsed := time.Since(start)

	op := path.Base(info.FullMethod)
	code := status.Code(err)
	outcome := outcomeOf(code)
	s.metrics.Observe(op, outcome, elapsed)

	if code == codes.Internal || code == codes.Unknown {
		s.logger.Error(ctx, "rpc failed", "method", op, "code", code.String(), "elapsed", elapsed)
	} else {
		s.logger.Info(ctx, "rpc", "method", op, "code", code.String(), "elapsed", elapsed)
	}
	return resp, err
}

func outcomeOf(code codes.Code) string {
	switch code {
	case codes.OK:
		return metrics.OutcomeOK
	case codes.InvalidArgument:
		return metrics.OutcomeInvalid
	case codes.AlreadyExists:
		return metrics.OutcomeConflict
	case codes.Unauthenticated:
		return metrics.OutcomeUnauthorized
	default:
		return metrics.OutcomeError
	}
}
