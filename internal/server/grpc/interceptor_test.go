package grpc

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/palace/internal/common"
	"github.com/dmitrijs2005/palace/internal/logging"
	pb "github.com/dmitrijs2005/palace/internal/proto"
	"github.com/dmitrijs2005/palace/internal/server/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func newTestServer() *GRPCServer {
	return NewGRPCServer("", logging.Nop(), nil, metrics.New())
}

func TestInterceptor_PublicMethod_AllowsWithoutToken(t *testing.T) {
	s := newTestServer()

	info := &grpc.UnaryServerInfo{FullMethod: pb.AuthService_GetMe_FullMethodName}
	handlerCalled := false
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		handlerCalled = true
		return "ok", nil
	}

	resp, err := s.authTokenInterceptor(context.Background(), nil, info, h)
	require.NoError(t, err)
	assert.True(t, handlerCalled)
	assert.Equal(t, "ok", resp)
}

func TestInterceptor_TokenMethod_MissingToken(t *testing.T) {
	s := newTestServer()

	for _, method := range []string{pb.AuthService_UpdateRegions_FullMethodName, pb.AuthService_DeleteMe_FullMethodName} {
		info := &grpc.UnaryServerInfo{FullMethod: method}
		h := func(ctx context.Context, req interface{}) (interface{}, error) {
			t.Fatal("handler should not be called when token missing")
			return nil, nil
		}

		_, err := s.authTokenInterceptor(context.Background(), nil, info, h)
		require.Error(t, err)
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
		assert.Equal(t, "missing token", status.Convert(err).Message())
	}
}

func TestInterceptor_TokenMethod_PutsTokenInContext(t *testing.T) {
	s := newTestServer()

	md := metadata.New(map[string]string{common.AuthTokenHeaderName: "tok"})
	ctx := metadata.NewIncomingContext(context.Background(), md)
	info := &grpc.UnaryServerInfo{FullMethod: pb.AuthService_UpdateRegions_FullMethodName}

	var got string
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		got = tokenFromContext(ctx)
		return "ok", nil
	}

	_, err := s.authTokenInterceptor(ctx, nil, info, h)
	require.NoError(t, err)
	assert.Equal(t, "tok", got)
}

func TestObserveInterceptor_PassesThrough(t *testing.T) {
	s := newTestServer()
	info := &grpc.UnaryServerInfo{FullMethod: pb.AuthService_Login_FullMethodName}

	wantErr := status.Error(codes.Unauthenticated, "invalid email or password")
	_, err := s.observeInterceptor(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, wantErr
	})
	assert.Equal(t, wantErr, err)

	resp, err := s.observeInterceptor(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
}

func TestOutcomeOf(t *testing.T) {
	assert.Equal(t, metrics.OutcomeOK, outcomeOf(codes.OK))
	assert.Equal(t, metrics.OutcomeInvalid, outcomeOf(codes.InvalidArgument))
	assert.Equal(t, metrics.OutcomeConflict, outcomeOf(codes.AlreadyExists))
	assert.Equal(t, metrics.OutcomeUnauthorized, outcomeOf(codes.Unauthenticated))
	assert.Equal(t, metrics.OutcomeError, outcomeOf(codes.Internal))
}

func TestToStatus(t *testing.T) {
	tests := []struct {
		err  error
		code codes.Code
		msg  string
	}{
		{common.ErrConflict, codes.AlreadyExists, "user with this email already exists"},
		{common.ErrInvalidCredentials, codes.Unauthenticated, "invalid email or password"},
		{common.ErrInvalidToken, codes.Unauthenticated, "invalid token"},
		{common.ErrInternal, codes.Internal, "internal error"},
		{errors.New("driver exploded"), codes.Internal, "internal error"},
	}
	for _, tt := range tests {
		st := status.Convert(toStatus(tt.err))
		assert.Equal(t, tt.code, st.Code(), tt.err.Error())
		assert.Equal(t, tt.msg, st.Message())
	}
}
