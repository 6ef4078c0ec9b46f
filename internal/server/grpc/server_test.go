package grpc

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/palace/internal/logging"
	pb "github.com/dmitrijs2005/palace/internal/proto"
	"github.com/dmitrijs2005/palace/internal/server/metrics"
	"github.com/dmitrijs2005/palace/internal/server/models"
	"github.com/dmitrijs2005/palace/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
)

// slowUsers holds Login until release is closed.
type slowUsers struct {
	UserService
	entered chan struct{}
	release chan struct{}
}

func (u *slowUsers) Login(ctx context.Context, email, password string) (*services.AuthResult, error) {
	close(u.entered)
	<-u.release
	return &services.AuthResult{
		Token: "tok",
		User:  models.PublicUser{ID: "u-1", Email: email, SubscribedRegions: []models.Region{}},
	}, nil
}

// recordingLogger keeps the messages it was given.
type recordingLogger struct {
	mu   sync.Mutex
	msgs []string
}

func (l *recordingLogger) record(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.msgs = append(l.msgs, msg)
}

func (l *recordingLogger) Debug(_ context.Context, msg string, _ ...any) { l.record(msg) }
func (l *recordingLogger) Info(_ context.Context, msg string, _ ...any)  { l.record(msg) }
func (l *recordingLogger) Warn(_ context.Context, msg string, _ ...any)  { l.record(msg) }
func (l *recordingLogger) Error(_ context.Context, msg string, _ ...any) { l.record(msg) }
func (l *recordingLogger) With(...any) logging.Logger                   { return l }

func (l *recordingLogger) messages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.msgs...)
}

func dialBuf(t *testing.T, lis *bufconn.Listener) pb.AuthServiceClient {
	t.Helper()
	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return pb.NewAuthServiceClient(conn)
}

func TestServe_CancelWaitsForInFlightLogin(t *testing.T) {
	users := &slowUsers{entered: make(chan struct{}), release: make(chan struct{})}
	srv := NewGRPCServer("bufnet", logging.Nop(), users, metrics.New())

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	served := make(chan error, 1)
	go func() { served <- srv.Serve(ctx, lis) }()

	c := dialBuf(t, lis)

	type reply struct {
		resp *pb.AuthResponse
		err  error
	}
	called := make(chan reply, 1)
	go func() {
		resp, err := c.Login(context.Background(), &pb.LoginRequest{Email: "a@x.com", Password: "secret1"})
		called <- reply{resp, err}
	}()

	<-users.entered
	cancel()

	select {
	case err := <-served:
		t.Fatalf("Serve returned while a login was still running: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	close(users.release)

	got := <-called
	require.NoError(t, got.err)
	assert.Equal(t, "tok", got.resp.GetToken())
	assert.Equal(t, "a@x.com", got.resp.GetUser().GetEmail())

	select {
	case err := <-served:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after the last call finished")
	}
}

func TestServe_ListenerFailureStopsWatcher(t *testing.T) {
	logger := &recordingLogger{}
	srv := NewGRPCServer("127.0.0.1:0", logger, nil, nil)

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	require.NoError(t, lis.Close())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.Error(t, srv.Serve(ctx, lis))

	cancel()
	assert.NotContains(t, logger.messages(), "Stopping gRPC server...")
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:99999", logging.Nop(), nil, nil)
	assert.Error(t, srv.Run(context.Background()))
}
