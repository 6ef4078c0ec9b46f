package grpc

import (
	"context"
	"net"
	"testing"

	"github.com/dmitrijs2005/palace/internal/common"
	"github.com/dmitrijs2005/palace/internal/cryptox"
	"github.com/dmitrijs2005/palace/internal/logging"
	pb "github.com/dmitrijs2005/palace/internal/proto"
	"github.com/dmitrijs2005/palace/internal/server/auth"
	"github.com/dmitrijs2005/palace/internal/server/metrics"
	"github.com/dmitrijs2005/palace/internal/server/repositories/users"
	"github.com/dmitrijs2005/palace/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
)

func startBufServer(t *testing.T) pb.AuthServiceClient {
	t.Helper()

	svc := services.NewUserService(users.NewMemoryRepository(), auth.LegacyCodec{},
		cryptox.NewPasswordHasher(cryptox.SchemePlain), logging.Nop())
	srv := NewGRPCServer("bufnet", logging.Nop(), svc, metrics.New())

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		<-done
	})
	return pb.NewAuthServiceClient(conn)
}

func signupReq(email string) *pb.SignupRequest {
	return &pb.SignupRequest{
		Email: email, Password: "secret1", FirstName: "Ama", LastName: "Mensah", Gender: "female",
	}
}

func withToken(ctx context.Context, token string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, common.AuthTokenHeaderName, token)
}

func TestAuthFlow_OverGRPC(t *testing.T) {
	ctx := context.Background()
	c := startBufServer(t)

	signed, err := c.Signup(ctx, signupReq("a@x.com"))
	require.NoError(t, err)
	require.NotEmpty(t, signed.Token)
	assert.Equal(t, "a@x.com", signed.User.Email)
	assert.Empty(t, signed.User.GetSubscribedRegions())

	logged, err := c.Login(ctx, &pb.LoginRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, signed.User.GetId(), logged.User.GetId())

	me, err := c.GetMe(ctx, &pb.GetMeRequest{Token: logged.Token})
	require.NoError(t, err)
	assert.True(t, proto.Equal(signed.User, me.User), "GetMe returns the signed-up user")

	upd, err := c.UpdateRegions(withToken(ctx, logged.Token), &pb.UpdateRegionsRequest{Regions: []string{"volta", "ashanti"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"ashanti", "volta"}, upd.User.SubscribedRegions)

	del, err := c.DeleteMe(withToken(ctx, logged.Token), &pb.DeleteMeRequest{})
	require.NoError(t, err)
	assert.True(t, del.Deleted)

	_, err = c.GetMe(ctx, &pb.GetMeRequest{Token: signed.Token})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, "invalid token", status.Convert(err).Message())
}

func TestSignup_OverGRPC_Errors(t *testing.T) {
	ctx := context.Background()
	c := startBufServer(t)

	_, err := c.Signup(ctx, signupReq("a@x.com"))
	require.NoError(t, err)

	_, err = c.Signup(ctx, signupReq("a@x.com"))
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	bad := signupReq("b@x.com")
	bad.Password = "123"
	bad.Gender = "other"
	_, err = c.Signup(ctx, bad)
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	var fields []string
	for _, d := range status.Convert(err).Details() {
		if br, ok := d.(*errdetails.BadRequest); ok {
			for _, v := range br.GetFieldViolations() {
				fields = append(fields, v.GetField())
			}
		}
	}
	assert.Equal(t, []string{"gender", "password"}, fields)
}

func TestLogin_OverGRPC_Unauthenticated(t *testing.T) {
	ctx := context.Background()
	c := startBufServer(t)

	_, err := c.Login(ctx, &pb.LoginRequest{Email: "nobody@x.com", Password: "secret1"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, "invalid email or password", status.Convert(err).Message())
}

func TestTokenMethods_OverGRPC_RequireMetadata(t *testing.T) {
	ctx := context.Background()
	c := startBufServer(t)

	_, err := c.UpdateRegions(ctx, &pb.UpdateRegionsRequest{Regions: []string{"oti"}})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = c.DeleteMe(withToken(ctx, "bogus"), &pb.DeleteMeRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestPing_OverGRPC(t *testing.T) {
	c := startBufServer(t)

	resp, err := c.Ping(context.Background(), &pb.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", resp.Status)
}
