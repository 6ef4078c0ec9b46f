package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/palace/internal/client/models"
	"github.com/dmitrijs2005/palace/internal/common"
	pb "github.com/dmitrijs2005/palace/internal/proto"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      pb.AuthServiceClient
}

func withAuthToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AuthTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// timeoutInterceptor bounds every call by the configured request timeout.
func (s *GRPCClient) timeoutInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewAuthClient prepares a client for endpointURL. The connection is made
// lazily on the first call; opts are appended to the default dial options.
func NewAuthClient(endpointURL string, timeout time.Duration, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}
	if err := c.InitGRPCClient(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.timeoutInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewAuthServiceClient(conn)
	return nil
}

func toUser(u *pb.User) *models.User {
	if u == nil {
		return nil
	}
	regions := u.GetSubscribedRegions()
	if regions == nil {
		regions = []string{}
	}
	return &models.User{
		ID:                u.GetId(),
		Email:             u.GetEmail(),
		FirstName:         u.GetFirstName(),
		LastName:          u.GetLastName(),
		Gender:            u.GetGender(),
		SubscribedRegions: regions,
	}
}

func (s *GRPCClient) Signup(ctx context.Context, form models.SignupForm) (string, *models.User, error) {
	req := &pb.SignupRequest{
		Email:     form.Email,
		Password:  form.Password,
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Gender:    form.Gender,
	}

	resp, err := s.client.Signup(ctx, req)
	if err != nil {
		return "", nil, mapError(err)
	}
	return resp.GetToken(), toUser(resp.GetUser()), nil
}

func (s *GRPCClient) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	resp, err := s.client.Login(ctx, &pb.LoginRequest{Email: email, Password: password})
	if err != nil {
		return "", nil, mapError(err)
	}
	return resp.GetToken(), toUser(resp.GetUser()), nil
}

func (s *GRPCClient) GetMe(ctx context.Context, token string) (*models.User, error) {
	resp, err := s.client.GetMe(ctx, &pb.GetMeRequest{Token: token})
	if err != nil {
		return nil, mapError(err)
	}
	return toUser(resp.GetUser()), nil
}

func (s *GRPCClient) UpdateRegions(ctx context.Context, token string, regions []string) (*models.User, error) {
	if regions == nil {
		regions = []string{}
	}
	resp, err := s.client.UpdateRegions(withAuthToken(ctx, token), &pb.UpdateRegionsRequest{Regions: regions})
	if err != nil {
		return nil, mapError(err)
	}
	return toUser(resp.GetUser()), nil
}

func (s *GRPCClient) DeleteMe(ctx context.Context, token string) error {
	_, err := s.client.DeleteMe(withAuthToken(ctx, token), &pb.DeleteMeRequest{})
	if err != nil {
		return mapError(err)
	}
	return nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return mapError(err)
	}

	if resp.GetStatus() != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

// mapError turns a gRPC status into the sentinel the session layer reacts to.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		if errors.Is(err, context.DeadlineExceeded) {
			return ErrUnavailable
		}
		return err
	}

	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return &common.AuthError{Message: st.Message()}
	case codes.AlreadyExists:
		return common.ErrConflict
	case codes.InvalidArgument:
		return validationError(st)
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func validationError(st *status.Status) error {
	verr := common.NewValidationError()
	for _, d := range st.Details() {
		br, ok := d.(*errdetails.BadRequest)
		if !ok {
			continue
		}
		for _, v := range br.GetFieldViolations() {
			verr.Add(v.GetField(), v.GetDescription())
		}
	}
	if err := verr.OrNil(); err != nil {
		return err
	}

	msg := strings.TrimPrefix(st.Message(), common.ErrValidation.Error()+": ")
	return fmt.Errorf("%w: %s", common.ErrValidation, msg)
}
