package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/palace/internal/proto"
	"github.com/dmitrijs2005/palace/internal/server/models"
	"github.com/dmitrijs2005/palace/internal/server/services"
)

func toPBUser(u models.PublicUser) *pb.User {
	regions := make([]string, 0, len(u.SubscribedRegions))
	for _, r := range u.SubscribedRegions {
		regions = append(regions, string(r))
	}
	return &pb.User{
		Id:                u.ID,
		Email:             u.Email,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		Gender:            string(u.Gender),
		SubscribedRegions: regions,
	}
}

func (s *GRPCServer) Signup(ctx context.Context, req *pb.SignupRequest) (*pb.AuthResponse, error) {
	res, err := s.users.Signup(ctx, services.SignupRequest{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Gender:    models.Gender(req.Gender),
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.AuthResponse{Token: res.Token, User: toPBUser(res.User)}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.AuthResponse, error) {
	res, err := s.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.AuthResponse{Token: res.Token, User: toPBUser(res.User)}, nil
}

func (s *GRPCServer) GetMe(ctx context.Context, req *pb.GetMeRequest) (*pb.GetMeResponse, error) {
	u, err := s.users.GetMe(ctx, req.Token)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.GetMeResponse{User: toPBUser(*u)}, nil
}

func (s *GRPCServer) UpdateRegions(ctx context.Context, req *pb.UpdateRegionsRequest) (*pb.UpdateRegionsResponse, error) {
	regions := make([]models.Region, 0, len(req.Regions))
	for _, r := range req.Regions {
		regions = append(regions, models.Region(r))
	}

	u, err := s.users.UpdateRegions(ctx, tokenFromContext(ctx), regions)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.UpdateRegionsResponse{User: toPBUser(*u)}, nil
}

func (s *GRPCServer) DeleteMe(ctx context.Context, req *pb.DeleteMeRequest) (*pb.DeleteMeResponse, error) {
	if err := s.users.DeleteAccount(ctx, tokenFromContext(ctx)); err != nil {
		return nil, toStatus(err)
	}
	return &pb.DeleteMeResponse{Deleted: true}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}
