package grpc

import (
	"context"
	"errors"

	userv1 "github.com/CQSTechSolutions/Veloria-Perfumes-sub001/api/gen/user/v1"
	"github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/user/app"
	"github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/user/domain"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	userv1.UnimplementedUserServiceServer
	svc *app.Service
	log *zap.Logger
}

func NewServer(svc *app.Service, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{svc: svc, log: log.Named("user.grpc")}
}

func (s *Server) RegisterUser(ctx context.Context, req *userv1.RegisterUserRequest) (*userv1.RegisterUserResponse, error) {
	u, err := s.svc.Register(ctx, req.GetEmail(), req.GetName())
	if err != nil {
		return nil, s.mapErr("register user", err)
	}
	return &userv1.RegisterUserResponse{User: toProto(u)}, nil
}

func (s *Server) GetUser(ctx context.Context, req *userv1.GetUserRequest) (*userv1.GetUserResponse, error) {
	u, err := s.svc.GetUser(ctx, req.GetId())
	if err != nil {
		return nil, s.mapErr("get user", err)
	}
	return &userv1.GetUserResponse{User: toProto(u)}, nil
}

func toProto(u domain.User) *userv1.User {
	return &userv1.User{
		Id:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		CreatedAtUnix: u.CreatedAt.Unix(),
	}
}

func (s *Server) mapErr(op string, err error) error {
	switch {
	case errors.Is(err, app.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, app.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, app.ErrEmailTaken):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	s.log.Error("user operation failed", zap.String("op", op), zap.Error(err))
	return status.Error(codes.Internal, "internal error")
}
