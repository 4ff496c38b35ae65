package adapter

import (
	"context"

	userapp "github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/user/app"
)

type UserDirectory struct {
	svc *userapp.Service
}

func NewUserDirectory(svc *userapp.Service) *UserDirectory {
	return &UserDirectory{svc: svc}
}

func (d *UserDirectory) UserExists(ctx context.Context, userID string) (bool, error) {
	return d.svc.Exists(ctx, userID)
}
