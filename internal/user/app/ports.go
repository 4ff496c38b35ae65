package app

import (
	"context"

	"github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/user/domain"
)

type UserRepo interface {
	Create(ctx context.Context, u domain.User) (domain.User, error)
	Get(ctx context.Context, id string) (domain.User, error)
	Exists(ctx context.Context, id string) (bool, error)
}
