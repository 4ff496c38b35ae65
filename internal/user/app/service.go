package app

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/user/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrEmailTaken   = errors.New("email already registered")
)

type Service struct {
	repo UserRepo
}

func NewService(repo UserRepo) *Service {
	return &Service{repo: repo}
}

func (s *Service) Register(ctx context.Context, email, name string) (domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)

	if email == "" {
		return domain.User{}, ErrInvalidInput
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return domain.User{}, ErrInvalidInput
	}

	return s.repo.Create(ctx, domain.User{Email: email, Name: name})
}

func (s *Service) GetUser(ctx context.Context, id string) (domain.User, error) {
	if strings.TrimSpace(id) == "" {
		return domain.User{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, id)
}

// Exists reports whether id names a registered user. Blank ids are reported
// as absent rather than invalid.
func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return false, nil
	}
	return s.repo.Exists(ctx, id)
}
