package app

import (
	"context"
	"errors"
	"strings"

	"github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/catalog/domain"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotFound         = errors.New("not found")
	ErrCurrencyMismatch = errors.New("price currency differs from store currency")
)

type Service struct {
	repo     ProductRepo
	currency string
}

// NewService returns a catalog service that only accepts prices in currency.
// An empty currency accepts any ISO code.
func NewService(repo ProductRepo, currency string) *Service {
	return &Service{
		repo:     repo,
		currency: strings.ToUpper(strings.TrimSpace(currency)),
	}
}

// Currency is the store currency, or "" when prices are not restricted.
func (s *Service) Currency() string {
	return s.currency
}

func (s *Service) acceptPrice(currency string, amount int64) (domain.Money, error) {
	price, ok := domain.NewMoney(currency, amount)
	if !ok {
		return domain.Money{}, ErrInvalidInput
	}
	if s.currency != "" && price.Currency != s.currency {
		return domain.Money{}, ErrCurrencyMismatch
	}
	return price, nil
}

func (s *Service) CreateProduct(ctx context.Context, name, desc, currency string, amount int64) (domain.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Product{}, ErrInvalidInput
	}
	price, err := s.acceptPrice(currency, amount)
	if err != nil {
		return domain.Product{}, err
	}

	p := domain.Product{
		Name:        name,
		Description: strings.TrimSpace(desc),
		Price:       price,
	}

	product, err := s.repo.Create(ctx, p)
	if err != nil {
		return domain.Product{}, err
	}

	return product, nil
}

func (s *Service) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Product{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, id)
}

// UpdatePrice changes the current price. Carts pick it up on their next commit.
func (s *Service) UpdatePrice(ctx context.Context, id, currency string, amount int64) (domain.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Product{}, ErrInvalidInput
	}
	price, err := s.acceptPrice(currency, amount)
	if err != nil {
		return domain.Product{}, err
	}

	return s.repo.UpdatePrice(ctx, id, price)
}

func (s *Service) ListProducts(ctx context.Context, query string, limit int, cursor string) ([]domain.Product, string, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return s.repo.List(ctx, query, limit, cursor)
}
