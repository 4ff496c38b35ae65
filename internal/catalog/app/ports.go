package app

import (
	"context"

	"github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/catalog/domain"
)

type ProductRepo interface {
	Create(ctx context.Context, p domain.Product) (domain.Product, error)
	Get(ctx context.Context, id string) (domain.Product, error)
	UpdatePrice(ctx context.Context, id string, price domain.Money) (domain.Product, error)
	List(ctx context.Context, query string, limit int, cursor string) ([]domain.Product, string, error)
}
