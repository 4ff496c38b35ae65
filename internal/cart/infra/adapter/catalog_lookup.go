package adapter

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/cart/domain"
	catalogapp "github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/catalog/app"
)

type CatalogLookup struct {
	svc      *catalogapp.Service
	currency string
}

// NewCatalogLookup prices cart lines in currency. Products priced in any
// other currency cannot be added to a cart.
func NewCatalogLookup(svc *catalogapp.Service, currency string) *CatalogLookup {
	return &CatalogLookup{svc: svc, currency: strings.ToUpper(strings.TrimSpace(currency))}
}

// PriceOf returns the current unit price in minor units of the store
// currency. Ids the catalog cannot resolve, including malformed ones, and
// products priced in a foreign currency are reported as missing products.
func (l *CatalogLookup) PriceOf(ctx context.Context, productID string) (int64, error) {
	p, err := l.svc.GetProduct(ctx, productID)
	if errors.Is(err, catalogapp.ErrNotFound) || errors.Is(err, catalogapp.ErrInvalidInput) {
		return 0, domain.ErrProductNotFound
	}
	if err != nil {
		return 0, err
	}
	if p.Price.Currency != l.currency {
		return 0, fmt.Errorf("product %s priced in %q, store currency is %q: %w",
			productID, p.Price.Currency, l.currency, domain.ErrProductNotFound)
	}
	return p.Price.Amount, nil
}
