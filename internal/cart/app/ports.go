package app

import (
	"context"

	"github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/cart/domain"
)

// CartStore persists whole cart aggregates keyed by owner.
//
// Save must be atomic: items, total and version are written together, and
// only when the stored version equals expectedVersion (0 means "must not
// exist yet"). On mismatch it returns a *domain.ConcurrentModificationError.
// Get returns domain.ErrCartNotFound when nothing is stored.
type CartStore interface {
	Get(ctx context.Context, ownerID string) (domain.Cart, error)
	Exists(ctx context.Context, ownerID string) (bool, error)
	Save(ctx context.Context, cart domain.Cart, expectedVersion int64) (domain.Cart, error)
}

// CatalogLookup returns the current price of a product in normalized units,
// or domain.ErrProductNotFound. Any other error is treated as transient.
type CatalogLookup interface {
	PriceOf(ctx context.Context, productID string) (int64, error)
}

type UserDirectory interface {
	UserExists(ctx context.Context, userID string) (bool, error)
}
