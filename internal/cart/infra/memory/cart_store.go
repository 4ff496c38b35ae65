package memory

import (
	"context"
	"sync"
	"time"

	"github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/cart/domain"
)

// CartStore keeps carts in process memory. It is used for local runs
// (CART_STORE=memory) and tests.
type CartStore struct {
	mu    sync.RWMutex
	carts map[string]domain.Cart
	now   func() time.Time
}

func NewCartStore() *CartStore {
	return &CartStore{
		carts: make(map[string]domain.Cart),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the timestamp source.
func (s *CartStore) WithClock(now func() time.Time) *CartStore {
	s.now = now
	return s
}

func (s *CartStore) Get(ctx context.Context, ownerID string) (domain.Cart, error) {
	if err := ctx.Err(); err != nil {
		return domain.Cart{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart, ok := s.carts[ownerID]
	if !ok {
		return domain.Cart{}, domain.ErrCartNotFound
	}
	return cart.Clone(), nil
}

func (s *CartStore) Exists(ctx context.Context, ownerID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.carts[ownerID]
	return ok, nil
}

func (s *CartStore) Save(ctx context.Context, cart domain.Cart, expectedVersion int64) (domain.Cart, error) {
	if err := ctx.Err(); err != nil {
		return domain.Cart{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	current, ok := s.carts[cart.OwnerID]

	var stored int64
	if ok {
		stored = current.Version
	}
	if stored != expectedVersion {
		return domain.Cart{}, &domain.ConcurrentModificationError{
			OwnerID:  cart.OwnerID,
			Expected: expectedVersion,
			Actual:   stored,
		}
	}

	next := cart.Clone()
	next.Version = expectedVersion + 1
	next.UpdatedAt = now
	if ok {
		next.ID = current.ID
		next.CreatedAt = current.CreatedAt
	} else {
		next.CreatedAt = now
	}

	s.carts[cart.OwnerID] = next
	return next.Clone(), nil
}

// Delete removes a cart. The core never deletes; this exists for expiry
// jobs and tests.
func (s *CartStore) Delete(ownerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, ownerID)
}
