package app

import (
	"context"
	"errors"
	"strings"

	"github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/cart/domain"
)

const defaultMaxAttempts = 3

// Service hosts the cart operations invoked by transports. Each one loads
// the cart, applies a mutation and commits it through the Engine, reloading
// and re-applying on version conflicts.
type Service struct {
	engine      *Engine
	store       CartStore
	hooks       Hooks
	maxAttempts int
}

func NewService(engine *Engine, store CartStore, maxAttempts int, hooks Hooks) *Service {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if hooks == nil {
		hooks = noopHooks{}
	}
	return &Service{
		engine:      engine,
		store:       store,
		hooks:       hooks,
		maxAttempts: maxAttempts,
	}
}

func (s *Service) GetCart(ctx context.Context, ownerID string) (domain.Cart, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return domain.Cart{}, domain.ErrInvalidInput
	}
	return s.store.Get(ctx, ownerID)
}

func (s *Service) AddItem(ctx context.Context, ownerID string, item domain.LineItem) (domain.Cart, error) {
	return s.mutate(ctx, "cart.add_item", ownerID, func(c *domain.Cart) error {
		return c.AddItem(item.ProductID, item.Quantity)
	})
}

func (s *Service) SetItemQuantity(ctx context.Context, ownerID string, item domain.LineItem) (domain.Cart, error) {
	return s.mutate(ctx, "cart.set_item_quantity", ownerID, func(c *domain.Cart) error {
		return c.SetItemQuantity(item.ProductID, item.Quantity)
	})
}

func (s *Service) RemoveItem(ctx context.Context, ownerID string, productID string) (domain.Cart, error) {
	return s.mutate(ctx, "cart.remove_item", ownerID, func(c *domain.Cart) error {
		if c.IsNew() {
			return domain.ErrCartNotFound
		}
		return c.RemoveItem(productID)
	})
}

func (s *Service) Clear(ctx context.Context, ownerID string) (domain.Cart, error) {
	return s.mutate(ctx, "cart.clear", ownerID, func(c *domain.Cart) error {
		if c.IsNew() {
			return domain.ErrCartNotFound
		}
		c.Clear()
		return nil
	})
}

func (s *Service) mutate(ctx context.Context, op string, ownerID string, fn func(c *domain.Cart) error) (domain.Cart, error) {
	var lastErr error
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		if attempt > 1 {
			s.hooks.IncRetry(op)
		}

		cart, err := s.engine.LoadOrCreate(ctx, ownerID)
		if err != nil {
			return domain.Cart{}, err
		}
		if err := fn(&cart); err != nil {
			return domain.Cart{}, err
		}

		committed, err := s.engine.Commit(ctx, cart)
		if err == nil {
			return committed, nil
		}
		if !errors.Is(err, domain.ErrConcurrentModification) {
			return domain.Cart{}, err
		}
		if ctx.Err() != nil {
			return domain.Cart{}, err
		}
		lastErr = err
	}
	return domain.Cart{}, lastErr
}
