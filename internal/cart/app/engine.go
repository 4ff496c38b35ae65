package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/cart/domain"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultLookupConcurrency = 10
	defaultLookupTimeout     = 2 * time.Second
)

type EngineOptions struct {
	LookupConcurrency int
	LookupTimeout     time.Duration
	Hooks             Hooks
}

// Engine is the only write path for cart aggregates: every commit validates
// the lines, proves the owner exists when the cart is being created, and
// recomputes the total from live catalog prices before saving.
type Engine struct {
	store   CartStore
	catalog CatalogLookup
	users   UserDirectory

	lookupConcurrency int
	lookupTimeout     time.Duration
	hooks             Hooks
	tracer            trace.Tracer
}

func NewEngine(store CartStore, catalog CatalogLookup, users UserDirectory, opts EngineOptions) *Engine {
	if opts.LookupConcurrency <= 0 {
		opts.LookupConcurrency = defaultLookupConcurrency
	}
	if opts.LookupTimeout <= 0 {
		opts.LookupTimeout = defaultLookupTimeout
	}
	if opts.Hooks == nil {
		opts.Hooks = noopHooks{}
	}

	return &Engine{
		store:             store,
		catalog:           catalog,
		users:             users,
		lookupConcurrency: opts.LookupConcurrency,
		lookupTimeout:     opts.LookupTimeout,
		hooks:             opts.Hooks,
		tracer:            otel.Tracer("cart/app"),
	}
}

// LoadOrCreate returns the stored cart for ownerID, or an empty unpersisted
// one. It does not check that the owner exists; the first Commit does.
func (e *Engine) LoadOrCreate(ctx context.Context, ownerID string) (domain.Cart, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return domain.Cart{}, domain.ErrInvalidInput
	}

	cart, err := e.store.Get(ctx, ownerID)
	if errors.Is(err, domain.ErrCartNotFound) {
		return domain.NewCart(ownerID), nil
	}
	if err != nil {
		return domain.Cart{}, fmt.Errorf("load cart: %w", err)
	}
	return cart, nil
}

// Commit validates cart, recomputes its total and persists it atomically.
// Nothing is written unless every check passes.
func (e *Engine) Commit(ctx context.Context, cart domain.Cart) (domain.Cart, error) {
	const op = "cart.commit"
	start := time.Now()

	ctx, span := e.tracer.Start(ctx, op, trace.WithAttributes(
		attribute.String("cart.owner_id", cart.OwnerID),
		attribute.Int("cart.items", len(cart.Items)),
		attribute.Int64("cart.base_version", cart.Version),
	))
	defer span.End()

	committed, err := e.commit(ctx, cart)

	status := "success"
	if err != nil {
		status = errorStatus(err)
		if errors.Is(err, domain.ErrConcurrentModification) {
			e.hooks.IncConflict(op)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, status)
	} else {
		span.SetAttributes(attribute.Int64("cart.version", committed.Version))
	}
	e.hooks.ObserveOperation(op, status, time.Since(start))

	return committed, err
}

func (e *Engine) commit(ctx context.Context, cart domain.Cart) (domain.Cart, error) {
	cart = cart.Clone()
	cart.OwnerID = strings.TrimSpace(cart.OwnerID)
	if cart.OwnerID == "" {
		return domain.Cart{}, domain.ErrInvalidInput
	}

	if err := validateItems(cart.Items); err != nil {
		return domain.Cart{}, err
	}

	exists, err := e.store.Exists(ctx, cart.OwnerID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("check cart existence: %w", err)
	}

	switch {
	case !exists && cart.IsNew():
		if err := e.verifyOwner(ctx, cart.OwnerID); err != nil {
			return domain.Cart{}, err
		}
		if cart.ID == "" {
			cart.ID = uuid.NewString()
		}
	case exists && cart.IsNew(), !exists && !cart.IsNew():
		return domain.Cart{}, &domain.ConcurrentModificationError{
			OwnerID:  cart.OwnerID,
			Expected: cart.Version,
			Actual:   -1,
		}
	}

	prices, err := resolvePrices(ctx, e.catalog, cart.Items, e.lookupConcurrency, e.lookupTimeout)
	if err != nil {
		return domain.Cart{}, err
	}
	total, err := RecomputeTotal(cart.Items, prices)
	if err != nil {
		return domain.Cart{}, err
	}
	cart.Total = total

	saved, err := e.store.Save(ctx, cart, cart.Version)
	if err != nil {
		var conflict *domain.ConcurrentModificationError
		if errors.As(err, &conflict) {
			return domain.Cart{}, err
		}
		return domain.Cart{}, fmt.Errorf("save cart: %w", err)
	}
	return saved, nil
}

// verifyOwner runs only on the creation transition. Steady-state commits
// never re-check the owner.
func (e *Engine) verifyOwner(ctx context.Context, ownerID string) error {
	lookupCtx, cancel := context.WithTimeout(ctx, e.lookupTimeout)
	defer cancel()

	ok, err := e.users.UserExists(lookupCtx, ownerID)
	if err != nil {
		return &domain.LookupUnavailableError{Lookup: "user", Key: ownerID, Err: err}
	}
	if !ok {
		return &domain.ReferentialIntegrityError{OwnerID: ownerID}
	}
	return nil
}

func validateItems(items []domain.LineItem) error {
	for _, it := range items {
		if strings.TrimSpace(it.ProductID) == "" {
			return &domain.InvalidLineItemError{Reason: "product id is required"}
		}
		if it.Quantity < 1 {
			return &domain.InvalidLineItemError{
				ProductID: it.ProductID,
				Reason:    fmt.Sprintf("quantity must be at least 1, got %d", it.Quantity),
			}
		}
	}
	return nil
}

func errorStatus(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidLineItem), errors.Is(err, domain.ErrInvalidInput):
		return "invalid"
	case errors.Is(err, domain.ErrReferentialIntegrity):
		return "referential_integrity"
	case errors.Is(err, domain.ErrUnresolvedProduct):
		return "unresolved_product"
	case errors.Is(err, domain.ErrConcurrentModification):
		return "conflict"
	case errors.Is(err, domain.ErrLookupUnavailable):
		return "retryable"
	default:
		return "internal"
	}
}
