package testutil

import (
	"context"
	"sync"

	"github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/cart/app"
	"github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/cart/domain"
)

// Catalog is an in-memory CatalogLookup whose prices can change between
// commits. Err, when set, is returned for every lookup.
type Catalog struct {
	mu       sync.Mutex
	prices   map[string]int64
	failures map[string]error
	calls    int

	Err error
}

var _ app.CatalogLookup = (*Catalog)(nil)

func NewCatalog(prices map[string]int64) *Catalog {
	c := &Catalog{prices: make(map[string]int64, len(prices)), failures: map[string]error{}}
	for k, v := range prices {
		c.prices[k] = v
	}
	return c
}

func (c *Catalog) SetPrice(productID string, price int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prices[productID] = price
}

func (c *Catalog) Delete(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.prices, productID)
}

// FailOn makes lookups of productID return err.
func (c *Catalog) FailOn(productID string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failures[productID] = err
}

func (c *Catalog) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func (c *Catalog) PriceOf(ctx context.Context, productID string) (int64, error) {
	c.mu.Lock()
	c.calls++
	err := c.Err
	if err == nil {
		err = c.failures[productID]
	}
	price, ok := c.prices[productID]
	c.mu.Unlock()

	if err != nil {
		return 0, err
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return 0, ctxErr
	}
	if !ok {
		return 0, domain.ErrProductNotFound
	}
	return price, nil
}

// BlockingCatalog never answers until ctx is done.
type BlockingCatalog struct{}

func (BlockingCatalog) PriceOf(ctx context.Context, _ string) (int64, error) {
	<-ctx.Done()
	return 0, ctx.Err()
}

// Users is an in-memory UserDirectory that counts calls.
type Users struct {
	mu    sync.Mutex
	known map[string]bool
	calls int

	Err error
}

var _ app.UserDirectory = (*Users)(nil)

func NewUsers(ids ...string) *Users {
	u := &Users{known: make(map[string]bool, len(ids))}
	for _, id := range ids {
		u.known[id] = true
	}
	return u
}

func (u *Users) Add(id string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.known[id] = true
}

func (u *Users) Remove(id string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.known, id)
}

func (u *Users) Calls() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.calls
}

func (u *Users) UserExists(_ context.Context, userID string) (bool, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.calls++
	if u.Err != nil {
		return false, u.Err
	}
	return u.known[userID], nil
}
