package app

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/cart/domain"
	"golang.org/x/sync/errgroup"
)

// RecomputeTotal sums price(productID) * quantity over items. prices must
// hold an entry for every product in items. A line or running total that
// does not fit in int64 fails with *domain.InvalidLineItemError.
func RecomputeTotal(items []domain.LineItem, prices map[string]int64) (int64, error) {
	var total int64
	for _, it := range items {
		price, qty := prices[it.ProductID], int64(it.Quantity)
		if price < 0 || qty < 0 {
			return 0, &domain.InvalidLineItemError{
				ProductID: it.ProductID,
				Reason:    fmt.Sprintf("negative price %d or quantity %d", price, qty),
			}
		}
		if qty > 0 && price > math.MaxInt64/qty {
			return 0, &domain.InvalidLineItemError{ProductID: it.ProductID, Reason: "line total overflows"}
		}
		line := price * qty
		if total > math.MaxInt64-line {
			return 0, &domain.InvalidLineItemError{ProductID: it.ProductID, Reason: "cart total overflows"}
		}
		total += line
	}
	return total, nil
}

// resolvePrices looks up the current price of every distinct product in
// items. A missing product fails with *domain.UnresolvedProductError; any
// other lookup failure is reported as *domain.LookupUnavailableError.
//
// A missing product wins over transient failures regardless of which lookup
// returns first. Transient failures do not cancel sibling lookups, so every
// missing product gets a chance to be reported.
func resolvePrices(ctx context.Context, catalog CatalogLookup, items []domain.LineItem, limit int, timeout time.Duration) (map[string]int64, error) {
	ids := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if _, ok := seen[it.ProductID]; ok {
			continue
		}
		seen[it.ProductID] = struct{}{}
		ids = append(ids, it.ProductID)
	}

	prices := make([]int64, len(ids))
	errs := make([]error, len(ids))

	lookupCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var g errgroup.Group
	g.SetLimit(limit)

	for idx := range ids {
		g.Go(func() error {
			callCtx := lookupCtx
			if timeout > 0 {
				var done context.CancelFunc
				callCtx, done = context.WithTimeout(lookupCtx, timeout)
				defer done()
			}

			price, err := catalog.PriceOf(callCtx, ids[idx])
			switch {
			case err == nil:
				prices[idx] = price
			case errors.Is(err, domain.ErrProductNotFound):
				errs[idx] = &domain.UnresolvedProductError{ProductID: ids[idx]}
				cancel()
			default:
				errs[idx] = &domain.LookupUnavailableError{Lookup: "catalog", Key: ids[idx], Err: err}
			}
			return nil
		})
	}
	_ = g.Wait()

	if err := lookupError(errs); err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(ids))
	for idx, id := range ids {
		out[id] = prices[idx]
	}
	return out, nil
}

// lookupError returns the first unresolved product in item order, else the
// first transient failure.
func lookupError(errs []error) error {
	var transient error
	for _, err := range errs {
		if errors.Is(err, domain.ErrUnresolvedProduct) {
			return err
		}
		if err != nil && transient == nil {
			transient = err
		}
	}
	return transient
}
