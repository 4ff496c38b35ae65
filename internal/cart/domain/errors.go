package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrCartNotFound           = errors.New("cart not found")
	ErrItemNotFound           = errors.New("cart item not found")
	ErrProductNotFound        = errors.New("product not found")
	ErrInvalidLineItem        = errors.New("invalid line item")
	ErrReferentialIntegrity   = errors.New("referential integrity violation")
	ErrUnresolvedProduct      = errors.New("unresolved product")
	ErrConcurrentModification = errors.New("concurrent modification")
	ErrLookupUnavailable      = errors.New("lookup unavailable")
)

// InvalidLineItemError is a structural violation on a single line.
type InvalidLineItemError struct {
	ProductID string
	Reason    string
}

func (e *InvalidLineItemError) Error() string {
	if e.ProductID == "" {
		return fmt.Sprintf("invalid line item: %s", e.Reason)
	}
	return fmt.Sprintf("invalid line item %q: %s", e.ProductID, e.Reason)
}

func (e *InvalidLineItemError) Is(target error) bool { return target == ErrInvalidLineItem }

// ReferentialIntegrityError means the owner did not exist when the cart
// was being created.
type ReferentialIntegrityError struct {
	OwnerID string
}

func (e *ReferentialIntegrityError) Error() string {
	return fmt.Sprintf("cart owner %q does not exist", e.OwnerID)
}

func (e *ReferentialIntegrityError) Is(target error) bool { return target == ErrReferentialIntegrity }

// UnresolvedProductError means the catalog no longer knows a product that
// a line item references. The whole commit is rejected.
type UnresolvedProductError struct {
	ProductID string
}

func (e *UnresolvedProductError) Error() string {
	return fmt.Sprintf("product %q is not in the catalog", e.ProductID)
}

func (e *UnresolvedProductError) Is(target error) bool { return target == ErrUnresolvedProduct }

// ConcurrentModificationError is returned when the stored version no longer
// matches the version the caller loaded. Actual is -1 when unknown.
type ConcurrentModificationError struct {
	OwnerID  string
	Expected int64
	Actual   int64
}

func (e *ConcurrentModificationError) Error() string {
	if e.Actual < 0 {
		return fmt.Sprintf("cart %q was modified concurrently (base version %d)", e.OwnerID, e.Expected)
	}
	return fmt.Sprintf("cart %q was modified concurrently (base version %d, stored %d)", e.OwnerID, e.Expected, e.Actual)
}

func (e *ConcurrentModificationError) Is(target error) bool {
	return target == ErrConcurrentModification
}

// LookupUnavailableError wraps a transient catalog or user-service failure.
// It never means "does not exist".
type LookupUnavailableError struct {
	Lookup string
	Key    string
	Err    error
}

func (e *LookupUnavailableError) Error() string {
	return fmt.Sprintf("%s lookup for %q unavailable: %v", e.Lookup, e.Key, e.Err)
}

func (e *LookupUnavailableError) Unwrap() error { return e.Err }

func (e *LookupUnavailableError) Is(target error) bool { return target == ErrLookupUnavailable }

// IsRetryable reports whether the caller may reload and retry.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrConcurrentModification) || errors.Is(err, ErrLookupUnavailable)
}
