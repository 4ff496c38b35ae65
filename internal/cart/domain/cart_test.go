package domain

import (
	"errors"
	"math"
	"testing"
)

func TestCartMutations(t *testing.T) {
	t.Run("add merges same product", func(t *testing.T) {
		c := NewCart("u1")
		if err := c.AddItem("p1", 2); err != nil {
			t.Fatalf("add: %v", err)
		}
		if err := c.AddItem("p2", 1); err != nil {
			t.Fatalf("add: %v", err)
		}
		if err := c.AddItem("p1", 3); err != nil {
			t.Fatalf("add: %v", err)
		}
		if len(c.Items) != 2 || c.Items[0].ProductID != "p1" || c.Items[0].Quantity != 5 {
			t.Fatalf("unexpected items: %+v", c.Items)
		}
	})

	t.Run("add rejects non-positive quantity", func(t *testing.T) {
		c := NewCart("u1")
		err := c.AddItem("p1", 0)
		if !errors.Is(err, ErrInvalidLineItem) {
			t.Fatalf("expected ErrInvalidLineItem, got %v", err)
		}
		var le *InvalidLineItemError
		if !errors.As(err, &le) || le.ProductID != "p1" {
			t.Fatalf("expected error naming p1, got %v", err)
		}
	})

	t.Run("add rejects quantity past int32", func(t *testing.T) {
		c := NewCart("u1")
		if err := c.AddItem("p1", math.MaxInt32-1); err != nil {
			t.Fatalf("add: %v", err)
		}
		err := c.AddItem("p1", 2)
		var le *InvalidLineItemError
		if !errors.As(err, &le) || le.ProductID != "p1" {
			t.Fatalf("expected InvalidLineItemError for p1, got %v", err)
		}
		if c.Items[0].Quantity != math.MaxInt32-1 {
			t.Fatalf("quantity changed after rejected add: %d", c.Items[0].Quantity)
		}
		if err := c.AddItem("p1", 1); err != nil || c.Items[0].Quantity != math.MaxInt32 {
			t.Fatalf("expected add up to MaxInt32, got (%d, %v)", c.Items[0].Quantity, err)
		}
	})

	t.Run("set quantity zero is not removal", func(t *testing.T) {
		c := NewCart("u1")
		_ = c.AddItem("p1", 2)
		if err := c.SetItemQuantity("p1", 0); !errors.Is(err, ErrInvalidLineItem) {
			t.Fatalf("expected ErrInvalidLineItem, got %v", err)
		}
		if len(c.Items) != 1 || c.Items[0].Quantity != 2 {
			t.Fatalf("cart changed: %+v", c.Items)
		}
	})

	t.Run("set quantity upserts", func(t *testing.T) {
		c := NewCart("u1")
		if err := c.SetItemQuantity("p1", 4); err != nil {
			t.Fatalf("set: %v", err)
		}
		if err := c.SetItemQuantity("p1", 1); err != nil {
			t.Fatalf("set: %v", err)
		}
		if len(c.Items) != 1 || c.Items[0].Quantity != 1 {
			t.Fatalf("unexpected items: %+v", c.Items)
		}
	})

	t.Run("remove keeps order of the rest", func(t *testing.T) {
		c := NewCart("u1")
		_ = c.AddItem("p1", 1)
		_ = c.AddItem("p2", 1)
		_ = c.AddItem("p3", 1)
		if err := c.RemoveItem("p2"); err != nil {
			t.Fatalf("remove: %v", err)
		}
		if len(c.Items) != 2 || c.Items[0].ProductID != "p1" || c.Items[1].ProductID != "p3" {
			t.Fatalf("unexpected items: %+v", c.Items)
		}
		if err := c.RemoveItem("p2"); !errors.Is(err, ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("clone does not share items", func(t *testing.T) {
		c := NewCart("u1")
		_ = c.AddItem("p1", 1)
		cp := c.Clone()
		cp.Items[0].Quantity = 9
		if c.Items[0].Quantity != 1 {
			t.Fatalf("clone shares backing array")
		}
	})
}

func TestIsRetryable(t *testing.T) {
	if !IsRetryable(&ConcurrentModificationError{OwnerID: "u", Expected: 1, Actual: 2}) {
		t.Fatalf("conflict should be retryable")
	}
	if !IsRetryable(&LookupUnavailableError{Lookup: "catalog", Key: "p", Err: errors.New("timeout")}) {
		t.Fatalf("lookup failure should be retryable")
	}
	if IsRetryable(&ReferentialIntegrityError{OwnerID: "u"}) {
		t.Fatalf("referential error should not be retryable")
	}
	if IsRetryable(&UnresolvedProductError{ProductID: "p"}) {
		t.Fatalf("unresolved product should not be retryable")
	}
}
