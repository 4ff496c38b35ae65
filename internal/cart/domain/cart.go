package domain

import (
	"math"
	"strings"
	"time"
)

type LineItem struct {
	ProductID string
	Quantity  int32
}

// Cart is the aggregate for one owner's cart. Total is derived on every
// commit; Version is 0 until the cart is first persisted.
type Cart struct {
	ID        string
	OwnerID   string
	Items     []LineItem
	Total     int64
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewCart(ownerID string) Cart {
	return Cart{
		OwnerID: strings.TrimSpace(ownerID),
		Items:   []LineItem{},
	}
}

// IsNew reports whether the cart has never been persisted.
func (c Cart) IsNew() bool {
	return c.Version == 0
}

func (c Cart) Clone() Cart {
	out := c
	out.Items = make([]LineItem, len(c.Items))
	copy(out.Items, c.Items)
	return out
}

// AddItem increments the line for productID, or appends a new one.
func (c *Cart) AddItem(productID string, qty int32) error {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return &InvalidLineItemError{Reason: "product id is required"}
	}
	if qty < 1 {
		return &InvalidLineItemError{ProductID: productID, Reason: "quantity must be at least 1"}
	}

	if idx := c.indexOf(productID); idx >= 0 {
		if c.Items[idx].Quantity > math.MaxInt32-qty {
			return &InvalidLineItemError{ProductID: productID, Reason: "quantity overflows"}
		}
		c.Items[idx].Quantity += qty
		return nil
	}
	c.Items = append(c.Items, LineItem{ProductID: productID, Quantity: qty})
	return nil
}

// SetItemQuantity upserts the line for productID. Zero is not a removal;
// use RemoveItem for that.
func (c *Cart) SetItemQuantity(productID string, qty int32) error {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return &InvalidLineItemError{Reason: "product id is required"}
	}
	if qty < 1 {
		return &InvalidLineItemError{ProductID: productID, Reason: "quantity must be at least 1"}
	}

	if idx := c.indexOf(productID); idx >= 0 {
		c.Items[idx].Quantity = qty
		return nil
	}
	c.Items = append(c.Items, LineItem{ProductID: productID, Quantity: qty})
	return nil
}

func (c *Cart) RemoveItem(productID string) error {
	idx := c.indexOf(strings.TrimSpace(productID))
	if idx < 0 {
		return ErrItemNotFound
	}
	c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
	return nil
}

func (c *Cart) Clear() {
	c.Items = []LineItem{}
}

func (c Cart) indexOf(productID string) int {
	for i, it := range c.Items {
		if it.ProductID == productID {
			return i
		}
	}
	return -1
}
