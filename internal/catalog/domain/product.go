package domain

import (
	"strings"
	"time"
)

// Money is an amount in minor units (fils for AED) with an ISO 4217 code.
type Money struct {
	Currency string
	Amount   int64
}

// NewMoney normalizes the currency code and rejects non-positive amounts.
func NewMoney(currency string, amount int64) (Money, bool) {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if len(currency) != 3 || amount <= 0 {
		return Money{}, false
	}
	return Money{Currency: currency, Amount: amount}, true
}

type Product struct {
	ID          string
	Name        string
	Price       Money
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
