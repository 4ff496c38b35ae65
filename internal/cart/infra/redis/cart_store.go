package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/cart/domain"
	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "cart:"

type cartDoc struct {
	ID        string        `json:"id"`
	OwnerID   string        `json:"owner_id"`
	Items     []lineItemDoc `json:"items"`
	Total     int64         `json:"total"`
	Version   int64         `json:"version"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type lineItemDoc struct {
	ProductID string `json:"product_id"`
	Quantity  int32  `json:"quantity"`
}

// CartStore keeps one JSON document per owner under cart:{owner}. Writes
// use WATCH/MULTI so a version check and the SET happen atomically.
type CartStore struct {
	rdb *goredis.Client
	now func() time.Time
}

func NewCartStore(rdb *goredis.Client) *CartStore {
	return &CartStore{
		rdb: rdb,
		now: func() time.Time { return time.Now().UTC() },
	}
}

func key(ownerID string) string { return keyPrefix + ownerID }

func (s *CartStore) Get(ctx context.Context, ownerID string) (domain.Cart, error) {
	raw, err := s.rdb.Get(ctx, key(ownerID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return domain.Cart{}, domain.ErrCartNotFound
	}
	if err != nil {
		return domain.Cart{}, err
	}
	var doc cartDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return domain.Cart{}, fmt.Errorf("decode cart %q: %w", ownerID, err)
	}
	return doc.toDomain(), nil
}

func (s *CartStore) Exists(ctx context.Context, ownerID string) (bool, error) {
	n, err := s.rdb.Exists(ctx, key(ownerID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *CartStore) Save(ctx context.Context, cart domain.Cart, expectedVersion int64) (domain.Cart, error) {
	k := key(cart.OwnerID)
	var saved cartDoc

	txf := func(tx *goredis.Tx) error {
		var current cartDoc
		var stored int64
		raw, err := tx.Get(ctx, k).Bytes()
		switch {
		case errors.Is(err, goredis.Nil):
		case err != nil:
			return err
		default:
			if err := json.Unmarshal(raw, &current); err != nil {
				return fmt.Errorf("decode cart %q: %w", cart.OwnerID, err)
			}
			stored = current.Version
		}

		if stored != expectedVersion {
			return &domain.ConcurrentModificationError{OwnerID: cart.OwnerID, Expected: expectedVersion, Actual: stored}
		}

		now := s.now()
		next := docFromDomain(cart)
		next.Version = expectedVersion + 1
		next.UpdatedAt = now
		if stored == 0 {
			next.CreatedAt = now
		} else {
			next.ID = current.ID
			next.CreatedAt = current.CreatedAt
		}

		payload, err := json.Marshal(next)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, k, payload, 0)
			return nil
		})
		if err != nil {
			return err
		}
		saved = next
		return nil
	}

	err := s.rdb.Watch(ctx, txf, k)
	if errors.Is(err, goredis.TxFailedErr) {
		return domain.Cart{}, &domain.ConcurrentModificationError{OwnerID: cart.OwnerID, Expected: expectedVersion, Actual: -1}
	}
	if err != nil {
		return domain.Cart{}, err
	}
	return saved.toDomain(), nil
}

func docFromDomain(c domain.Cart) cartDoc {
	items := make([]lineItemDoc, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, lineItemDoc{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return cartDoc{
		ID:      c.ID,
		OwnerID: c.OwnerID,
		Items:   items,
		Total:   c.Total,
	}
}

func (d cartDoc) toDomain() domain.Cart {
	items := make([]domain.LineItem, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, domain.LineItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return domain.Cart{
		ID:        d.ID,
		OwnerID:   d.OwnerID,
		Items:     items,
		Total:     d.Total,
		Version:   d.Version,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
