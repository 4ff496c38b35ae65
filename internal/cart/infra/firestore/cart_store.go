package firestore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/cart/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const collection = "carts"

// CartStore keeps one document per owner (docId = ownerId) in the carts
// collection. Save reads and writes inside a Firestore transaction.
type CartStore struct {
	client *firestore.Client
	now    func() time.Time
}

func NewCartStore(client *firestore.Client) *CartStore {
	return &CartStore{
		client: client,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

type cartDoc struct {
	ID        string        `firestore:"id"`
	OwnerID   string        `firestore:"ownerId"`
	Items     []lineItemDoc `firestore:"items"`
	Total     int64         `firestore:"total"`
	Version   int64         `firestore:"version"`
	CreatedAt time.Time     `firestore:"createdAt"`
	UpdatedAt time.Time     `firestore:"updatedAt"`
}

type lineItemDoc struct {
	ProductID string `firestore:"productId"`
	Quantity  int32  `firestore:"quantity"`
}

func (s *CartStore) doc(ownerID string) (*firestore.DocumentRef, error) {
	if s == nil || s.client == nil {
		return nil, errors.New("cart_store_fs: firestore client is nil")
	}
	id := strings.TrimSpace(ownerID)
	if id == "" {
		return nil, errors.New("cart_store_fs: owner id is empty")
	}
	return s.client.Collection(collection).Doc(id), nil
}

func (s *CartStore) Get(ctx context.Context, ownerID string) (domain.Cart, error) {
	ref, err := s.doc(ownerID)
	if err != nil {
		return domain.Cart{}, err
	}
	snap, err := ref.Get(ctx)
	if status.Code(err) == codes.NotFound {
		return domain.Cart{}, domain.ErrCartNotFound
	}
	if err != nil {
		return domain.Cart{}, err
	}
	var d cartDoc
	if err := snap.DataTo(&d); err != nil {
		return domain.Cart{}, fmt.Errorf("decode cart %q: %w", ownerID, err)
	}
	return d.toDomain(), nil
}

func (s *CartStore) Exists(ctx context.Context, ownerID string) (bool, error) {
	ref, err := s.doc(ownerID)
	if err != nil {
		return false, err
	}
	_, err = ref.Get(ctx)
	if status.Code(err) == codes.NotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *CartStore) Save(ctx context.Context, cart domain.Cart, expectedVersion int64) (domain.Cart, error) {
	ref, err := s.doc(cart.OwnerID)
	if err != nil {
		return domain.Cart{}, err
	}

	var saved cartDoc
	err = s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		var current cartDoc
		var stored int64

		snap, err := tx.Get(ref)
		switch {
		case status.Code(err) == codes.NotFound:
		case err != nil:
			return err
		default:
			if err := snap.DataTo(&current); err != nil {
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
			saved = next
			return tx.Create(ref, next)
		}
		next.ID = current.ID
		next.CreatedAt = current.CreatedAt
		saved = next
		return tx.Set(ref, next)
	})
	if err != nil {
		var conflict *domain.ConcurrentModificationError
		if errors.As(err, &conflict) {
			return domain.Cart{}, conflict
		}
		if c := status.Code(err); c == codes.Aborted || c == codes.AlreadyExists {
			return domain.Cart{}, &domain.ConcurrentModificationError{OwnerID: cart.OwnerID, Expected: expectedVersion, Actual: -1}
		}
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
