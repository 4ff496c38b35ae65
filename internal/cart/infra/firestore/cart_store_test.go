package firestore

import (
	"context"
	"errors"
	"os"
	"testing"

	"cloud.google.com/go/firestore"
	"github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/cart/domain"
	"github.com/google/uuid"
)

// Runs against the Firestore emulator only.
func newTestStore(t *testing.T) *CartStore {
	t.Helper()
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("set FIRESTORE_EMULATOR_HOST to run firestore store tests")
	}
	client, err := firestore.NewClient(context.Background(), "cart-test")
	if err != nil {
		t.Fatalf("firestore client: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return NewCartStore(client)
}

func TestCartStore_CompareAndSet(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	owner := uuid.NewString()

	if ok, err := store.Exists(ctx, owner); err != nil || ok {
		t.Fatalf("expected missing cart, got %v %v", ok, err)
	}

	cart := domain.Cart{ID: uuid.NewString(), OwnerID: owner, Items: []domain.LineItem{{ProductID: "p", Quantity: 1}}, Total: 10}
	created, err := store.Save(ctx, cart, 0)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Version != 1 {
		t.Fatalf("expected version 1, got %d", created.Version)
	}

	if _, err := store.Save(ctx, cart, 0); !errors.Is(err, domain.ErrConcurrentModification) {
		t.Fatalf("expected conflict on second create, got %v", err)
	}

	got, err := store.Get(ctx, owner)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	got.Items = append(got.Items, domain.LineItem{ProductID: "q", Quantity: 2})
	got.Total = 30
	updated, err := store.Save(ctx, got, 1)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Version != 2 || len(updated.Items) != 2 || updated.CreatedAt.IsZero() {
		t.Fatalf("unexpected cart: %+v", updated)
	}

	if _, err := store.Save(ctx, got, 1); !errors.Is(err, domain.ErrConcurrentModification) {
		t.Fatalf("expected conflict on stale update, got %v", err)
	}
}
