package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/cart/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(&CartRecord{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestCartRepo_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewCartRepo(openTestDB(t))

	if _, err := repo.Get(ctx, "u1"); !errors.Is(err, domain.ErrCartNotFound) {
		t.Fatalf("expected ErrCartNotFound, got %v", err)
	}
	if ok, err := repo.Exists(ctx, "u1"); err != nil || ok {
		t.Fatalf("expected not exists, got %v %v", ok, err)
	}

	cart := domain.Cart{
		ID:      uuid.NewString(),
		OwnerID: "u1",
		Items:   []domain.LineItem{{ProductID: "p2", Quantity: 1}, {ProductID: "p1", Quantity: 3}},
		Total:   700,
	}
	created, err := repo.Save(ctx, cart, 0)
	if err != nil {
		t.Fatalf("Save create: %v", err)
	}
	if created.Version != 1 || created.CreatedAt.IsZero() {
		t.Fatalf("unexpected created cart: %+v", created)
	}

	got, err := repo.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != cart.ID || got.Total != 700 || got.Version != 1 {
		t.Fatalf("unexpected cart: %+v", got)
	}
	if len(got.Items) != 2 || got.Items[0].ProductID != "p2" || got.Items[1].Quantity != 3 {
		t.Fatalf("items not preserved in order: %+v", got.Items)
	}
	if ok, _ := repo.Exists(ctx, "u1"); !ok {
		t.Fatalf("expected exists")
	}

	got.Items = got.Items[:1]
	got.Total = 100
	updated, err := repo.Save(ctx, got, 1)
	if err != nil {
		t.Fatalf("Save update: %v", err)
	}
	if updated.Version != 2 || updated.Total != 100 || len(updated.Items) != 1 {
		t.Fatalf("unexpected updated cart: %+v", updated)
	}
	if updated.ID != cart.ID {
		t.Fatalf("id must not change: %s vs %s", updated.ID, cart.ID)
	}
}

func TestCartRepo_VersionConflicts(t *testing.T) {
	ctx := context.Background()
	repo := NewCartRepo(openTestDB(t))

	cart := domain.Cart{ID: uuid.NewString(), OwnerID: "u1", Items: []domain.LineItem{{ProductID: "p", Quantity: 1}}, Total: 5}
	if _, err := repo.Save(ctx, cart, 0); err != nil {
		t.Fatalf("Save create: %v", err)
	}

	t.Run("second create", func(t *testing.T) {
		dup := cart
		dup.ID = uuid.NewString()
		_, err := repo.Save(ctx, dup, 0)
		if !errors.Is(err, domain.ErrConcurrentModification) {
			t.Fatalf("expected ErrConcurrentModification, got %v", err)
		}
	})

	t.Run("stale update", func(t *testing.T) {
		if _, err := repo.Save(ctx, cart, 1); err != nil {
			t.Fatalf("Save v1: %v", err)
		}
		stale := cart
		stale.Total = 999
		_, err := repo.Save(ctx, stale, 1)
		var conflict *domain.ConcurrentModificationError
		if !errors.As(err, &conflict) {
			t.Fatalf("expected ConcurrentModificationError, got %v", err)
		}
		if conflict.Expected != 1 || conflict.Actual != 2 {
			t.Fatalf("unexpected conflict: %+v", conflict)
		}

		got, _ := repo.Get(ctx, "u1")
		if got.Total != 5 || got.Version != 2 {
			t.Fatalf("stale write must not apply: %+v", got)
		}
	})
}

func TestIsUniqueViolation(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"translated duplicate", fmt.Errorf("create cart: %w", gorm.ErrDuplicatedKey), true},
		{"postgres unique_violation", &pgconn.PgError{Code: "23505"}, true},
		{"postgres check_violation", &pgconn.PgError{Code: "23514", Message: "violates check constraint"}, false},
		{"untranslated driver text", errors.New("UNIQUE constraint failed: carts.owner_id"), false},
		{"unrelated error mentioning a unique constraint", errors.New("unique constraint \"carts_total_check\" is deferred"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := isUniqueViolation(tc.err); got != tc.want {
				t.Fatalf("isUniqueViolation(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}
