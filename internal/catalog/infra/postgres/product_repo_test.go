package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/catalog/app"
	"github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/catalog/domain"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
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

	if err := db.AutoMigrate(&ProductRecord{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestProductRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepo(openTestDB(t))

	p, err := repo.Create(ctx, domain.Product{
		Name:  "Amber Musk 100ml",
		Price: domain.Money{Currency: "AED", Amount: 32000},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	t.Run("get", func(t *testing.T) {
		got, err := repo.Get(ctx, p.ID)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got.Price.Amount != 32000 || got.Name != "Amber Musk 100ml" {
			t.Fatalf("unexpected product: %+v", got)
		}
	})

	t.Run("missing -> not found", func(t *testing.T) {
		_, err := repo.Get(ctx, uuid.NewString())
		if !errors.Is(err, app.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("malformed id -> invalid", func(t *testing.T) {
		_, err := repo.Get(ctx, "not-a-uuid")
		if !errors.Is(err, app.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("update price", func(t *testing.T) {
		got, err := repo.UpdatePrice(ctx, p.ID, domain.Money{Currency: "AED", Amount: 28000})
		if err != nil {
			t.Fatalf("UpdatePrice: %v", err)
		}
		if got.Price.Amount != 28000 {
			t.Fatalf("expected 28000, got %d", got.Price.Amount)
		}
		if _, err := repo.UpdatePrice(ctx, uuid.NewString(), domain.Money{Currency: "AED", Amount: 1}); !errors.Is(err, app.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("list filters by name", func(t *testing.T) {
		if _, err := repo.Create(ctx, domain.Product{Name: "Rose Oud", Price: domain.Money{Currency: "AED", Amount: 100}}); err != nil {
			t.Fatalf("Create: %v", err)
		}
		items, next, err := repo.List(ctx, "amber", 10, "")
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(items) != 1 || items[0].ID != p.ID || next != "" {
			t.Fatalf("unexpected list: %+v next=%q", items, next)
		}
	})
}
