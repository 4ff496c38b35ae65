package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/user/app"
	"github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/user/domain"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
		TranslateError: true,
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

	if err := db.AutoMigrate(&UserRecord{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestUserRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepo(openTestDB(t))

	u, err := repo.Create(ctx, domain.User{Email: "noor@example.com", Name: "Noor"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	t.Run("exists", func(t *testing.T) {
		ok, err := repo.Exists(ctx, u.ID)
		if err != nil || !ok {
			t.Fatalf("expected user to exist, got (%v, %v)", ok, err)
		}
	})

	t.Run("unknown uuid", func(t *testing.T) {
		ok, err := repo.Exists(ctx, uuid.NewString())
		if err != nil || ok {
			t.Fatalf("expected absent, got (%v, %v)", ok, err)
		}
	})

	t.Run("malformed id is absent", func(t *testing.T) {
		ok, err := repo.Exists(ctx, "ghost")
		if err != nil || ok {
			t.Fatalf("expected absent, got (%v, %v)", ok, err)
		}
	})

	t.Run("get", func(t *testing.T) {
		got, err := repo.Get(ctx, u.ID)
		if err != nil || got.Email != "noor@example.com" {
			t.Fatalf("unexpected (%+v, %v)", got, err)
		}
		if _, err := repo.Get(ctx, uuid.NewString()); !errors.Is(err, app.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := repo.Create(ctx, domain.User{Email: "noor@example.com"})
		if !errors.Is(err, app.ErrEmailTaken) {
			t.Fatalf("expected ErrEmailTaken, got %v", err)
		}
	})
}
