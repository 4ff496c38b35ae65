package migrate

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func TestRun(t *testing.T) {
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, _ := db.DB()
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := Run(db); err != nil {
		t.Fatalf("Run: %v", err)
	}
	// Idempotent.
	if err := Run(db); err != nil {
		t.Fatalf("second Run: %v", err)
	}

	for _, table := range []string{"users", "products", "carts"} {
		if !db.Migrator().HasTable(table) {
			t.Fatalf("expected table %q", table)
		}
	}
}
