package migrate

import (
	"fmt"

	cartpg "github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/cart/infra/postgres"
	catalogpg "github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/catalog/infra/postgres"
	userpg "github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/user/infra/postgres"
	"gorm.io/gorm"
)

// Models lists every table owned by the api process.
func Models() []any {
	return []any{
		&userpg.UserRecord{},
		&catalogpg.ProductRecord{},
		&cartpg.CartRecord{},
	}
}

func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
