package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/cart/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type CartRepo struct {
	db  *gorm.DB
	now func() time.Time
}

func NewCartRepo(db *gorm.DB) *CartRepo {
	return &CartRepo{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (r *CartRepo) Get(ctx context.Context, ownerID string) (domain.Cart, error) {
	var rec CartRecord
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Cart{}, domain.ErrCartNotFound
	}
	if err != nil {
		return domain.Cart{}, err
	}
	return rec.toDomain(), nil
}

func (r *CartRepo) Exists(ctx context.Context, ownerID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&CartRecord{}).Where("owner_id = ?", ownerID).Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Save inserts the cart when expectedVersion is 0, otherwise updates the
// row only if its version still equals expectedVersion.
func (r *CartRepo) Save(ctx context.Context, cart domain.Cart, expectedVersion int64) (domain.Cart, error) {
	now := r.now()
	var saved CartRecord

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if expectedVersion == 0 {
			rec := CartRecord{
				ID:        cart.ID,
				OwnerID:   cart.OwnerID,
				Items:     toRecordItems(cart.Items),
				Total:     cart.Total,
				Version:   1,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := tx.Create(&rec).Error; err != nil {
				if isUniqueViolation(err) {
					return &domain.ConcurrentModificationError{OwnerID: cart.OwnerID, Expected: 0, Actual: -1}
				}
				return err
			}
			saved = rec
			return nil
		}

		res := tx.Model(&CartRecord{}).
			Where("owner_id = ? AND version = ?", cart.OwnerID, expectedVersion).
			Updates(map[string]any{
				"items":      toRecordItems(cart.Items),
				"total":      cart.Total,
				"version":    expectedVersion + 1,
				"updated_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return &domain.ConcurrentModificationError{
				OwnerID:  cart.OwnerID,
				Expected: expectedVersion,
				Actual:   currentVersion(tx, cart.OwnerID),
			}
		}
		return tx.Where("owner_id = ?", cart.OwnerID).First(&saved).Error
	})
	if err != nil {
		return domain.Cart{}, err
	}
	return saved.toDomain(), nil
}

func currentVersion(tx *gorm.DB, ownerID string) int64 {
	var rec CartRecord
	if err := tx.Select("version").Where("owner_id = ?", ownerID).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0
		}
		return -1
	}
	return rec.Version
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
