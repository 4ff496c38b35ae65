package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/catalog/app"
	"github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/catalog/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRecord struct {
	ID          string `gorm:"primaryKey;size:36"`
	Name        string `gorm:"not null"`
	Description string
	PriceAmount int64  `gorm:"not null"`
	Currency    string `gorm:"size:3;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ProductRecord) TableName() string { return "products" }

type ProductRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

func (r *ProductRepo) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	row := ProductRecord{
		ID:          uuid.NewString(),
		Name:        p.Name,
		Description: p.Description,
		PriceAmount: p.Price.Amount,
		Currency:    p.Price.Currency,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.Product{}, err
	}
	return row.toDomain(), nil
}

func (r *ProductRepo) Get(ctx context.Context, id string) (domain.Product, error) {
	prodID, err := uuid.Parse(id)
	if err != nil {
		return domain.Product{}, app.ErrInvalidInput
	}

	var row ProductRecord
	err = r.db.WithContext(ctx).Where("id = ?", prodID.String()).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Product{}, app.ErrNotFound
	}
	if err != nil {
		return domain.Product{}, err
	}
	return row.toDomain(), nil
}

func (r *ProductRepo) UpdatePrice(ctx context.Context, id string, price domain.Money) (domain.Product, error) {
	prodID, err := uuid.Parse(id)
	if err != nil {
		return domain.Product{}, app.ErrInvalidInput
	}

	res := r.db.WithContext(ctx).Model(&ProductRecord{}).
		Where("id = ?", prodID.String()).
		Updates(map[string]any{"price_amount": price.Amount, "currency": price.Currency})
	if res.Error != nil {
		return domain.Product{}, res.Error
	}
	if res.RowsAffected == 0 {
		return domain.Product{}, app.ErrNotFound
	}
	return r.Get(ctx, id)
}

func (r *ProductRepo) List(ctx context.Context, query string, limit int, cursor string) ([]domain.Product, string, error) {
	q := r.db.WithContext(ctx).Model(&ProductRecord{}).Order("id").Limit(limit)

	if c := strings.TrimSpace(cursor); c != "" {
		uid, err := uuid.Parse(c)
		if err != nil {
			return nil, "", app.ErrInvalidInput
		}
		q = q.Where("id > ?", uid.String())
	}
	if s := strings.TrimSpace(query); s != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(s)+"%")
	}

	var rows []ProductRecord
	if err := q.Find(&rows).Error; err != nil {
		return nil, "", err
	}

	out := make([]domain.Product, 0, len(rows))
	var nextCursor string
	for _, row := range rows {
		out = append(out, row.toDomain())
		nextCursor = row.ID
	}

	if len(out) < limit {
		nextCursor = ""
	}

	return out, nextCursor, nil
}

func (row ProductRecord) toDomain() domain.Product {
	return domain.Product{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Price: domain.Money{
			Amount:   row.PriceAmount,
			Currency: row.Currency,
		},
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
