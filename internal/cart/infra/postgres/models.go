package postgres

import (
	"time"

	"github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/cart/domain"
	"gorm.io/datatypes"
)

type LineItemRecord struct {
	ProductID string `json:"product_id"`
	Quantity  int32  `json:"quantity"`
}

// CartRecord stores the whole aggregate in one row so that items, total
// and version change in a single statement.
type CartRecord struct {
	ID        string                              `gorm:"primaryKey;size:36"`
	OwnerID   string                              `gorm:"uniqueIndex;size:64;not null"`
	Items     datatypes.JSONSlice[LineItemRecord] `gorm:"not null"`
	Total     int64                               `gorm:"not null"`
	Version   int64                               `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CartRecord) TableName() string { return "carts" }

func toRecordItems(items []domain.LineItem) datatypes.JSONSlice[LineItemRecord] {
	out := make(datatypes.JSONSlice[LineItemRecord], 0, len(items))
	for _, it := range items {
		out = append(out, LineItemRecord{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return out
}

func (r CartRecord) toDomain() domain.Cart {
	items := make([]domain.LineItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, domain.LineItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return domain.Cart{
		ID:        r.ID,
		OwnerID:   r.OwnerID,
		Items:     items,
		Total:     r.Total,
		Version:   r.Version,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
