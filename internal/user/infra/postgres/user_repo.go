package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/user/app"
	"github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/user/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRecord struct {
	ID        string `gorm:"primaryKey;size:36"`
	Email     string `gorm:"uniqueIndex;not null"`
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserRecord) TableName() string { return "users" }

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	row := UserRecord{
		ID:    uuid.NewString(),
		Email: u.Email,
		Name:  u.Name,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.User{}, app.ErrEmailTaken
		}
		return domain.User{}, err
	}
	return row.toDomain(), nil
}

func (r *UserRepo) Get(ctx context.Context, id string) (domain.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.User{}, app.ErrNotFound
	}

	var row UserRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.User{}, app.ErrNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	return row.toDomain(), nil
}

// Exists treats ids that are not uuids as unknown users.
func (r *UserRepo) Exists(ctx context.Context, id string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, nil
	}

	var n int64
	if err := r.db.WithContext(ctx).Model(&UserRecord{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (row UserRecord) toDomain() domain.User {
	return domain.User{
		ID:        row.ID,
		Email:     row.Email,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
	}
}
