package repository

import (
	"context"

	"gorm.io/gorm"

	"autohire/internal/domain"
)

type BrandRepository struct {
	db *gorm.DB
}

func NewBrandRepository(db *gorm.DB) *BrandRepository {
	return &BrandRepository{db: db}
}

func (r *BrandRepository) Create(ctx context.Context, b *domain.Brand) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BrandRepository) GetByID(ctx context.Context, id int64) (*domain.Brand, error) {
	var b domain.Brand
	tx := r.db.WithContext(ctx).First(&b, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &b, nil
}

func (r *BrandRepository) List(ctx context.Context) ([]domain.Brand, error) {
	var out []domain.Brand
	tx := r.db.WithContext(ctx).Order("name ASC").Find(&out)
	return out, tx.Error
}

func (r *BrandRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Brand{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
