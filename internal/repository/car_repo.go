package repository

import (
	"context"

	"gorm.io/gorm"

	"autohire/internal/domain"
)

type CarRepository struct {
	db *gorm.DB
}

func NewCarRepository(db *gorm.DB) *CarRepository {
	return &CarRepository{db: db}
}

// CarFilter narrows catalog listings. Zero values mean "no filter".
type CarFilter struct {
	BrandID  int64
	CarType  string
	Featured bool
}

func (r *CarRepository) Create(ctx context.Context, c *domain.Car) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CarRepository) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	var c domain.Car
	tx := r.db.WithContext(ctx).Preload("Brand").First(&c, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &c, nil
}

func (r *CarRepository) List(ctx context.Context, f CarFilter) ([]domain.Car, error) {
	q := r.db.WithContext(ctx).Preload("Brand")
	if f.BrandID > 0 {
		q = q.Where("brand_id = ?", f.BrandID)
	}
	if f.CarType != "" {
		q = q.Where("car_type = ?", f.CarType)
	}
	if f.Featured {
		q = q.Where("featured = ?", true)
	}

	var out []domain.Car
	tx := q.Order("featured DESC, id ASC").Find(&out)
	return out, tx.Error
}

func (r *CarRepository) Update(ctx context.Context, c *domain.Car) error {
	return r.db.WithContext(ctx).Save(c).Error
}

// Delete removes the car; dependent bookings, reviews and wishlist entries go
// with it through the FK cascade.
func (r *CarRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Car{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
