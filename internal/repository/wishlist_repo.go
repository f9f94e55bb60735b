package repository

import (
	"context"

	"gorm.io/gorm"

	"autohire/internal/domain"
)

type WishlistRepository struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) *WishlistRepository {
	return &WishlistRepository{db: db}
}

// Add inserts a wishlist row, mapping the (user, car) unique index violation
// to gorm.ErrDuplicatedKey so races past the Exists pre-check stay detectable.
func (r *WishlistRepository) Add(ctx context.Context, item *domain.WishlistItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		if isUniqueViolation(err) {
			return gorm.ErrDuplicatedKey
		}
		return err
	}
	return nil
}

func (r *WishlistRepository) ListByUser(ctx context.Context, userID int64) ([]domain.WishlistItem, error) {
	var out []domain.WishlistItem
	tx := r.db.WithContext(ctx).Preload("Car").Preload("Car.Brand").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out)
	return out, tx.Error
}

func (r *WishlistRepository) Exists(ctx context.Context, userID, carID int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&domain.WishlistItem{}).
		Where("user_id = ? AND car_id = ?", userID, carID).
		Count(&cnt)
	return cnt > 0, tx.Error
}

func (r *WishlistRepository) RemoveByCar(ctx context.Context, userID, carID int64) error {
	tx := r.db.WithContext(ctx).
		Where("user_id = ? AND car_id = ?", userID, carID).
		Delete(&domain.WishlistItem{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
