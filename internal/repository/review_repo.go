package repository

import (
	"context"

	"gorm.io/gorm"

	"autohire/internal/domain"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create inserts a review. The (user, car) unique index surfaces duplicates
// as gorm.ErrDuplicatedKey regardless of the backing store.
func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	if err := r.db.WithContext(ctx).Create(rv).Error; err != nil {
		if isUniqueViolation(err) {
			return gorm.ErrDuplicatedKey
		}
		return err
	}
	return nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	var rv domain.Review
	tx := r.db.WithContext(ctx).First(&rv, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &rv, nil
}

func (r *ReviewRepository) ListByCar(ctx context.Context, carID int64) ([]domain.Review, error) {
	var out []domain.Review
	tx := r.db.WithContext(ctx).Preload("User").
		Where("car_id = ?", carID).
		Order("created_at DESC").
		Find(&out)
	return out, tx.Error
}

// AggregateForCar returns the raw rating mean and count; rounding is the
// caller's concern.
func (r *ReviewRepository) AggregateForCar(ctx context.Context, carID int64) (float64, int64, error) {
	var row struct {
		Avg float64
		Cnt int64
	}
	tx := r.db.WithContext(ctx).Model(&domain.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS cnt").
		Where("car_id = ?", carID).
		Scan(&row)
	return row.Avg, row.Cnt, tx.Error
}

func (r *ReviewRepository) Update(ctx context.Context, rv *domain.Review) error {
	return r.db.WithContext(ctx).Save(rv).Error
}

func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Review{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
