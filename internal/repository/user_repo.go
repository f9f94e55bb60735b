package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"autohire/internal/domain"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	tx := r.db.WithContext(ctx).First(&u, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	tx := r.db.WithContext(ctx).Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&u)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &u, nil
}

func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Count(&cnt)
	return cnt > 0, tx.Error
}
