package wishlist

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"autohire/internal/domain"
)

type wishlistRepo interface {
	Add(ctx context.Context, item *domain.WishlistItem) error
	ListByUser(ctx context.Context, userID int64) ([]domain.WishlistItem, error)
	Exists(ctx context.Context, userID, carID int64) (bool, error)
	RemoveByCar(ctx context.Context, userID, carID int64) error
}

type carGate interface {
	GetByID(ctx context.Context, id int64) (*domain.Car, error)
}

type Service struct {
	items wishlistRepo
	cars  carGate
}

func NewService(items wishlistRepo, cars carGate) *Service {
	return &Service{items: items, cars: cars}
}

// Add saves a car to the user's wishlist. Adding the same car twice
// returns ErrConflict.
func (s *Service) Add(ctx context.Context, userID, carID int64) (*domain.WishlistItem, error) {
	if _, err := s.cars.GetByID(ctx, carID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	exists, err := s.items.Exists(ctx, userID, carID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrConflict
	}

	item := &domain.WishlistItem{UserID: userID, CarID: carID}
	if err := s.items.Add(ctx, item); err != nil {
		// Concurrent add of the same pair trips the unique index.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return item, nil
}

func (s *Service) List(ctx context.Context, userID int64) ([]domain.WishlistItem, error) {
	return s.items.ListByUser(ctx, userID)
}

func (s *Service) Remove(ctx context.Context, userID, carID int64) error {
	err := s.items.RemoveByCar(ctx, userID, carID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
