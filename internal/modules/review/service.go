package review

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"autohire/internal/domain"
)

type reviewRepo interface {
	Create(ctx context.Context, rv *domain.Review) error
	GetByID(ctx context.Context, id int64) (*domain.Review, error)
	ListByCar(ctx context.Context, carID int64) ([]domain.Review, error)
	Update(ctx context.Context, rv *domain.Review) error
	Delete(ctx context.Context, id int64) error
}

type carGate interface {
	GetByID(ctx context.Context, id int64) (*domain.Car, error)
}

type Service struct {
	reviews reviewRepo
	cars    carGate
}

func NewService(reviews reviewRepo, cars carGate) *Service {
	return &Service{reviews: reviews, cars: cars}
}

func (s *Service) Create(ctx context.Context, userID int64, req CreateReviewRequest) (*domain.Review, error) {
	if userID <= 0 || req.CarID <= 0 || req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRequest
	}

	if _, err := s.cars.GetByID(ctx, req.CarID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rv := &domain.Review{
		UserID:  userID,
		CarID:   req.CarID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	if err := s.reviews.Create(ctx, rv); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return rv, nil
}

func (s *Service) ListByCar(ctx context.Context, carID int64) ([]domain.Review, error) {
	if carID <= 0 {
		return nil, ErrInvalidRequest
	}
	return s.reviews.ListByCar(ctx, carID)
}

func (s *Service) Update(ctx context.Context, reviewID, userID int64, req UpdateReviewRequest) (*domain.Review, error) {
	rv, err := s.load(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if rv.UserID != userID {
		return nil, ErrForbidden
	}

	rv.Rating = req.Rating
	rv.Comment = req.Comment
	if err := s.reviews.Update(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *Service) Delete(ctx context.Context, reviewID, userID int64, admin bool) error {
	rv, err := s.load(ctx, reviewID)
	if err != nil {
		return err
	}
	if !admin && rv.UserID != userID {
		return ErrForbidden
	}
	return s.reviews.Delete(ctx, reviewID)
}

func (s *Service) load(ctx context.Context, id int64) (*domain.Review, error) {
	rv, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rv, nil
}
