package catalog

import (
	"context"
	"errors"
	"math"

	"gorm.io/gorm"

	"autohire/internal/domain"
	"autohire/internal/repository"
)

var ErrNotFound = errors.New("not_found")

type carRepo interface {
	Create(ctx context.Context, c *domain.Car) error
	GetByID(ctx context.Context, id int64) (*domain.Car, error)
	List(ctx context.Context, f repository.CarFilter) ([]domain.Car, error)
	Update(ctx context.Context, c *domain.Car) error
	Delete(ctx context.Context, id int64) error
}

type brandRepo interface {
	Create(ctx context.Context, b *domain.Brand) error
	List(ctx context.Context) ([]domain.Brand, error)
	Delete(ctx context.Context, id int64) error
}

type reviewAggregator interface {
	AggregateForCar(ctx context.Context, carID int64) (float64, int64, error)
}

type Service struct {
	cars    carRepo
	brands  brandRepo
	reviews reviewAggregator
}

func NewService(cars carRepo, brands brandRepo, reviews reviewAggregator) *Service {
	return &Service{cars: cars, brands: brands, reviews: reviews}
}

func (s *Service) ListCars(ctx context.Context, f repository.CarFilter) ([]domain.Car, error) {
	cars, err := s.cars.List(ctx, f)
	if err != nil {
		return nil, err
	}
	for i := range cars {
		s.attachRating(ctx, &cars[i])
	}
	return cars, nil
}

func (s *Service) GetCar(ctx context.Context, id int64) (*domain.Car, error) {
	car, err := s.cars.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	s.attachRating(ctx, car)
	return car, nil
}

func (s *Service) CreateCar(ctx context.Context, req CreateCarRequest) (*domain.Car, error) {
	car := req.toDomain()
	if err := s.cars.Create(ctx, car); err != nil {
		return nil, err
	}
	return car, nil
}

func (s *Service) UpdateCar(ctx context.Context, id int64, req CreateCarRequest) (*domain.Car, error) {
	car, err := s.cars.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	updated := req.toDomain()
	updated.ID = car.ID
	updated.CreatedAt = car.CreatedAt
	if err := s.cars.Update(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) DeleteCar(ctx context.Context, id int64) error {
	if err := s.cars.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	return s.brands.List(ctx)
}

func (s *Service) CreateBrand(ctx context.Context, req CreateBrandRequest) (*domain.Brand, error) {
	b := &domain.Brand{Name: req.Name, ImageURL: req.ImageURL}
	if err := s.brands.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) DeleteBrand(ctx context.Context, id int64) error {
	if err := s.brands.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// attachRating fills the computed review aggregate; a failure here only
// leaves the rating at zero, it never fails the catalog read.
func (s *Service) attachRating(ctx context.Context, car *domain.Car) {
	avg, cnt, err := s.reviews.AggregateForCar(ctx, car.ID)
	if err != nil {
		return
	}
	car.AverageRating = math.Round(avg*10) / 10
	car.ReviewCount = cnt
}
