package wishlist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"autohire/internal/domain"
)

type MockWishlistRepo struct {
	mock.Mock
}

func (m *MockWishlistRepo) Add(ctx context.Context, item *domain.WishlistItem) error {
	args := m.Called(ctx, item)
	if item != nil {
		item.ID = 7
	}
	return args.Error(0)
}

func (m *MockWishlistRepo) ListByUser(ctx context.Context, userID int64) ([]domain.WishlistItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WishlistItem), args.Error(1)
}

func (m *MockWishlistRepo) Exists(ctx context.Context, userID, carID int64) (bool, error) {
	args := m.Called(ctx, userID, carID)
	return args.Bool(0), args.Error(1)
}

func (m *MockWishlistRepo) RemoveByCar(ctx context.Context, userID, carID int64) error {
	args := m.Called(ctx, userID, carID)
	return args.Error(0)
}

type MockCarGate struct {
	mock.Mock
}

func (m *MockCarGate) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}

func TestService_Add(t *testing.T) {
	items := new(MockWishlistRepo)
	cars := new(MockCarGate)

	cars.On("GetByID", mock.Anything, int64(10)).Return(&domain.Car{ID: 10}, nil)
	items.On("Exists", mock.Anything, int64(42), int64(10)).Return(false, nil)
	items.On("Add", mock.Anything, mock.Anything).Return(nil)

	service := NewService(items, cars)

	item, err := service.Add(context.Background(), 42, 10)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), item.ID)
	assert.Equal(t, int64(10), item.CarID)
}

func TestService_Add_Duplicate(t *testing.T) {
	items := new(MockWishlistRepo)
	cars := new(MockCarGate)

	cars.On("GetByID", mock.Anything, int64(10)).Return(&domain.Car{ID: 10}, nil)
	items.On("Exists", mock.Anything, int64(42), int64(10)).Return(true, nil)

	service := NewService(items, cars)

	_, err := service.Add(context.Background(), 42, 10)

	assert.ErrorIs(t, err, ErrConflict)
	items.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestService_Add_CarMissing(t *testing.T) {
	cars := new(MockCarGate)
	cars.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(new(MockWishlistRepo), cars)

	_, err := service.Add(context.Background(), 42, 404)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Remove_NotSaved(t *testing.T) {
	items := new(MockWishlistRepo)
	items.On("RemoveByCar", mock.Anything, int64(42), int64(10)).Return(gorm.ErrRecordNotFound)

	service := NewService(items, new(MockCarGate))

	err := service.Remove(context.Background(), 42, 10)

	assert.ErrorIs(t, err, ErrNotFound)
}
