package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"autohire/internal/domain"
	"autohire/internal/repository"
)

// Mock repositories
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) FindConflict(ctx context.Context, carID int64, pickup, ret time.Time, excludeID int64) (*repository.ConflictWindow, error) {
	args := m.Called(ctx, carID, pickup, ret, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.ConflictWindow), args.Error(1)
}

func (m *MockBookingRepository) CreateIfAvailable(ctx context.Context, b *domain.Booking) (*repository.ConflictWindow, error) {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 999 // simulate DB insert
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.ConflictWindow), args.Error(1)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListAll(ctx context.Context, f repository.BookingFilter) ([]domain.Booking, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatusCAS(ctx context.Context, id int64, from, to domain.BookingStatus) (bool, error) {
	args := m.Called(ctx, id, from, to)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) CompleteFinished(ctx context.Context, today time.Time) (int64, error) {
	args := m.Called(ctx, today)
	return args.Get(0).(int64), args.Error(1)
}

type MockCarReader struct {
	mock.Mock
}

func (m *MockCarReader) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}

type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) NotifyBookingCreated(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockNotificationSender) NotifyBookingCancelled(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestService(bookings *MockBookingRepository, cars *MockCarReader, notifs *MockNotificationSender) *Service {
	s := NewService(bookings, cars, notifs)
	s.now = fixedClock(time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC))
	return s
}

func TestService_Create_Success(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCars := new(MockCarReader)
	mockNotifs := new(MockNotificationSender)

	car := &domain.Car{ID: 10, Name: "Toyota RAV4", PricePerDay: 74.50, IsAvailable: true}
	mockCars.On("GetByID", mock.Anything, int64(10)).Return(car, nil)
	mockBookings.On("CreateIfAvailable", mock.Anything, mock.Anything).Return(nil, nil)
	mockNotifs.On("NotifyBookingCreated", mock.Anything, mock.Anything).Return(nil)

	service := newTestService(mockBookings, mockCars, mockNotifs)

	b, err := service.Create(context.Background(), 42, CreateBookingRequest{
		CarID:      10,
		PickupDate: "2026-03-10",
		ReturnDate: "2026-03-13",
	})

	assert.NoError(t, err)
	assert.NotNil(t, b)
	assert.Equal(t, 3, b.TotalDays)
	assert.Equal(t, 223.5, b.TotalCost)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.Equal(t, domain.PaymentPending, b.PaymentStatus)
	mockNotifs.AssertCalled(t, "NotifyBookingCreated", mock.Anything, mock.Anything)
}

func TestService_Create_Conflict(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCars := new(MockCarReader)
	mockNotifs := new(MockNotificationSender)

	car := &domain.Car{ID: 10, PricePerDay: 50, IsAvailable: true}
	mockCars.On("GetByID", mock.Anything, int64(10)).Return(car, nil)

	conflict := &repository.ConflictWindow{
		BookingID:  7,
		PickupDate: time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
		ReturnDate: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
	}
	mockBookings.On("CreateIfAvailable", mock.Anything, mock.Anything).Return(conflict, nil)

	service := newTestService(mockBookings, mockCars, mockNotifs)

	_, err := service.Create(context.Background(), 42, CreateBookingRequest{
		CarID:      10,
		PickupDate: "2026-03-10",
		ReturnDate: "2026-03-13",
	})

	assert.ErrorIs(t, err, ErrNotAvailable)
	mockNotifs.AssertNotCalled(t, "NotifyBookingCreated", mock.Anything, mock.Anything)
}

func TestService_Create_InvalidDates(t *testing.T) {
	service := newTestService(new(MockBookingRepository), new(MockCarReader), new(MockNotificationSender))

	cases := []struct {
		name   string
		pickup string
		ret    string
	}{
		{"return before pickup", "2026-03-13", "2026-03-10"},
		{"zero-length window", "2026-03-10", "2026-03-10"},
		{"garbage pickup", "not-a-date", "2026-03-13"},
		{"garbage return", "2026-03-10", "13/03/2026"},
		{"pickup in the past", "2026-02-20", "2026-02-22"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.Create(context.Background(), 42, CreateBookingRequest{
				CarID:      10,
				PickupDate: tc.pickup,
				ReturnDate: tc.ret,
			})
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestService_Create_CarUnavailable(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCars := new(MockCarReader)

	car := &domain.Car{ID: 10, PricePerDay: 50, IsAvailable: false}
	mockCars.On("GetByID", mock.Anything, int64(10)).Return(car, nil)

	service := newTestService(mockBookings, mockCars, new(MockNotificationSender))

	_, err := service.Create(context.Background(), 42, CreateBookingRequest{
		CarID:      10,
		PickupDate: "2026-03-10",
		ReturnDate: "2026-03-13",
	})

	assert.ErrorIs(t, err, ErrNotAvailable)
	mockBookings.AssertNotCalled(t, "CreateIfAvailable", mock.Anything, mock.Anything)
}

func TestService_Create_CarNotFound(t *testing.T) {
	mockCars := new(MockCarReader)
	mockCars.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	service := newTestService(new(MockBookingRepository), mockCars, new(MockNotificationSender))

	_, err := service.Create(context.Background(), 42, CreateBookingRequest{
		CarID:      404,
		PickupDate: "2026-03-10",
		ReturnDate: "2026-03-13",
	})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_CheckAvailability_BackToBackWindows(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCars := new(MockCarReader)

	mockCars.On("GetByID", mock.Anything, int64(10)).Return(&domain.Car{ID: 10}, nil)

	// Existing booking returns on the 13th; a pickup on the 13th does not
	// overlap because the return day is exclusive.
	pickup := time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)
	ret := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	mockBookings.On("FindConflict", mock.Anything, int64(10), pickup, ret, int64(0)).Return(nil, nil)

	service := newTestService(mockBookings, mockCars, new(MockNotificationSender))

	res, err := service.CheckAvailability(context.Background(), 10, AvailabilityRequest{
		PickupDate: "2026-03-13",
		ReturnDate: "2026-03-16",
	})

	assert.NoError(t, err)
	assert.True(t, res.Available)
	assert.Nil(t, res.Conflict)
}

func TestService_CheckAvailability_ReportsConflict(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCars := new(MockCarReader)

	mockCars.On("GetByID", mock.Anything, int64(10)).Return(&domain.Car{ID: 10}, nil)

	conflict := &repository.ConflictWindow{BookingID: 3}
	mockBookings.On("FindConflict", mock.Anything, int64(10), mock.Anything, mock.Anything, int64(0)).Return(conflict, nil)

	service := newTestService(mockBookings, mockCars, new(MockNotificationSender))

	res, err := service.CheckAvailability(context.Background(), 10, AvailabilityRequest{
		PickupDate: "2026-03-10",
		ReturnDate: "2026-03-13",
	})

	assert.NoError(t, err)
	assert.False(t, res.Available)
	assert.Equal(t, int64(3), res.Conflict.BookingID)
}

func TestService_UpdateStatus_CancelPending(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockNotifs := new(MockNotificationSender)

	b := &domain.Booking{ID: 5, UserID: 42, Status: domain.BookingPending}
	cancelled := &domain.Booking{ID: 5, UserID: 42, Status: domain.BookingCancelled}
	mockBookings.On("GetByID", mock.Anything, int64(5)).Return(b, nil).Once()
	mockBookings.On("UpdateStatusCAS", mock.Anything, int64(5), domain.BookingPending, domain.BookingCancelled).Return(true, nil)
	mockBookings.On("GetByID", mock.Anything, int64(5)).Return(cancelled, nil).Once()
	mockNotifs.On("NotifyBookingCancelled", mock.Anything, cancelled).Return(nil)

	service := newTestService(mockBookings, new(MockCarReader), mockNotifs)

	updated, err := service.UpdateStatus(context.Background(), 5, Actor{UserID: 42, Role: "customer"}, "cancelled")

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, updated.Status)
	mockNotifs.AssertCalled(t, "NotifyBookingCancelled", mock.Anything, cancelled)
}

func TestService_UpdateStatus_CancelCompleted(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	b := &domain.Booking{ID: 5, UserID: 42, Status: domain.BookingCompleted}
	mockBookings.On("GetByID", mock.Anything, int64(5)).Return(b, nil)

	service := newTestService(mockBookings, new(MockCarReader), new(MockNotificationSender))

	_, err := service.UpdateStatus(context.Background(), 5, Actor{UserID: 42, Role: "customer"}, "cancelled")

	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	mockBookings.AssertNotCalled(t, "UpdateStatusCAS", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_UpdateStatus_UnknownStatus(t *testing.T) {
	service := newTestService(new(MockBookingRepository), new(MockCarReader), new(MockNotificationSender))

	_, err := service.UpdateStatus(context.Background(), 5, Actor{UserID: 42, Role: "customer"}, "teleported")

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_UpdateStatus_LostRace(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	// Read pending, but a concurrent payment confirms the booking before
	// the cancel lands.
	b := &domain.Booking{ID: 5, UserID: 42, Status: domain.BookingPending}
	mockBookings.On("GetByID", mock.Anything, int64(5)).Return(b, nil)
	mockBookings.On("UpdateStatusCAS", mock.Anything, int64(5), domain.BookingPending, domain.BookingCancelled).Return(false, nil)

	service := newTestService(mockBookings, new(MockCarReader), new(MockNotificationSender))

	_, err := service.UpdateStatus(context.Background(), 5, Actor{UserID: 42, Role: "customer"}, "cancelled")

	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestService_UpdateStatus_Forbidden(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	b := &domain.Booking{ID: 5, UserID: 42, Status: domain.BookingPending}
	mockBookings.On("GetByID", mock.Anything, int64(5)).Return(b, nil)

	service := newTestService(mockBookings, new(MockCarReader), new(MockNotificationSender))

	_, err := service.UpdateStatus(context.Background(), 5, Actor{UserID: 777, Role: "customer"}, "cancelled")

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_UpdateStatus_AdminConfirms(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	b := &domain.Booking{ID: 5, UserID: 42, Status: domain.BookingPending}
	confirmed := &domain.Booking{ID: 5, UserID: 42, Status: domain.BookingConfirmed}
	mockBookings.On("GetByID", mock.Anything, int64(5)).Return(b, nil).Once()
	mockBookings.On("UpdateStatusCAS", mock.Anything, int64(5), domain.BookingPending, domain.BookingConfirmed).Return(true, nil)
	mockBookings.On("GetByID", mock.Anything, int64(5)).Return(confirmed, nil).Once()

	service := newTestService(mockBookings, new(MockCarReader), new(MockNotificationSender))

	updated, err := service.UpdateStatus(context.Background(), 5, Actor{UserID: 1, Role: "admin"}, "confirmed")

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, updated.Status)
}

func TestService_Get_HidesOtherUsersBookings(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	b := &domain.Booking{ID: 5, UserID: 42}
	mockBookings.On("GetByID", mock.Anything, int64(5)).Return(b, nil)

	service := newTestService(mockBookings, new(MockCarReader), new(MockNotificationSender))

	_, err := service.Get(context.Background(), 5, Actor{UserID: 777, Role: "customer"})
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := service.Get(context.Background(), 5, Actor{UserID: 1, Role: "admin"})
	assert.NoError(t, err)
	assert.Equal(t, int64(5), got.ID)
}

func TestService_List_ByRole(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	own := []domain.Booking{{ID: 1, UserID: 42}}
	all := []domain.Booking{{ID: 1, UserID: 42}, {ID: 2, UserID: 7}}
	mockBookings.On("ListByUser", mock.Anything, int64(42)).Return(own, nil)
	mockBookings.On("ListAll", mock.Anything, repository.BookingFilter{}).Return(all, nil)

	service := newTestService(mockBookings, new(MockCarReader), new(MockNotificationSender))

	got, err := service.List(context.Background(), Actor{UserID: 42, Role: "customer"}, repository.BookingFilter{})
	assert.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = service.List(context.Background(), Actor{UserID: 1, Role: "admin"}, repository.BookingFilter{})
	assert.NoError(t, err)
	assert.Len(t, got, 2)
}
