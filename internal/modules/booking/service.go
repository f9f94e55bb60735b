package booking

import (
	"context"
	"errors"
	"math"
	"time"

	"gorm.io/gorm"

	"autohire/internal/domain"
	"autohire/internal/repository"
)

const dateLayout = "2006-01-02"

type Service struct {
	bookings BookingRepository
	cars     CarReader
	notifs   NotificationSender
	now      func() time.Time
}

func NewService(bookings BookingRepository, cars CarReader, notifs NotificationSender) *Service {
	return &Service{
		bookings: bookings,
		cars:     cars,
		notifs:   notifs,
		now:      time.Now,
	}
}

// parseWindow validates the ISO date pair and normalizes both to UTC midnight.
func parseWindow(pickupStr, returnStr string) (time.Time, time.Time, error) {
	pickup, err := time.ParseInLocation(dateLayout, pickupStr, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, ErrValidation
	}
	ret, err := time.ParseInLocation(dateLayout, returnStr, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, ErrValidation
	}
	if !ret.After(pickup) {
		return time.Time{}, time.Time{}, ErrValidation
	}
	return pickup, ret, nil
}

// CheckAvailability is a pure query: the result is advisory and is re-checked
// transactionally at create time.
func (s *Service) CheckAvailability(ctx context.Context, carID int64, req AvailabilityRequest) (*AvailabilityResult, error) {
	pickup, ret, err := parseWindow(req.PickupDate, req.ReturnDate)
	if err != nil {
		return nil, err
	}

	if _, err := s.cars.GetByID(ctx, carID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	conflict, err := s.bookings.FindConflict(ctx, carID, pickup, ret, 0)
	if err != nil {
		return nil, err
	}

	return &AvailabilityResult{Available: conflict == nil, Conflict: conflict}, nil
}

func (s *Service) Create(ctx context.Context, userID int64, req CreateBookingRequest) (*domain.Booking, error) {
	pickup, ret, err := parseWindow(req.PickupDate, req.ReturnDate)
	if err != nil {
		return nil, err
	}

	today := s.today()
	if pickup.Before(today) {
		return nil, ErrValidation
	}

	car, err := s.cars.GetByID(ctx, req.CarID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !car.IsAvailable {
		return nil, ErrNotAvailable
	}

	days := int(ret.Sub(pickup) / (24 * time.Hour))
	total := round2(float64(days) * car.PricePerDay)

	b := &domain.Booking{
		UserID:        userID,
		CarID:         car.ID,
		PickupDate:    pickup,
		ReturnDate:    ret,
		TotalDays:     days,
		TotalCost:     total,
		Status:        domain.BookingPending,
		PaymentStatus: domain.PaymentPending,
	}

	conflict, err := s.bookings.CreateIfAvailable(ctx, b)
	if err != nil {
		return nil, err
	}
	if conflict != nil {
		return nil, ErrNotAvailable
	}

	b.Car = car
	if s.notifs != nil {
		_ = s.notifs.NotifyBookingCreated(ctx, b)
	}

	return b, nil
}

func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, actor Actor, newStatus string) (*domain.Booking, error) {
	next := domain.BookingStatus(newStatus)
	if !domain.ValidBookingStatus(next) {
		return nil, ErrValidation
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !actor.IsAdmin() && b.UserID != actor.UserID {
		return nil, ErrForbidden
	}

	if !domain.CanTransition(b.Status, next) {
		return nil, ErrInvalidStatusTransition
	}

	// Compare-and-set on the status read above; losing the race to a
	// concurrent transition (payment confirm, another cancel) means the
	// precondition no longer holds.
	ok, err := s.bookings.UpdateStatusCAS(ctx, bookingID, b.Status, next)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidStatusTransition
	}

	updated, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if next == domain.BookingCancelled && s.notifs != nil {
		_ = s.notifs.NotifyBookingCancelled(ctx, updated)
	}

	return updated, nil
}

func (s *Service) Get(ctx context.Context, bookingID int64, actor Actor) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !actor.IsAdmin() && b.UserID != actor.UserID {
		// hide existence from non-owners
		return nil, ErrNotFound
	}
	return b, nil
}

// List returns the actor's own bookings, or all bookings (optionally
// filtered) for administrators.
func (s *Service) List(ctx context.Context, actor Actor, f repository.BookingFilter) ([]domain.Booking, error) {
	if actor.IsAdmin() {
		return s.bookings.ListAll(ctx, f)
	}
	return s.bookings.ListByUser(ctx, actor.UserID)
}

// CompleteFinished moves confirmed bookings whose rental period ended into
// completed. Called from the scheduled sweep.
func (s *Service) CompleteFinished(ctx context.Context) (int64, error) {
	return s.bookings.CompleteFinished(ctx, s.today())
}

func (s *Service) today() time.Time {
	n := s.now().UTC()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
