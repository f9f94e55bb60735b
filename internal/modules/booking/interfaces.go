package booking

import (
	"context"
	"time"

	"autohire/internal/domain"
	"autohire/internal/repository"
)

// BookingRepository defines the persistence operations the service needs.
type BookingRepository interface {
	FindConflict(ctx context.Context, carID int64, pickup, ret time.Time, excludeID int64) (*repository.ConflictWindow, error)
	CreateIfAvailable(ctx context.Context, b *domain.Booking) (*repository.ConflictWindow, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
	ListAll(ctx context.Context, f repository.BookingFilter) ([]domain.Booking, error)
	UpdateStatusCAS(ctx context.Context, id int64, from, to domain.BookingStatus) (bool, error)
	CompleteFinished(ctx context.Context, today time.Time) (int64, error)
}

// CarReader resolves the car being booked.
type CarReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Car, error)
}

// NotificationSender delivers lifecycle notifications. Best-effort: the
// service ignores its errors.
type NotificationSender interface {
	NotifyBookingCreated(ctx context.Context, b *domain.Booking) error
	NotifyBookingCancelled(ctx context.Context, b *domain.Booking) error
}
