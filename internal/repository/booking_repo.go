package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"autohire/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// ConflictWindow describes the reservation that blocks a requested window.
type ConflictWindow struct {
	BookingID  int64     `json:"booking_id"`
	PickupDate time.Time `json:"pickup_date"`
	ReturnDate time.Time `json:"return_date"`
}

// BookingFilter narrows admin listings. Zero values mean "no filter".
type BookingFilter struct {
	Status domain.BookingStatus
	UserID int64
	CarID  int64
}

// errWindowTaken aborts the create transaction when the re-check finds a
// conflict; it never escapes CreateIfAvailable.
var errWindowTaken = errors.New("booking window taken")

// FindConflict returns the first active booking overlapping [pickup, return)
// for the car, or nil. Windows are half-open: return_date itself is free.
// Tie-break is earliest pickup_date, then lowest id, so the answer is stable
// for a fixed snapshot.
func (r *BookingRepository) FindConflict(ctx context.Context, carID int64, pickup, ret time.Time, excludeID int64) (*ConflictWindow, error) {
	return findConflict(r.db.WithContext(ctx), carID, pickup, ret, excludeID)
}

func findConflict(tx *gorm.DB, carID int64, pickup, ret time.Time, excludeID int64) (*ConflictWindow, error) {
	var rows []ConflictWindow
	q := tx.Model(&domain.Booking{}).
		Select("id AS booking_id, pickup_date, return_date").
		Where("car_id = ?", carID).
		Where("status IN ?", []string{string(domain.BookingPending), string(domain.BookingConfirmed)}).
		Where("pickup_date < ? AND return_date > ?", ret, pickup).
		Order("pickup_date ASC, id ASC").
		Limit(1)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// CreateIfAvailable re-checks availability and inserts in one transaction.
// The car row is write-locked first so two racing creates for the same car
// serialize; the loser sees the winner's row and gets the conflict back.
func (r *BookingRepository) CreateIfAvailable(ctx context.Context, b *domain.Booking) (*ConflictWindow, error) {
	var conflict *ConflictWindow

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// A no-op update takes a row lock on both Postgres and SQLite
		// without needing FOR UPDATE support from the driver.
		if err := tx.Exec("UPDATE cars SET updated_at = updated_at WHERE id = ?", b.CarID).Error; err != nil {
			return err
		}

		c, err := findConflict(tx, b.CarID, b.PickupDate, b.ReturnDate, 0)
		if err != nil {
			return err
		}
		if c != nil {
			conflict = c
			return errWindowTaken
		}

		return tx.Create(b).Error
	})

	if errors.Is(err, errWindowTaken) {
		return conflict, nil
	}
	if err != nil {
		return nil, err
	}
	return nil, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	tx := r.db.WithContext(ctx).Preload("Car").Preload("Car.Brand").First(&b, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &b, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	var out []domain.Booking
	tx := r.db.WithContext(ctx).
		Preload("Car").Preload("Car.Brand").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out)
	return out, tx.Error
}

func (r *BookingRepository) ListAll(ctx context.Context, f BookingFilter) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).Preload("Car").Preload("Car.Brand").Preload("User")
	if f.Status != "" {
		q = q.Where("status = ?", string(f.Status))
	}
	if f.UserID > 0 {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.CarID > 0 {
		q = q.Where("car_id = ?", f.CarID)
	}

	var out []domain.Booking
	tx := q.Order("created_at DESC").Find(&out)
	return out, tx.Error
}

// UpdateStatusCAS moves a booking from one status to another, guarded by the
// current value. A false return means the row was not in the expected state
// (lost race or illegal transition) and nothing was written.
func (r *BookingRepository) UpdateStatusCAS(ctx context.Context, id int64, from, to domain.BookingStatus) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("id = ? AND status = ?", id, string(from)).
		Update("status", string(to))
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// BeginCheckout persists the gateway session id and marks the payment as
// processing, unless the booking was already paid.
func (r *BookingRepository) BeginCheckout(ctx context.Context, id int64, sessionID string) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("id = ? AND payment_status <> ?", id, string(domain.PaymentSucceeded)).
		Updates(map[string]any{
			"checkout_session_id": sessionID,
			"payment_status":      string(domain.PaymentProcessing),
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// ConfirmPayment applies payment success and booking confirmation as a single
// guarded write. The guard also requires the booking to still be active:
// a verification racing a cancellation must not pull a cancelled booking back
// to confirmed. A false return means the guard refused; callers reload the row
// to tell an already-settled booking from a cancelled one.
func (r *BookingRepository) ConfirmPayment(ctx context.Context, id int64, paymentIntentID string) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("id = ? AND payment_status <> ? AND status IN ?",
			id, string(domain.PaymentSucceeded),
			[]string{string(domain.BookingPending), string(domain.BookingConfirmed)}).
		Updates(map[string]any{
			"payment_status":    string(domain.PaymentSucceeded),
			"status":            string(domain.BookingConfirmed),
			"payment_intent_id": paymentIntentID,
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// CompleteFinished sweeps confirmed bookings whose return date has passed
// into completed. Returns how many rows moved.
func (r *BookingRepository) CompleteFinished(ctx context.Context, today time.Time) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("status = ? AND return_date <= ?", string(domain.BookingConfirmed), today).
		Update("status", string(domain.BookingCompleted))
	return tx.RowsAffected, tx.Error
}
