package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentProcessing PaymentStatus = "processing"
	PaymentSucceeded  PaymentStatus = "succeeded"
	PaymentFailed     PaymentStatus = "failed"
)

// bookingTransitions is the closed transition table for Booking.Status.
// cancelled and completed are terminal.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingCompleted, BookingCancelled},
}

func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

// CanTransition reports whether a booking may move between the two statuses.
func CanTransition(from, to BookingStatus) bool {
	for _, next := range bookingTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Booking struct {
	ID                int64         `json:"id" gorm:"primaryKey"`
	UserID            int64         `json:"user_id" gorm:"not null;index" validate:"required"`
	CarID             int64         `json:"car_id" gorm:"not null;index" validate:"required"`
	PickupDate        time.Time     `json:"pickup_date" gorm:"not null" validate:"required"`
	ReturnDate        time.Time     `json:"return_date" gorm:"not null" validate:"required"`
	TotalDays         int           `json:"total_days"`
	TotalCost         float64       `json:"total_cost"`
	Status            BookingStatus `json:"status" gorm:"type:varchar(20);default:pending;index"`
	PaymentStatus     PaymentStatus `json:"payment_status" gorm:"type:varchar(20);default:pending"`
	CheckoutSessionID string        `json:"checkout_session_id,omitempty" gorm:"index"`
	PaymentIntentID   string        `json:"payment_intent_id,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`

	// Deleting a user or a car cascades to its bookings so no orphaned
	// reservations survive. Explicit, not a framework default.
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Car  *Car  `json:"car,omitempty" gorm:"foreignKey:CarID;constraint:OnDelete:CASCADE"`
}

func (Booking) TableName() string { return "bookings" }
