package payment

import (
	"context"

	"autohire/internal/domain"
)

// CheckoutSession is the gateway-neutral view of an external checkout.
type CheckoutSession struct {
	ID              string
	URL             string
	Paid            bool
	PaymentIntentID string
	BookingID       int64
}

type CreateSessionParams struct {
	BookingID   int64
	UserID      int64
	AmountMinor int64
	Currency    string
	ProductName string
	Description string
	SuccessURL  string
	CancelURL   string
}

// CheckoutGateway is the external payment provider boundary.
type CheckoutGateway interface {
	CreateSession(ctx context.Context, p CreateSessionParams) (*CheckoutSession, error)
	GetSession(ctx context.Context, id string) (*CheckoutSession, error)
}

type bookingStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	BeginCheckout(ctx context.Context, id int64, sessionID string) (bool, error)
	ConfirmPayment(ctx context.Context, id int64, paymentIntentID string) (bool, error)
}

type notificationSender interface {
	NotifyPaymentConfirmed(ctx context.Context, b *domain.Booking) error
}
