package payment

import (
	"context"
	"errors"
	"fmt"
	"math"

	"gorm.io/gorm"

	"autohire/internal/domain"
)

type Service struct {
	bookings    bookingStore
	gateway     CheckoutGateway
	notifs      notificationSender
	currency    string
	frontendURL string
}

func NewService(bookings bookingStore, gateway CheckoutGateway, notifs notificationSender, currency, frontendURL string) *Service {
	return &Service{
		bookings:    bookings,
		gateway:     gateway,
		notifs:      notifs,
		currency:    currency,
		frontendURL: frontendURL,
	}
}

// CreateCheckout opens an external checkout session for the booking and marks
// the payment as processing. A gateway failure leaves the booking untouched.
func (s *Service) CreateCheckout(ctx context.Context, userID int64, req CheckoutRequest) (*CheckoutResponse, error) {
	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrNotFound
	}
	if b.PaymentStatus == domain.PaymentSucceeded {
		return nil, ErrAlreadyPaid
	}
	if b.Status == domain.BookingCancelled || b.Status == domain.BookingCompleted {
		return nil, ErrBookingCancelled
	}

	frontend := req.FrontendURL
	if frontend == "" {
		frontend = s.frontendURL
	}

	carName := "car"
	if b.Car != nil {
		carName = b.Car.Name
	}

	sess, err := s.gateway.CreateSession(ctx, CreateSessionParams{
		BookingID:   b.ID,
		UserID:      b.UserID,
		AmountMinor: minorUnits(b.TotalCost),
		Currency:    s.currency,
		ProductName: "Car Rental: " + carName,
		Description: fmt.Sprintf("Rental from %s to %s (%d days)",
			b.PickupDate.Format("2006-01-02"), b.ReturnDate.Format("2006-01-02"), b.TotalDays),
		SuccessURL: frontend + "/payment/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  fmt.Sprintf("%s/payment/cancel?booking_id=%d", frontend, b.ID),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	ok, err := s.bookings.BeginCheckout(ctx, b.ID, sess.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		// a concurrent verification already settled this booking
		return nil, ErrAlreadyPaid
	}

	return &CheckoutResponse{SessionID: sess.ID, RedirectURL: sess.URL}, nil
}

// VerifyPayment reconciles a checkout session with the booking it references.
// Verifying an already-settled booking is a no-op that returns the same
// confirmed result. A booking cancelled while the checkout was in flight is
// never confirmed; that case reports ErrBookingCancelled.
func (s *Service) VerifyPayment(ctx context.Context, userID int64, sessionID string) (*VerifyResult, error) {
	sess, err := s.gateway.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}
	if sess.BookingID == 0 {
		return nil, ErrNotFound
	}

	b, err := s.bookings.GetByID(ctx, sess.BookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	// session ids are guessable enough to warrant an ownership check
	if b.UserID != userID {
		return nil, ErrNotFound
	}

	if !sess.Paid {
		return &VerifyResult{Completed: false, Booking: summarize(b)}, nil
	}

	changed, err := s.bookings.ConfirmPayment(ctx, b.ID, sess.PaymentIntentID)
	if err != nil {
		return nil, err
	}
	if !changed {
		// The guarded write refused: either an earlier verification already
		// settled this booking, or it was cancelled while the checkout was in
		// flight. Reload to tell the two apart.
		b, err = s.bookings.GetByID(ctx, b.ID)
		if err != nil {
			return nil, err
		}
		if b.PaymentStatus != domain.PaymentSucceeded {
			return nil, ErrBookingCancelled
		}
		return &VerifyResult{Completed: true, Booking: summarize(b)}, nil
	}

	b.PaymentStatus = domain.PaymentSucceeded
	b.Status = domain.BookingConfirmed
	b.PaymentIntentID = sess.PaymentIntentID

	if s.notifs != nil {
		_ = s.notifs.NotifyPaymentConfirmed(ctx, b)
	}

	return &VerifyResult{Completed: true, Booking: summarize(b)}, nil
}

func summarize(b *domain.Booking) BookingSummary {
	return BookingSummary{
		ID:            b.ID,
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
	}
}

// minorUnits converts a decimal amount into the gateway's smallest currency
// unit, rounding to the nearest cent.
func minorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
