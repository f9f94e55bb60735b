// Package notification delivers transactional email for booking and
// payment lifecycle events. Delivery is best-effort: callers ignore
// returned errors, and a mailer built without credentials is a no-op.
package notification

import (
	"context"
	"fmt"
	"log"

	mailjet "github.com/mailjet/mailjet-apiv3-go"

	"autohire/internal/domain"
)

type userGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Mailer sends booking lifecycle email through Mailjet.
type Mailer struct {
	client    *mailjet.Client
	users     userGetter
	fromEmail string
	fromName  string
}

// NewMailer builds a Mailer. With empty credentials it returns a mailer
// that silently drops every message, so local setups work without a
// Mailjet account.
func NewMailer(apiKey, secretKey, fromEmail, fromName string, users userGetter) *Mailer {
	m := &Mailer{users: users, fromEmail: fromEmail, fromName: fromName}
	if apiKey != "" && secretKey != "" {
		m.client = mailjet.NewMailjetClient(apiKey, secretKey)
	}
	return m
}

func (m *Mailer) NotifyBookingCreated(ctx context.Context, b *domain.Booking) error {
	subject := fmt.Sprintf("Booking #%d received", b.ID)
	body := fmt.Sprintf(
		"We received your booking for %s from %s to %s.\nTotal: %.2f\n\nComplete payment to confirm your reservation.",
		carName(b), b.PickupDate.Format("2006-01-02"), b.ReturnDate.Format("2006-01-02"), b.TotalCost,
	)
	return m.send(ctx, b.UserID, subject, body)
}

func (m *Mailer) NotifyBookingCancelled(ctx context.Context, b *domain.Booking) error {
	subject := fmt.Sprintf("Booking #%d cancelled", b.ID)
	body := fmt.Sprintf(
		"Your booking for %s (%s to %s) has been cancelled.",
		carName(b), b.PickupDate.Format("2006-01-02"), b.ReturnDate.Format("2006-01-02"),
	)
	return m.send(ctx, b.UserID, subject, body)
}

func (m *Mailer) NotifyPaymentConfirmed(ctx context.Context, b *domain.Booking) error {
	subject := fmt.Sprintf("Booking #%d confirmed", b.ID)
	body := fmt.Sprintf(
		"Payment of %.2f received. Your booking for %s from %s to %s is confirmed.",
		b.TotalCost, carName(b), b.PickupDate.Format("2006-01-02"), b.ReturnDate.Format("2006-01-02"),
	)
	return m.send(ctx, b.UserID, subject, body)
}

func (m *Mailer) send(ctx context.Context, userID int64, subject, body string) error {
	if m.client == nil {
		return nil
	}

	user, err := m.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("resolve recipient: %w", err)
	}

	messages := mailjet.MessagesV31{
		Info: []mailjet.InfoMessagesV31{{
			From: &mailjet.RecipientV31{Email: m.fromEmail, Name: m.fromName},
			To: &mailjet.RecipientsV31{
				{Email: user.Email, Name: user.Name},
			},
			Subject:  subject,
			TextPart: body,
		}},
	}

	if _, err := m.client.SendMailV31(&messages); err != nil {
		log.Printf("mailer: send to user %d failed: %v", userID, err)
		return err
	}
	return nil
}

func carName(b *domain.Booking) string {
	if b.Car != nil {
		return b.Car.Name
	}
	return fmt.Sprintf("car #%d", b.CarID)
}
