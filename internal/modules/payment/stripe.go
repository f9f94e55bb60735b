package payment

import (
	"context"
	"errors"
	"strconv"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

var errStripeClientInit = errors.New("failed to initialize Stripe client")

// StripeGateway implements CheckoutGateway on Stripe Checkout Sessions.
type StripeGateway struct {
	client *client.API
}

func NewStripeGateway(secretKey string) (*StripeGateway, error) {
	if secretKey == "" {
		return nil, errStripeClientInit
	}
	sc := client.New(secretKey, nil)
	if sc == nil {
		return nil, errStripeClientInit
	}
	return &StripeGateway{client: sc}, nil
}

func (g *StripeGateway) CreateSession(ctx context.Context, p CreateSessionParams) (*CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: []*string{stripe.String("card")},
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(p.Currency),
					UnitAmount: stripe.Int64(p.AmountMinor),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(p.ProductName),
						Description: stripe.String(p.Description),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:        stripe.String(p.SuccessURL),
		CancelURL:         stripe.String(p.CancelURL),
		ClientReferenceID: stripe.String(strconv.FormatInt(p.BookingID, 10)),
	}
	params.Context = ctx
	params.AddMetadata("booking_id", strconv.FormatInt(p.BookingID, 10))
	params.AddMetadata("user_id", strconv.FormatInt(p.UserID, 10))

	sess, err := g.client.CheckoutSessions.New(params)
	if err != nil {
		return nil, err
	}

	return &CheckoutSession{
		ID:        sess.ID,
		URL:       sess.URL,
		BookingID: p.BookingID,
	}, nil
}

func (g *StripeGateway) GetSession(ctx context.Context, id string) (*CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	sess, err := g.client.CheckoutSessions.Get(id, params)
	if err != nil {
		return nil, err
	}

	out := &CheckoutSession{
		ID:   sess.ID,
		URL:  sess.URL,
		Paid: sess.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
	}
	if sess.PaymentIntent != nil {
		out.PaymentIntentID = sess.PaymentIntent.ID
	}
	if raw, ok := sess.Metadata["booking_id"]; ok {
		out.BookingID, _ = strconv.ParseInt(raw, 10, 64)
	}
	return out, nil
}
