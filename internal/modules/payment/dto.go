package payment

type CheckoutRequest struct {
	BookingID   int64  `json:"booking_id" binding:"required"`
	FrontendURL string `json:"frontend_url"`
}

type CheckoutResponse struct {
	SessionID   string `json:"session_id"`
	RedirectURL string `json:"url"`
}

type VerifyRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

type BookingSummary struct {
	ID            int64  `json:"id"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
}

type VerifyResult struct {
	Completed bool           `json:"completed"`
	Booking   BookingSummary `json:"booking"`
}
