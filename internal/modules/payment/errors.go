package payment

import "errors"

var (
	ErrNotFound         = errors.New("booking not found")
	ErrAlreadyPaid      = errors.New("booking already paid")
	ErrBookingCancelled = errors.New("booking no longer active")
	ErrGateway          = errors.New("payment gateway error")
)
