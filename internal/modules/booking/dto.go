package booking

import "autohire/internal/repository"

// Actor is the explicit request identity passed into every operation.
type Actor struct {
	UserID int64
	Role   string
}

func (a Actor) IsAdmin() bool { return a.Role == "admin" }

type CreateBookingRequest struct {
	CarID      int64  `json:"car_id" binding:"required"`
	PickupDate string `json:"pickup_date" binding:"required"`
	ReturnDate string `json:"return_date" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AvailabilityRequest struct {
	PickupDate string `json:"pickup_date" binding:"required"`
	ReturnDate string `json:"return_date" binding:"required"`
}

type AvailabilityResult struct {
	Available bool                       `json:"available"`
	Conflict  *repository.ConflictWindow `json:"conflicting_booking,omitempty"`
}
