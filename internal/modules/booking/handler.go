package booking

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"autohire/internal/domain"
	"autohire/internal/pkg/response"
	"autohire/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings", h.ListBookings)
	rg.GET("/bookings/:id", h.GetBooking)
	rg.PATCH("/bookings/:id/status", h.UpdateStatus)
}

func actorFrom(c *gin.Context) Actor {
	return Actor{
		UserID: c.GetInt64("user_id"),
		Role:   c.GetString("role"),
	}
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking date range")
		case ErrNotAvailable:
			response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", "Car is not available for the selected dates")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Car not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) ListBookings(c *gin.Context) {
	actor := actorFrom(c)

	var f repository.BookingFilter
	if actor.IsAdmin() {
		f.Status = domain.BookingStatus(c.Query("status"))
		f.UserID, _ = strconv.ParseInt(c.Query("user_id"), 10, 64)
		f.CarID, _ = strconv.ParseInt(c.Query("car_id"), 10, 64)
	}

	list, err := h.service.List(c.Request.Context(), actor, f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": list})
}

func (h *Handler) GetBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	b, err := h.service.Get(c.Request.Context(), id, actorFrom(c))
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load booking")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.UpdateStatus(c.Request.Context(), id, actorFrom(c), req.Status)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown booking status")
		case ErrInvalidStatusTransition:
			response.Error(c, http.StatusBadRequest, "INVALID_TRANSITION", "Status transition not allowed")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You may only manage your own bookings")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update booking")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}
