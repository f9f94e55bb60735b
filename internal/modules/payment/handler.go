package payment

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"autohire/internal/pkg/response"
)

type Handler struct {
	service        *Service
	publishableKey string
}

func NewHandler(service *Service, publishableKey string) *Handler {
	return &Handler{service: service, publishableKey: publishableKey}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/payments/config", h.Config)
	rg.POST("/payments/checkout", h.CreateCheckout)
	rg.POST("/payments/verify", h.VerifyPayment)
}

// Config hands the frontend its publishable key.
func (h *Handler) Config(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"publishable_key": h.publishableKey})
}

func (h *Handler) CreateCheckout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Booking ID is required")
		return
	}

	res, err := h.service.CreateCheckout(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case errors.Is(err, ErrAlreadyPaid):
			response.Error(c, http.StatusBadRequest, "ALREADY_PAID", "Booking already paid")
		case errors.Is(err, ErrBookingCancelled):
			response.Error(c, http.StatusConflict, "BOOKING_CANCELLED", "Booking is no longer active")
		case errors.Is(err, ErrGateway):
			response.Error(c, http.StatusBadGateway, "GATEWAY_ERROR", "Payment provider unavailable, please retry")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to start checkout")
		}
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *Handler) VerifyPayment(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Session ID is required")
		return
	}

	res, err := h.service.VerifyPayment(c.Request.Context(), c.GetInt64("user_id"), req.SessionID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case errors.Is(err, ErrBookingCancelled):
			response.Error(c, http.StatusConflict, "BOOKING_CANCELLED", "Booking was cancelled before the payment settled")
		case errors.Is(err, ErrGateway):
			response.Error(c, http.StatusBadGateway, "GATEWAY_ERROR", "Payment provider unavailable, please retry")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to verify payment")
		}
		return
	}

	if !res.Completed {
		response.ErrorWithDetails(c, http.StatusBadRequest, "PAYMENT_NOT_COMPLETED", "Payment not completed", res.Booking)
		return
	}

	response.Success(c, http.StatusOK, res)
}
