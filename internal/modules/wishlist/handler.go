package wishlist

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"autohire/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/wishlist", h.List)
	rg.POST("/wishlist", h.Add)
	rg.DELETE("/wishlist/:car_id", h.Remove)
}

type addRequest struct {
	CarID int64 `json:"car_id" binding:"required"`
}

func (h *Handler) Add(c *gin.Context) {
	var req addRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "car_id is required")
		return
	}

	item, err := h.service.Add(c.Request.Context(), c.GetInt64("user_id"), req.CarID)
	if err != nil {
		switch {
		case errors.Is(err, ErrConflict):
			response.Error(c, http.StatusConflict, "ALREADY_SAVED", "Car is already in your wishlist")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Car not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save car")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"item": item})
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load wishlist")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

func (h *Handler) Remove(c *gin.Context) {
	carID, err := strconv.ParseInt(c.Param("car_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid car ID")
		return
	}

	if err := h.service.Remove(c.Request.Context(), c.GetInt64("user_id"), carID); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Car is not in your wishlist")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to remove car")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"removed": carID})
}
