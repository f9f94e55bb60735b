package review

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
	rg.GET("/cars/:id/reviews", h.ListByCar)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/reviews", h.Create)
	rg.PUT("/reviews/:id", h.Update)
	rg.DELETE("/reviews/:id", h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Rating must be between 1 and 5")
		return
	}

	rv, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRequest):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid review")
		case errors.Is(err, ErrConflict):
			response.Error(c, http.StatusConflict, "REVIEW_EXISTS", "You have already reviewed this car")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Car not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create review")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"review": rv})
}

func (h *Handler) ListByCar(c *gin.Context) {
	carID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid car ID")
		return
	}

	list, err := h.service.ListByCar(c.Request.Context(), carID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list reviews")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reviews": list})
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid review ID")
		return
	}

	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Rating must be between 1 and 5")
		return
	}

	rv, err := h.service.Update(c.Request.Context(), id, c.GetInt64("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You can only edit your own reviews")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Review not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update review")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"review": rv})
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid review ID")
		return
	}

	admin := c.GetString("role") == "admin"
	if err := h.service.Delete(c.Request.Context(), id, c.GetInt64("user_id"), admin); err != nil {
		switch {
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You can only delete your own reviews")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Review not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete review")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}
