package catalog

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"autohire/internal/modules/booking"
	"autohire/internal/pkg/response"
	"autohire/internal/repository"
)

// AvailabilityChecker is the booking module's date-range checker, surfaced on
// the public car endpoints.
type AvailabilityChecker interface {
	CheckAvailability(ctx context.Context, carID int64, req booking.AvailabilityRequest) (*booking.AvailabilityResult, error)
}

type Handler struct {
	service      *Service
	availability AvailabilityChecker
}

func NewHandler(service *Service, availability AvailabilityChecker) *Handler {
	return &Handler{service: service, availability: availability}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/cars", h.ListCars)
	rg.GET("/cars/featured", h.FeaturedCars)
	rg.GET("/cars/:id", h.GetCar)
	rg.POST("/cars/:id/availability", h.CheckAvailability)
	rg.GET("/brands", h.ListBrands)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/cars", h.CreateCar)
	rg.PUT("/cars/:id", h.UpdateCar)
	rg.DELETE("/cars/:id", h.DeleteCar)
	rg.POST("/brands", h.CreateBrand)
	rg.DELETE("/brands/:id", h.DeleteBrand)
}

func (h *Handler) ListCars(c *gin.Context) {
	var f repository.CarFilter
	f.BrandID, _ = strconv.ParseInt(c.Query("brand_id"), 10, 64)
	f.CarType = c.Query("car_type")

	cars, err := h.service.ListCars(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list cars")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"cars": cars})
}

func (h *Handler) FeaturedCars(c *gin.Context) {
	cars, err := h.service.ListCars(c.Request.Context(), repository.CarFilter{Featured: true})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list cars")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"cars": cars})
}

func (h *Handler) GetCar(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid car ID")
		return
	}

	car, err := h.service.GetCar(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Car not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load car")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"car": car})
}

func (h *Handler) CheckAvailability(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid car ID")
		return
	}

	var req booking.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Both pickup_date and return_date are required")
		return
	}

	res, err := h.availability.CheckAvailability(c.Request.Context(), id, req)
	if err != nil {
		switch err {
		case booking.ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date range, use YYYY-MM-DD with return after pickup")
		case booking.ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Car not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to check availability")
		}
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *Handler) CreateCar(c *gin.Context) {
	var req CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	car, err := h.service.CreateCar(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create car")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"car": car})
}

func (h *Handler) UpdateCar(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid car ID")
		return
	}

	var req CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	car, err := h.service.UpdateCar(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Car not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update car")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"car": car})
}

func (h *Handler) DeleteCar(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid car ID")
		return
	}

	if err := h.service.DeleteCar(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Car not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete car")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) ListBrands(c *gin.Context) {
	brands, err := h.service.ListBrands(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list brands")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"brands": brands})
}

func (h *Handler) CreateBrand(c *gin.Context) {
	var req CreateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	brand, err := h.service.CreateBrand(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create brand")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"brand": brand})
}

func (h *Handler) DeleteBrand(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid brand ID")
		return
	}

	if err := h.service.DeleteBrand(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Brand not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete brand")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}
