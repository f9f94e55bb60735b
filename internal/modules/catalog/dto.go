package catalog

import "autohire/internal/domain"

type CreateCarRequest struct {
	Name         string  `json:"name" binding:"required"`
	BrandID      *int64  `json:"brand_id"`
	Year         int     `json:"year"`
	PricePerDay  float64 `json:"price_per_day" binding:"required,gte=0"`
	CarType      string  `json:"car_type" binding:"omitempty,oneof=SUV Hatchback Sedan"`
	Transmission string  `json:"transmission" binding:"omitempty,oneof=Automatic Manual"`
	FuelType     string  `json:"fuel_type" binding:"omitempty,oneof=Petrol Diesel Electric"`
	Description  string  `json:"description"`
	Color        string  `json:"color"`
	LicensePlate string  `json:"license_plate"`
	Horsepower   *int    `json:"horsepower"`
	ImageURL     string  `json:"image_url"`
	IsAvailable  *bool   `json:"is_available"`
	Featured     bool    `json:"featured"`
}

type CreateBrandRequest struct {
	Name     string `json:"name" binding:"required"`
	ImageURL string `json:"image_url"`
}

func (r CreateCarRequest) toDomain() *domain.Car {
	available := true
	if r.IsAvailable != nil {
		available = *r.IsAvailable
	}
	return &domain.Car{
		Name:         r.Name,
		BrandID:      r.BrandID,
		Year:         r.Year,
		PricePerDay:  r.PricePerDay,
		CarType:      domain.CarType(r.CarType),
		Transmission: domain.Transmission(r.Transmission),
		FuelType:     domain.FuelType(r.FuelType),
		Description:  r.Description,
		Color:        r.Color,
		LicensePlate: r.LicensePlate,
		Horsepower:   r.Horsepower,
		ImageURL:     r.ImageURL,
		IsAvailable:  available,
		Featured:     r.Featured,
	}
}
