package domain

import "time"

type CarType string

const (
	CarTypeSUV       CarType = "SUV"
	CarTypeHatchback CarType = "Hatchback"
	CarTypeSedan     CarType = "Sedan"
)

type Transmission string

const (
	TransmissionAutomatic Transmission = "Automatic"
	TransmissionManual    Transmission = "Manual"
)

type FuelType string

const (
	FuelPetrol   FuelType = "Petrol"
	FuelDiesel   FuelType = "Diesel"
	FuelElectric FuelType = "Electric"
)

type Brand struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (Brand) TableName() string { return "brands" }

type Car struct {
	ID           int64        `json:"id" gorm:"primaryKey"`
	Name         string       `json:"name" gorm:"not null" validate:"required"`
	BrandID      *int64       `json:"brand_id,omitempty" gorm:"index"`
	Year         int          `json:"year"`
	PricePerDay  float64      `json:"price_per_day" gorm:"not null" validate:"gte=0"`
	CarType      CarType      `json:"car_type" gorm:"type:varchar(20)"`
	Transmission Transmission `json:"transmission" gorm:"type:varchar(20)"`
	FuelType     FuelType     `json:"fuel_type" gorm:"type:varchar(20)"`
	Description  string       `json:"description" gorm:"type:text"`
	Color        string       `json:"color,omitempty"`
	LicensePlate string       `json:"license_plate,omitempty"`
	Horsepower   *int         `json:"horsepower,omitempty"`
	ImageURL     string       `json:"image_url,omitempty"`
	IsAvailable  bool         `json:"is_available" gorm:"default:true"`
	Featured     bool         `json:"featured" gorm:"default:false;index"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`

	// Brand is SET NULL on delete: losing a brand must not take its cars down.
	Brand *Brand `json:"brand,omitempty" gorm:"foreignKey:BrandID;constraint:OnDelete:SET NULL"`

	// Computed from reviews, never stored.
	AverageRating float64 `json:"average_rating" gorm:"-"`
	ReviewCount   int64   `json:"review_count" gorm:"-"`
}

func (Car) TableName() string { return "cars" }
