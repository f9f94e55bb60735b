package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"autohire/internal/database"
	"autohire/internal/domain"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "autohire.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM wishlist_items")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM cars")
	db.Exec("DELETE FROM brands")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@autohire.local",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Name:         "Admin",
	}
	db.Create(&admin)
	log.Println("Admin created: admin@autohire.local / admin123")

	customerHash, _ := bcrypt.GenerateFromPassword([]byte("customer123"), bcrypt.DefaultCost)
	customer := domain.User{
		Email:        "demo@autohire.local",
		PasswordHash: string(customerHash),
		Role:         domain.RoleCustomer,
		Name:         "Demo Customer",
		Phone:        "+1 555 010 3344",
	}
	db.Create(&customer)
	log.Println("Customer created: demo@autohire.local / customer123")

	// ================== BRANDS ==================
	log.Println("Creating brands...")

	brands := []domain.Brand{
		{Name: "Toyota", ImageURL: "/images/brands/toyota.png"},
		{Name: "BMW", ImageURL: "/images/brands/bmw.png"},
		{Name: "Tesla", ImageURL: "/images/brands/tesla.png"},
		{Name: "Volkswagen", ImageURL: "/images/brands/vw.png"},
	}
	for i := range brands {
		db.Create(&brands[i])
	}

	// ================== CARS ==================
	log.Println("Creating cars...")

	hp := func(n int) *int { return &n }

	cars := []domain.Car{
		{
			Name:         "Toyota RAV4",
			BrandID:      &brands[0].ID,
			Year:         2023,
			PricePerDay:  74.50,
			CarType:      domain.CarTypeSUV,
			Transmission: domain.TransmissionAutomatic,
			FuelType:     domain.FuelPetrol,
			Description:  "Comfortable compact SUV, great for family trips.",
			Color:        "White",
			LicensePlate: "AH-1042",
			Horsepower:   hp(203),
			ImageURL:     "/images/cars/rav4.jpg",
			Featured:     true,
		},
		{
			Name:         "Toyota Corolla",
			BrandID:      &brands[0].ID,
			Year:         2022,
			PricePerDay:  49.00,
			CarType:      domain.CarTypeSedan,
			Transmission: domain.TransmissionAutomatic,
			FuelType:     domain.FuelPetrol,
			Description:  "Reliable everyday sedan with low fuel consumption.",
			Color:        "Silver",
			LicensePlate: "AH-2210",
			Horsepower:   hp(169),
			ImageURL:     "/images/cars/corolla.jpg",
		},
		{
			Name:         "BMW X5",
			BrandID:      &brands[1].ID,
			Year:         2024,
			PricePerDay:  159.99,
			CarType:      domain.CarTypeSUV,
			Transmission: domain.TransmissionAutomatic,
			FuelType:     domain.FuelDiesel,
			Description:  "Premium SUV with full leather interior.",
			Color:        "Black",
			LicensePlate: "AH-7781",
			Horsepower:   hp(340),
			ImageURL:     "/images/cars/x5.jpg",
			Featured:     true,
		},
		{
			Name:         "Tesla Model 3",
			BrandID:      &brands[2].ID,
			Year:         2024,
			PricePerDay:  119.00,
			CarType:      domain.CarTypeSedan,
			Transmission: domain.TransmissionAutomatic,
			FuelType:     domain.FuelElectric,
			Description:  "Long-range electric sedan with autopilot.",
			Color:        "Red",
			LicensePlate: "AH-9003",
			Horsepower:   hp(283),
			ImageURL:     "/images/cars/model3.jpg",
			Featured:     true,
		},
		{
			Name:         "Volkswagen Golf",
			BrandID:      &brands[3].ID,
			Year:         2021,
			PricePerDay:  42.00,
			CarType:      domain.CarTypeHatchback,
			Transmission: domain.TransmissionManual,
			FuelType:     domain.FuelPetrol,
			Description:  "Compact hatchback, easy to park in the city.",
			Color:        "Blue",
			LicensePlate: "AH-3356",
			Horsepower:   hp(130),
			ImageURL:     "/images/cars/golf.jpg",
		},
	}
	for i := range cars {
		db.Create(&cars[i])
	}

	log.Printf("Seed complete: %d brands, %d cars", len(brands), len(cars))
}
