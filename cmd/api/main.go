package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"autohire/internal/config"
	"autohire/internal/database"
	"autohire/internal/middleware"
	"autohire/internal/modules/auth"
	"autohire/internal/modules/booking"
	"autohire/internal/modules/catalog"
	"autohire/internal/modules/payment"
	"autohire/internal/modules/review"
	"autohire/internal/modules/wishlist"
	"autohire/internal/notification"
	jwtsvc "autohire/internal/pkg/jwt"
	"autohire/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	brandRepo := repository.NewBrandRepository(db)
	carRepo := repository.NewCarRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	wishlistRepo := repository.NewWishlistRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	mailer := notification.NewMailer(
		cfg.MailjetAPIKey,
		cfg.MailjetSecretKey,
		cfg.MailFromEmail,
		cfg.MailFromName,
		userRepo,
	)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	bookingService := booking.NewService(bookingRepo, carRepo, mailer)
	bookingHandler := booking.NewHandler(bookingService)

	catalogService := catalog.NewService(carRepo, brandRepo, reviewRepo)
	catalogHandler := catalog.NewHandler(catalogService, bookingService)

	gateway, err := payment.NewStripeGateway(cfg.StripeSecretKey)
	if err != nil {
		log.Fatal(err)
	}
	paymentService := payment.NewService(bookingRepo, gateway, mailer, cfg.Currency, cfg.FrontendURL)
	paymentHandler := payment.NewHandler(paymentService, cfg.StripePublishableKey)

	reviewService := review.NewService(reviewRepo, carRepo)
	reviewHandler := review.NewHandler(reviewService)

	wishlistService := wishlist.NewService(wishlistRepo, carRepo)
	wishlistHandler := wishlist.NewHandler(wishlistService)

	r := gin.New()
	r.Use(gin.Logger(), middleware.ErrorLogger(), middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
		reviewHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			paymentHandler.RegisterRoutes(protected)
			reviewHandler.RegisterProtectedRoutes(protected)
			wishlistHandler.RegisterRoutes(protected)

			admin := protected.Group("/admin")
			admin.Use(middleware.AdminOnly())
			{
				catalogHandler.RegisterAdminRoutes(admin)
			}
		}
	}

	// Sweep confirmed bookings whose rental window has ended.
	sched := cron.New()
	if _, err := sched.AddFunc(cfg.CompletionSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		n, err := bookingService.CompleteFinished(ctx)
		if err != nil {
			log.Printf("completion sweep failed: %v", err)
			return
		}
		if n > 0 {
			log.Printf("completion sweep: %d bookings completed", n)
		}
	}); err != nil {
		log.Fatal(err)
	}
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
