package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"epoch-backend/config"
	"epoch-backend/controllers"
	"epoch-backend/routes"
	"epoch-backend/services"
	"epoch-backend/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ ERROR: JWT_SECRET environment variable is not set.")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied.")

	// Port from env (prefer), fallback to 8080
	port := utils.EnvOrDefault("PORT", "8080")
	addr := ":" + port
	publicURL := utils.EnvOrDefault("PUBLIC_BASE_URL", "http://localhost:"+port)

	// Initialize services
	authService := services.NewAuthService(db)
	availabilityService := services.NewAvailabilityService(db)
	bookingService := services.NewBookingService(db)
	galleryService := services.NewGalleryService(db)
	reviewService := services.NewReviewService(db)
	storageService := services.NewStorageService("uploads", publicURL)

	// Initialize controllers
	authController := controllers.NewAuthController(authService, jwtSecret, 24*time.Hour)
	availabilityController := controllers.NewAvailabilityController(availabilityService)
	bookingController := controllers.NewBookingController(bookingService)
	galleryController := controllers.NewGalleryController(galleryService, storageService)
	reviewController := controllers.NewReviewController(reviewService)
	adminController := controllers.NewAdminController(galleryService, reviewService, bookingService, availabilityService)

	router := routes.SetupRouter(
		authController,
		availabilityController,
		bookingController,
		galleryController,
		reviewController,
		adminController,
		jwtSecret,
	)

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
