package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"epoch-backend/controllers"
	"epoch-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controllers onto the public, authenticated and admin
// route groups.
func SetupRouter(
	ac *controllers.AuthController,
	avc *controllers.AvailabilityController,
	bc *controllers.BookingController,
	gc *controllers.GalleryController,
	rc *controllers.ReviewController,
	adc *controllers.AdminController,
	jwtSecret string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())
	r.Static("/uploads", "./uploads")

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/content", controllers.GetContent)

		availability := api.Group("/availability")
		{
			availability.GET("", avc.ListAvailability)
			availability.GET("/:date", avc.CheckDate)
		}

		api.POST("/bookings", bc.CreateBooking)

		gallery := api.Group("/gallery")
		{
			gallery.GET("", gc.ListGallery)
			gallery.POST("", middleware.RequireAuth(jwtSecret), gc.UploadPhoto)
		}

		reviews := api.Group("/reviews")
		{
			reviews.GET("", rc.ListReviews)
			reviews.POST("", middleware.OptionalAuth(jwtSecret), rc.CreateReview)
		}

		auth := api.Group("/auth")
		{
			auth.POST("/register", ac.Register)
			auth.POST("/login", ac.Login)
			auth.GET("/me", middleware.RequireAuth(jwtSecret), ac.Me)
		}

		admin := api.Group("/admin", middleware.RequireAdmin(jwtSecret))
		{
			admin.GET("/summary", adc.Summary)

			admin.GET("/gallery", adc.ListGallery)
			admin.PATCH("/gallery/:id/approval", adc.SetGalleryApproval)
			admin.DELETE("/gallery/:id", adc.DeleteGalleryItem)

			admin.GET("/reviews", adc.ListReviews)
			admin.PATCH("/reviews/:id/approval", adc.SetReviewApproval)
			admin.DELETE("/reviews/:id", adc.DeleteReview)

			admin.GET("/bookings", adc.ListBookings)
			admin.PATCH("/bookings/:id/status", adc.UpdateBookingStatus)

			admin.PUT("/availability/:date", adc.UpsertAvailability)
		}
	}

	return r
}
