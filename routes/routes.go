package routes

import (
	"time"

	"barberbook-backend/handlers"
	"barberbook-backend/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Initialize handlers
	authHandler := &handlers.AuthHandler{DB: db}
	shopHandler := &handlers.ShopHandler{DB: db}
	bookingHandler := &handlers.BookingHandler{DB: db}
	barberHandler := &handlers.BarberHandler{DB: db}
	adminHandler := &handlers.AdminHandler{DB: db}

	// Auth endpoints are rate limited so rapid repeated submissions
	// don't create duplicate accounts or hammer the mailer.
	authLimiter := middleware.NewRateLimiter(10, time.Minute)

	// Public routes
	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		auth.Use(authLimiter.Middleware())
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.RefreshTokenHandler)
		auth.POST("/forgot-password", authHandler.ForgotPassword)
		auth.POST("/reset-password", authHandler.ResetPassword)

		// Shop discovery
		api.GET("/shops", shopHandler.GetShops)
		api.GET("/shops/:id", shopHandler.GetShop)
		api.GET("/shops/:id/slots", shopHandler.GetShopSlots)
		api.GET("/shops/:id/reviews", shopHandler.GetShopReviews)
	}

	// Protected routes (require authentication)
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/auth/profile", authHandler.GetProfile)
		protected.PUT("/auth/profile", authHandler.UpdateProfile)
		protected.POST("/auth/change-password", authHandler.ChangePassword)

		protected.POST("/shops/:id/reviews", shopHandler.CreateReview)

		protected.GET("/bookings", bookingHandler.GetMyBookings)
		protected.POST("/bookings", bookingHandler.CreateBooking)
		protected.GET("/bookings/draft", bookingHandler.GetBookingDraft)
		protected.PUT("/bookings/draft", bookingHandler.UpdateBookingDraft)
		protected.DELETE("/bookings/draft", bookingHandler.ResetBookingDraft)
	}

	// Barber portal (require barber role)
	barber := api.Group("/barber")
	barber.Use(middleware.AuthMiddleware())
	barber.Use(middleware.BarberMiddleware())
	{
		barber.GET("/shop", barberHandler.GetMyShop)
		barber.PUT("/shop", barberHandler.SaveMyShop)

		barber.POST("/services", barberHandler.CreateService)
		barber.PUT("/services/:id", barberHandler.UpdateService)
		barber.DELETE("/services/:id", barberHandler.DeleteService)

		barber.GET("/bookings", barberHandler.GetShopBookings)
		barber.PUT("/bookings/:id/status", barberHandler.UpdateBookingStatus)
	}

	// Admin routes (require admin role)
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.AdminMiddleware())
	{
		admin.GET("/shops", adminHandler.ListShops)
		admin.PUT("/shops/:id/approve", adminHandler.ApproveShop)
		admin.DELETE("/shops/:id", adminHandler.RejectShop)

		admin.GET("/bookings", adminHandler.ListBookings)

		admin.GET("/users", adminHandler.ListUsers)
		admin.PUT("/users/:id", adminHandler.UpdateUser)
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
