package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"

	"travel/internal/handler"
	"travel/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	UserHandler    *handler.UserHandler
	ListingHandler *handler.ListingHandler
	BookingHandler *handler.BookingHandler
	PaymentHandler *handler.PaymentHandler
	NewRelicApp    *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API routes.
	api := router.Group("/api")
	{
		// User routes.
		users := api.Group("/users")
		{
			users.POST("/register", deps.UserHandler.Register)
			users.GET("", deps.UserHandler.GetAll)
		}

		// Listing routes.
		listings := api.Group("/travel-listings")
		{
			listings.POST("", deps.ListingHandler.Create)
			listings.GET("", deps.ListingHandler.GetAll)
			listings.GET("/:id", deps.ListingHandler.Get)
			listings.PUT("/:id", deps.ListingHandler.Update)
			listings.DELETE("/:id", deps.ListingHandler.Delete)
			listings.GET("/:id/reviews", deps.ListingHandler.GetReviews)
			listings.POST("/:id/reviews", deps.ListingHandler.CreateReview)
		}

		// Booking routes.
		bookings := api.Group("/bookings")
		{
			bookings.POST("", deps.BookingHandler.Create)
			bookings.GET("", deps.BookingHandler.GetAll)
			bookings.GET("/:id", deps.BookingHandler.Get)
			bookings.PUT("/:id", deps.BookingHandler.Update)
			bookings.DELETE("/:id", deps.BookingHandler.Delete)
			bookings.POST("/:id/initiate_payment", deps.BookingHandler.InitiatePayment)
		}

		// Payment routes.
		payments := api.Group("/payments")
		{
			payments.POST("/verify", deps.PaymentHandler.Verify)
			payments.GET("/:id", deps.PaymentHandler.Get)
		}
	}

	return router
}
