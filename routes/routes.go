package routes

import (
	"time"

	"travelbook/handlers"
	"travelbook/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers wired in main.
type HandlerBundle struct {
	Wizard  *handlers.WizardHandler
	Booking *handlers.BookingHandler
}

// RegisterWizardRoutes sets up the endpoints for the booking wizard.
func RegisterWizardRoutes(r *gin.Engine, hb *HandlerBundle) {
	wizardGroup := r.Group("/api/wizard")
	{
		wizardGroup.Use(middleware.JWTAuthUserMiddleware())
		wizardGroup.POST("/session", hb.Wizard.StartSession)
		wizardGroup.POST("/session/:sessionID/search", hb.Wizard.Search)
		wizardGroup.POST("/session/:sessionID/select", hb.Wizard.Select)
		wizardGroup.PUT("/session/:sessionID/details", hb.Wizard.SubmitDetails)
		wizardGroup.POST("/session/:sessionID/confirm", hb.Wizard.Confirm)
		wizardGroup.POST("/session/:sessionID/back", hb.Wizard.Back)
		wizardGroup.POST("/session/:sessionID/reset", hb.Wizard.Reset)
		wizardGroup.DELETE("/session/:sessionID", hb.Wizard.CancelSession)
	}
}

// RegisterBookingRoutes sets up the endpoints for persisted bookings.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(middleware.JWTAuthUserMiddleware())
		bookingGroup.GET("", hb.Booking.ListMyBookings)
		bookingGroup.GET("/:bookingID", hb.Booking.GetBooking)
		bookingGroup.POST("/:bookingID/cancel", hb.Booking.CancelBooking)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterWizardRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
}
