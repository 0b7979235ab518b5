package routes

import (
	"net/http"
	"time"

	"onehour/handlers"
	"onehour/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookings := r.Group("/bookings")
	{
		bookings.POST("", hb.CreateBooking)
		bookings.GET("/user/:userId", hb.GetUserBookings)
		bookings.GET("/all", hb.GetAllBookings)
	}
}

// RegisterPaymentRoutes registers gateway payment endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	payments := r.Group("/payments")
	{
		payments.POST("/create-order", hb.CreateOrder)
		payments.POST("/verify", hb.VerifyPayment)
		payments.GET("/user/:userId", hb.GetUserPayments)
		payments.GET("/all", hb.GetAllPayments)
		payments.GET("/pricing", hb.GetPricing)
	}
}

// RegisterUPIRoutes registers the manual transfer proof endpoint.
func RegisterUPIRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	upi := r.Group("/upi")
	{
		upi.POST("/submit", hb.SubmitUTR)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterUPIRoutes(r, hb)
	RegisterHealthRoute(r)
}
