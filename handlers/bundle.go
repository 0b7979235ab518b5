package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	// Booking endpoints
	CreateBooking   gin.HandlerFunc
	GetUserBookings gin.HandlerFunc
	GetAllBookings  gin.HandlerFunc

	// Payment endpoints
	CreateOrder     gin.HandlerFunc
	VerifyPayment   gin.HandlerFunc
	GetUserPayments gin.HandlerFunc
	GetAllPayments  gin.HandlerFunc
	GetPricing      gin.HandlerFunc

	// Manual transfer endpoint
	SubmitUTR gin.HandlerFunc
}
