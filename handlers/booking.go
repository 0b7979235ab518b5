package handlers

import (
	"errors"
	"net/http"

	"onehour/middleware"
	"onehour/models"
	"onehour/services/booking"
	"onehour/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking endpoints.
type BookingHandler struct {
	Svc    booking.BookingService
	Logger *zap.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// CreateBooking handles POST /bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	// Prefer the authenticated subject over whatever the body claims.
	if userID := c.GetString(middleware.IdentityKey); userID != "" {
		req.UserID = userID
	}

	created, err := h.Svc.CreateBooking(c.Request.Context(), req)
	if err != nil {
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		h.Logger.Error("booking creation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to create booking", "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "booking": created})
}

// GetUserBookings handles GET /bookings/user/:userId.
func (h *BookingHandler) GetUserBookings(c *gin.Context) {
	userID := c.Param("userId")
	bookings, err := h.Svc.GetUserBookings(c.Request.Context(), userID)
	if err != nil {
		h.Logger.Error("failed to fetch user bookings", zap.String("userId", userID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch bookings", "")
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

// GetAllBookings handles GET /bookings/all.
func (h *BookingHandler) GetAllBookings(c *gin.Context) {
	bookings, err := h.Svc.GetAllBookings(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to fetch bookings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch bookings", "")
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

func isValidationError(err error) bool {
	return errors.Is(err, booking.ErrInvalidPlan) ||
		errors.Is(err, booking.ErrTooManyDays) ||
		errors.Is(err, booking.ErrNoDaysSelected) ||
		errors.Is(err, booking.ErrInvalidTimeSlot) ||
		errors.Is(err, booking.ErrMissingContactInfo)
}
