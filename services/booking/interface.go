package booking

import (
	"context"

	"onehour/models"
)

// BookingService validates and persists plan-constrained bookings.
type BookingService interface {
	CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error)
	GetUserBookings(ctx context.Context, userID string) ([]models.Booking, error)
	GetAllBookings(ctx context.Context) ([]models.Booking, error)
}
