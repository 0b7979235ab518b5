package bookingRepo

import (
	"context"

	"onehour/models"
)

// BookingRepository persists Booking records and owns the payment-status
// transition guard.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)
	GetByUser(ctx context.Context, userID string) ([]models.Booking, error)
	GetAll(ctx context.Context) ([]models.Booking, error)

	// UpdatePaymentOutcome conditionally finalizes a booking's payment. The
	// write only applies while payment_status is still "pending"; the bool
	// reports whether this call won the transition. A false return with nil
	// error means the booking was already terminal (safe no-op).
	UpdatePaymentOutcome(ctx context.Context, bookingID, paymentID string, status models.PaymentStatus) (bool, error)
}
