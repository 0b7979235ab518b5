package booking

import (
	"context"
	"fmt"
	"time"

	bookingRepo "onehour/database/repository/booking"
	"onehour/models"
	"onehour/services/notification"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService is the production implementation of BookingService.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Notifier notification.Dispatcher
	Logger   *zap.Logger
}

// CreateBooking validates a booking request against its plan's limits and
// persists it with payment pending. The "booking created" notification is
// enqueued best-effort after the write.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	normalized, plan, err := validateRequest(req)
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		ID:                 uuid.New().String(),
		UserID:             normalized.UserID,
		Name:               normalized.Name,
		Email:              normalized.Email,
		Mobile:             normalized.Mobile,
		PlanType:           normalized.PlanType,
		Duration:           normalized.Duration,
		PreferredDays:      normalized.PreferredDays,
		PreferredTimeSlot:  normalized.PreferredTimeSlot,
		BookingsPerWeek:    plan.BookingsPerWeek,
		MaxBookingsAllowed: plan.MaxBookingsAllowed,
		PaymentStatus:      models.PaymentPending,
		Status:             models.BookingActive,
		CreatedAt:          time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	s.Logger.Info("booking created",
		zap.String("bookingId", booking.ID),
		zap.String("plan", string(booking.PlanType)),
		zap.String("duration", string(booking.Duration)))

	s.Notifier.BookingCreated(*booking)

	return booking, nil
}

// GetUserBookings returns a user's bookings, most recent first.
func (s *DefaultBookingService) GetUserBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.Repo.GetByUser(ctx, userID)
}

// GetAllBookings returns every booking, most recent first.
func (s *DefaultBookingService) GetAllBookings(ctx context.Context) ([]models.Booking, error) {
	return s.Repo.GetAll(ctx)
}
