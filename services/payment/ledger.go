package payment

import (
	"context"
	"fmt"

	bookingRepo "onehour/database/repository/booking"
	"onehour/models"

	"go.uber.org/zap"
)

// Ledger is the only path permitted to mutate a booking's payment fields.
// It enforces the monotonic transition invariant: pending may move to a
// terminal state once; any later attempt is a logged no-op, because duplicate
// gateway webhooks and client retries are expected.
type Ledger struct {
	Bookings bookingRepo.BookingRepository
	Logger   *zap.Logger
}

// RecordOutcome finalizes the booking linked to a payment. The bool reports
// whether this call performed the transition.
func (l *Ledger) RecordOutcome(ctx context.Context, bookingID, paymentID string, outcome models.PaymentStatus) (bool, error) {
	if outcome != models.PaymentCompleted && outcome != models.PaymentFailed {
		return false, fmt.Errorf("invalid payment outcome %q", outcome)
	}

	applied, err := l.Bookings.UpdatePaymentOutcome(ctx, bookingID, paymentID, outcome)
	if err != nil {
		return false, err
	}
	if !applied {
		l.Logger.Info("ledger: booking already finalized, outcome ignored",
			zap.String("bookingId", bookingID),
			zap.String("paymentId", paymentID),
			zap.String("outcome", string(outcome)))
	}
	return applied, nil
}
