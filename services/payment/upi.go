package payment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"onehour/models"
	"onehour/services/plan"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// SubmitUTR records a manually submitted bank-transfer proof. Manual proofs
// are trusted on submission (recorded completed, pending human
// reconciliation), but a reference can only ever be consumed once across both
// payment paths: gateway transaction refs and UTRs share the ledger's
// transaction_ref field and its unique index.
func (s *DefaultPaymentService) SubmitUTR(ctx context.Context, req models.UTRSubmission) (*models.Payment, error) {
	utr := strings.TrimSpace(req.UTRNumber)
	if utr == "" || strings.TrimSpace(req.BookingID) == "" {
		return nil, ErrMissingReference
	}

	// The amount is always the catalog price; the client-supplied figure is
	// display-only and never trusted.
	amount, err := plan.PriceFor(req.PlanType, req.Duration)
	if err != nil {
		return nil, ErrInvalidPlanOrDuration
	}

	existing, err := s.Payments.FindByTransactionRef(ctx, utr)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		s.Logger.Warn("duplicate UTR submission",
			zap.String("utr", utr),
			zap.String("bookingId", req.BookingID))
		return nil, ErrDuplicateReference
	}

	record := &models.Payment{
		ID:             uuid.New().String(),
		UserID:         req.UserID,
		BookingID:      req.BookingID,
		OrderRef:       fmt.Sprintf("UPI_%d", time.Now().UnixMilli()),
		TransactionRef: utr,
		Amount:         amount,
		Currency:       "INR",
		PlanType:       req.PlanType,
		Duration:       req.Duration,
		Status:         models.PaymentStateCompleted,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.Payments.Create(ctx, record); err != nil {
		// Two concurrent submissions of the same UTR can both pass the
		// pre-check; the unique index decides the race.
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateReference
		}
		return nil, err
	}

	if _, err := s.Ledger.RecordOutcome(ctx, req.BookingID, utr, models.PaymentCompleted); err != nil {
		return nil, err
	}

	s.Logger.Info("manual payment recorded",
		zap.String("utr", utr),
		zap.String("bookingId", req.BookingID))

	s.Notifier.ManualPaymentSubmitted(models.ManualPaymentPayload{
		Name:     req.Name,
		Email:    req.Email,
		Mobile:   req.Mobile,
		PlanType: req.PlanType,
		Duration: req.Duration,
		Amount:   amount,
		UTR:      utr,
	})

	return record, nil
}
