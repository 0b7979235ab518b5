package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	paymentRepo "onehour/database/repository/payment"
	"onehour/models"
	"onehour/services/notification"
	"onehour/services/plan"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultPaymentService is the production implementation of PaymentService.
type DefaultPaymentService struct {
	Payments       paymentRepo.PaymentRepository
	Gateway        GatewayClient // nil when no credentials are configured
	Ledger         *Ledger
	Notifier       notification.Dispatcher
	Logger         *zap.Logger
	GatewayTimeout time.Duration
}

// CreateOrder creates a gateway order for a booking and records the pending
// Payment. The amount always comes from the plan catalog, never the client.
func (s *DefaultPaymentService) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.CreateOrderResponse, error) {
	amount, err := plan.PriceFor(req.PlanType, req.Duration)
	if err != nil {
		return nil, ErrInvalidPlanOrDuration
	}

	if s.Gateway == nil {
		return nil, ErrGatewayUnavailable
	}

	timeout := s.GatewayTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	gwCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	receipt := fmt.Sprintf("booking_%s_%d", req.BookingID, time.Now().Unix())
	notes := map[string]interface{}{
		"planType":  string(req.PlanType),
		"duration":  string(req.Duration),
		"bookingId": req.BookingID,
	}
	order, err := s.Gateway.CreateOrder(gwCtx, amount, "INR", receipt, notes)
	if err != nil {
		s.Logger.Error("gateway order creation failed",
			zap.String("bookingId", req.BookingID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}

	record := &models.Payment{
		ID:        uuid.New().String(),
		UserID:    req.UserID,
		BookingID: req.BookingID,
		OrderRef:  order.ID,
		Amount:    amount,
		Currency:  "INR",
		PlanType:  req.PlanType,
		Duration:  req.Duration,
		Status:    models.PaymentStateCreated,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Payments.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	s.Logger.Info("gateway order created",
		zap.String("orderRef", order.ID),
		zap.String("bookingId", req.BookingID),
		zap.Int64("amount", amount))

	return &models.CreateOrderResponse{
		Order: order,
		Key:   s.Gateway.KeyID(),
	}, nil
}

// VerifyPayment checks a gateway completion callback's HMAC signature and,
// on success, finalizes the Payment and the linked Booking.
//
// Contract on mismatch: the Payment and Booking are left untouched. A
// mismatch is treated as "unverified", not "failed", so the client may retry
// with a genuine callback against the same order.
//
// Calling this twice with the same valid callback is safe: the second call
// finds the payment already completed, performs no writes, and still returns
// success.
func (s *DefaultPaymentService) VerifyPayment(ctx context.Context, req models.VerifyPaymentRequest) error {
	if s.Gateway == nil {
		return ErrGatewayUnavailable
	}
	if !s.Gateway.VerifySignature(req.OrderRef, req.TransactionRef, req.Signature) {
		// Integrity failure: possible forgery or gateway misconfiguration.
		s.Logger.Warn("payment signature mismatch",
			zap.String("orderRef", req.OrderRef),
			zap.String("transactionRef", req.TransactionRef))
		return ErrSignatureMismatch
	}

	record, err := s.Payments.GetByOrderRef(ctx, req.OrderRef)
	if err != nil {
		if errors.Is(err, paymentRepo.ErrNotFound) {
			return ErrPaymentNotFound
		}
		return err
	}

	completed, err := s.Payments.Complete(ctx, req.OrderRef, req.TransactionRef, req.Signature)
	if err != nil {
		return err
	}

	if _, err := s.Ledger.RecordOutcome(ctx, record.BookingID, req.TransactionRef, models.PaymentCompleted); err != nil {
		return err
	}

	// completed is nil when a concurrent or earlier verification won; the
	// notification only goes out once.
	if completed != nil {
		s.Logger.Info("payment verified",
			zap.String("orderRef", req.OrderRef),
			zap.String("bookingId", completed.BookingID))
		s.Notifier.PaymentCompleted(*completed)
	}
	return nil
}

// GetUserPayments returns a user's completed payments, most recent first.
func (s *DefaultPaymentService) GetUserPayments(ctx context.Context, userID string) ([]models.Payment, error) {
	return s.Payments.GetByUser(ctx, userID, models.PaymentStateCompleted)
}

// GetAllPayments returns every payment, most recent first.
func (s *DefaultPaymentService) GetAllPayments(ctx context.Context) ([]models.Payment, error) {
	return s.Payments.GetAll(ctx)
}

// Pricing returns the plan × duration price table in rupees.
func (s *DefaultPaymentService) Pricing() map[string]map[string]int64 {
	return plan.PricingTable()
}
