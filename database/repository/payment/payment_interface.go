package paymentRepo

import (
	"context"

	"onehour/models"
)

// PaymentRepository is the single source of truth for Payment records.
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	GetByOrderRef(ctx context.Context, orderRef string) (*models.Payment, error)

	// FindByTransactionRef looks a payment up by its gateway transaction ref
	// or manual UTR. Returns (nil, nil) when no payment carries the reference.
	FindByTransactionRef(ctx context.Context, ref string) (*models.Payment, error)

	// Complete finalizes the payment matching orderRef, setting the
	// transaction ref and signature. The write is conditional on the payment
	// not already being completed; a nil payment with nil error means another
	// caller completed it first.
	Complete(ctx context.Context, orderRef, transactionRef, signature string) (*models.Payment, error)

	GetByUser(ctx context.Context, userID string, status models.PaymentState) ([]models.Payment, error)
	GetAll(ctx context.Context) ([]models.Payment, error)
}
