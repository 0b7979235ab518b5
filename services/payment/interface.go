package payment

import (
	"context"

	"onehour/models"
)

// PaymentService covers both payment paths: gateway checkout orders with
// signature verification, and manually submitted bank-transfer proofs.
type PaymentService interface {
	CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.CreateOrderResponse, error)
	VerifyPayment(ctx context.Context, req models.VerifyPaymentRequest) error
	SubmitUTR(ctx context.Context, req models.UTRSubmission) (*models.Payment, error)
	GetUserPayments(ctx context.Context, userID string) ([]models.Payment, error)
	GetAllPayments(ctx context.Context) ([]models.Payment, error)
	Pricing() map[string]map[string]int64
}
