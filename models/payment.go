package models

import "time"

// PaymentState is the lifecycle of a Payment record. A payment is created
// before the outcome is known and finalized exactly once.
type PaymentState string

const (
	PaymentStateCreated   PaymentState = "created"
	PaymentStateCompleted PaymentState = "completed"
	PaymentStateFailed    PaymentState = "failed"
)

// Payment is a persisted payment attempt, gateway- or manually-originated.
// TransactionRef holds either the gateway transaction id or a manual UTR;
// a unique index guarantees any given reference is consumed at most once
// across both paths.
type Payment struct {
	ID             string       `bson:"id" json:"id"`
	UserID         string       `bson:"user_id,omitempty" json:"userId,omitempty"`
	BookingID      string       `bson:"booking_id" json:"bookingId"`
	OrderRef       string       `bson:"order_ref" json:"orderRef"`
	TransactionRef string       `bson:"transaction_ref,omitempty" json:"transactionRef,omitempty"`
	Signature      string       `bson:"signature,omitempty" json:"signature,omitempty"`
	Amount         int64        `bson:"amount" json:"amount"` // paise
	Currency       string       `bson:"currency" json:"currency"`
	PlanType       PlanType     `bson:"plan_type" json:"planType"`
	Duration       Duration     `bson:"duration" json:"duration"`
	Status         PaymentState `bson:"status" json:"status"`
	CreatedAt      time.Time    `bson:"created_at" json:"createdAt"`
}

// GatewayOrder is the gateway-side order record returned on creation.
type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// CreateOrderRequest asks for a gateway order covering a booking.
type CreateOrderRequest struct {
	UserID    string   `json:"userId"`
	BookingID string   `json:"bookingId"`
	PlanType  PlanType `json:"planType"`
	Duration  Duration `json:"duration"`
}

// CreateOrderResponse carries the gateway order plus the public key id the
// client needs to open checkout.
type CreateOrderResponse struct {
	Order *GatewayOrder `json:"order"`
	Key   string        `json:"key"`
}

// VerifyPaymentRequest is the gateway completion callback body. Field names
// follow the gateway's checkout wire format.
type VerifyPaymentRequest struct {
	OrderRef       string `json:"razorpay_order_id"`
	TransactionRef string `json:"razorpay_payment_id"`
	Signature      string `json:"razorpay_signature"`
}

// UTRSubmission is a manually submitted bank-transfer proof.
type UTRSubmission struct {
	UserID    string   `json:"userId"`
	BookingID string   `json:"bookingId"`
	UTRNumber string   `json:"utrNumber"`
	Amount    int64    `json:"amount"`
	PlanType  PlanType `json:"planType"`
	Duration  Duration `json:"duration"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Mobile    string   `json:"mobile"`
}
