package notification

import "onehour/models"

// Task types carried on the outbound notification queue.
const (
	TypeBookingCreated   = "notify:booking_created"
	TypePaymentCompleted = "notify:payment_completed"
	TypeManualPayment    = "notify:manual_payment"
)

// Dispatcher enqueues outbound notification events. Every method is
// fire-and-forget: enqueue failures are logged and never propagate to the
// caller, so a notification problem can never fail a booking or payment.
type Dispatcher interface {
	BookingCreated(booking models.Booking)
	PaymentCompleted(payment models.Payment)
	ManualPaymentSubmitted(payload models.ManualPaymentPayload)
}

// Mailer delivers a single outbound email.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}
