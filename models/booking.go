package models

import "time"

// PaymentStatus tracks a booking's payment lifecycle. Transitions are
// monotonic: pending may move to completed or failed, terminal states never
// change again.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// BookingStatus is the membership lifecycle state, mutated only by the expiry
// job outside this service.
type BookingStatus string

const (
	BookingActive   BookingStatus = "active"
	BookingInactive BookingStatus = "inactive"
	BookingExpired  BookingStatus = "expired"
)

// Booking is a persisted recurring time-slot reservation.
type Booking struct {
	ID                 string        `bson:"id" json:"id"`
	UserID             string        `bson:"user_id,omitempty" json:"userId,omitempty"` // opaque, supplied by the external identity service
	Name               string        `bson:"name" json:"name"`
	Email              string        `bson:"email" json:"email"`
	Mobile             string        `bson:"mobile" json:"mobile"`
	PlanType           PlanType      `bson:"plan_type" json:"planType"`
	Duration           Duration      `bson:"duration" json:"duration"`
	PreferredDays      []string      `bson:"preferred_days" json:"preferredDays"`
	PreferredTimeSlot  string        `bson:"preferred_time_slot" json:"preferredTimeSlot"`
	BookingsPerWeek    int           `bson:"bookings_per_week" json:"bookingsPerWeek"`
	MaxBookingsAllowed int           `bson:"max_bookings_allowed" json:"maxBookingsAllowed"`
	PaymentID          string        `bson:"payment_id,omitempty" json:"paymentId,omitempty"`
	PaymentStatus      PaymentStatus `bson:"payment_status" json:"paymentStatus"`
	Status             BookingStatus `bson:"status" json:"status"`
	CreatedAt          time.Time     `bson:"created_at" json:"createdAt"`
}

// BookingRequest is the raw inbound booking payload before validation.
type BookingRequest struct {
	UserID            string   `json:"userId"`
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	Mobile            string   `json:"mobile"`
	PlanType          PlanType `json:"planType"`
	Duration          Duration `json:"duration"`
	PreferredDays     []string `json:"preferredDays"`
	PreferredTimeSlot string   `json:"preferredTimeSlot"`
}
