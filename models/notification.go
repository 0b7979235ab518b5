package models

// ManualPaymentPayload is the outbound event raised when a member submits a
// bank-transfer proof. Carried on the notification queue.
type ManualPaymentPayload struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Mobile   string   `json:"mobile"`
	PlanType PlanType `json:"planType"`
	Duration Duration `json:"duration"`
	Amount   int64    `json:"amount"` // paise
	UTR      string   `json:"utr"`
}
