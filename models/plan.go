package models

// PlanType identifies one of the two fixed subscription tiers.
type PlanType string

const (
	PlanPro     PlanType = "PRO"
	PlanAdvance PlanType = "ADVANCE"
)

// Duration is the billing period for a plan.
type Duration string

const (
	DurationOneMonth   Duration = "1-Month"
	DurationThreeMonth Duration = "3-Month"
	DurationSixMonth   Duration = "6-Month"
	DurationYearly     Duration = "Yearly"
)

// Plan describes a subscription tier: how many distinct weekdays a member may
// reserve, the weekly session count stamped onto bookings, the soft booking
// cap, and the price per billing duration in paise.
type Plan struct {
	Type               PlanType           `json:"planType"`
	MaxPreferredDays   int                `json:"maxPreferredDays"`
	BookingsPerWeek    int                `json:"bookingsPerWeek"`
	MaxBookingsAllowed int                `json:"maxBookingsAllowed"`
	Prices             map[Duration]int64 `json:"prices"`
}
