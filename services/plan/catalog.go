package plan

import (
	"errors"

	"onehour/models"
)

var (
	ErrUnknownPlan     = errors.New("unknown plan type")
	ErrUnknownDuration = errors.New("unknown duration")
)

// TimeSlots is the fixed list of bookable session slots.
var TimeSlots = []string{
	"6:00 AM - 7:00 AM",
	"7:00 AM - 8:00 AM",
	"8:00 AM - 9:00 AM",
	"5:00 PM - 6:00 PM",
	"6:00 PM - 7:00 PM",
	"7:00 PM - 8:00 PM",
}

// Prices are in paise (INR smallest unit).
var catalog = map[models.PlanType]models.Plan{
	models.PlanPro: {
		Type:               models.PlanPro,
		MaxPreferredDays:   3,
		BookingsPerWeek:    3,
		MaxBookingsAllowed: 4,
		Prices: map[models.Duration]int64{
			models.DurationOneMonth:   149900, // ₹1,499
			models.DurationThreeMonth: 299900, // ₹2,999
			models.DurationSixMonth:   599900, // ₹5,999
			models.DurationYearly:     799900, // ₹7,999
		},
	},
	models.PlanAdvance: {
		Type:               models.PlanAdvance,
		MaxPreferredDays:   5,
		BookingsPerWeek:    5,
		MaxBookingsAllowed: 6,
		Prices: map[models.Duration]int64{
			models.DurationOneMonth:   299900, // ₹2,999
			models.DurationThreeMonth: 599900, // ₹5,999
			models.DurationSixMonth:   799900, // ₹7,999
			models.DurationYearly:     999900, // ₹9,999
		},
	},
}

// LimitsFor returns the plan definition for a tier.
func LimitsFor(planType models.PlanType) (models.Plan, error) {
	p, ok := catalog[planType]
	if !ok {
		return models.Plan{}, ErrUnknownPlan
	}
	return p, nil
}

// PriceFor returns the price in paise for a plan and billing duration.
func PriceFor(planType models.PlanType, duration models.Duration) (int64, error) {
	p, ok := catalog[planType]
	if !ok {
		return 0, ErrUnknownPlan
	}
	amount, ok := p.Prices[duration]
	if !ok {
		return 0, ErrUnknownDuration
	}
	return amount, nil
}

// ValidTimeSlot reports whether slot is one of the fixed session slots.
func ValidTimeSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// PricingTable returns the plan × duration price map in rupees, the shape the
// pricing endpoint serves.
func PricingTable() map[string]map[string]int64 {
	table := make(map[string]map[string]int64, len(catalog))
	for planType, p := range catalog {
		row := make(map[string]int64, len(p.Prices))
		for duration, paise := range p.Prices {
			row[string(duration)] = paise / 100
		}
		table[string(planType)] = row
	}
	return table
}
