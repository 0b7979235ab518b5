package booking

import (
	"fmt"
	"strings"

	"onehour/models"
	"onehour/services/plan"
)

// validateRequest checks a raw booking request against its plan's limits and
// returns the normalized request together with the plan definition. Preferred
// days are de-duplicated before the size check so a repeated day cannot
// inflate the count. Weekly utilization against existing bookings is not
// checked here; the validator only verifies the shape of a single request.
func validateRequest(req models.BookingRequest) (models.BookingRequest, models.Plan, error) {
	p, err := plan.LimitsFor(req.PlanType)
	if err != nil {
		return req, models.Plan{}, ErrInvalidPlan
	}

	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Mobile) == "" {
		return req, p, ErrMissingContactInfo
	}

	req.PreferredDays = dedupeDays(req.PreferredDays)
	if len(req.PreferredDays) == 0 {
		return req, p, ErrNoDaysSelected
	}
	if len(req.PreferredDays) > p.MaxPreferredDays {
		return req, p, fmt.Errorf("%s plan allows max %d days per week: %w",
			p.Type, p.MaxPreferredDays, ErrTooManyDays)
	}

	if !plan.ValidTimeSlot(req.PreferredTimeSlot) {
		return req, p, ErrInvalidTimeSlot
	}

	return req, p, nil
}

func dedupeDays(days []string) []string {
	seen := make(map[string]struct{}, len(days))
	out := days[:0]
	for _, d := range days {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out
}
