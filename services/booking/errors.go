package booking

import "errors"

var (
	ErrInvalidPlan        = errors.New("invalid plan type")
	ErrTooManyDays        = errors.New("too many preferred days for plan")
	ErrNoDaysSelected     = errors.New("at least one preferred day is required")
	ErrInvalidTimeSlot    = errors.New("invalid time slot")
	ErrMissingContactInfo = errors.New("name, email and mobile are required")
)
