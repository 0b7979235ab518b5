package payment

import "errors"

var (
	ErrInvalidPlanOrDuration = errors.New("invalid plan or duration")
	ErrGatewayUnavailable    = errors.New("payment gateway not configured or unreachable")
	ErrSignatureMismatch     = errors.New("payment verification failed")
	ErrPaymentNotFound       = errors.New("no payment found for order")
	ErrMissingReference      = errors.New("UTR number and booking details are required")
	ErrDuplicateReference    = errors.New("this UTR number has already been used")
)
