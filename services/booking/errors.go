package booking

import (
	"fmt"

	"mltransport/models"
)

// ValidationError is bad or missing client input. Always mapped to a 4xx,
// never retried.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &ValidationError{
		Code:    "validationError",
		Message: msg,
	}
}

// NotPaidError is the non-fatal "not yet paid" outcome. The client may
// safely poll confirmation again.
type NotPaidError struct {
	Status models.VerificationState
}

func (e *NotPaidError) Error() string {
	return fmt.Sprintf("payment not completed (status: %s)", e.Status)
}

// GatewayFailure is a verification attempt that could not reach a
// trustworthy answer. Retryable by the caller.
type GatewayFailure struct {
	Detail string
}

func (e *GatewayFailure) Error() string {
	return fmt.Sprintf("gatewayFailure: %s", e.Detail)
}
