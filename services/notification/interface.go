package notification

import (
	"context"

	"mltransport/models"
)

// Notifier is the single abstract send capability the pipeline needs from
// any notification back end.
type Notifier interface {
	Send(ctx context.Context, to, subject, text, html string) error
}

// DispatchResult reports per-recipient delivery of the confirmation
// notifications.
type DispatchResult struct {
	OwnerSent    bool
	CustomerSent bool
}

// Dispatcher formats and sends the owner and customer notifications for a
// verified payment.
type Dispatcher interface {
	Dispatch(ctx context.Context, rec models.PaymentRecord, details models.BookingDetails, confirmation string) DispatchResult
}
