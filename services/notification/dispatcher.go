package notification

import (
	"context"
	"fmt"
	"html"
	"strings"

	"go.uber.org/zap"

	"mltransport/models"
)

// DefaultDispatcher implements Dispatcher over a Notifier. The owner mail
// is always attempted; the customer mail only when an address was given.
// Neither failure invalidates a verified payment.
type DefaultDispatcher struct {
	Notifier   Notifier
	OwnerEmail string
	Logger     *zap.Logger
}

func NewDefaultDispatcher(notifier Notifier, ownerEmail string, logger *zap.Logger) *DefaultDispatcher {
	return &DefaultDispatcher{Notifier: notifier, OwnerEmail: ownerEmail, Logger: logger}
}

func (d *DefaultDispatcher) Dispatch(ctx context.Context, rec models.PaymentRecord, details models.BookingDetails, confirmation string) DispatchResult {
	var result DispatchResult

	summary := bookingSummary(rec, details, confirmation)
	ownerSubject := fmt.Sprintf("NEW PAID BOOKING - %s", confirmation)
	ownerHTML := fmt.Sprintf(
		`<pre style="white-space:pre-wrap;font-family:ui-monospace,Menlo,Consolas,monospace;">%s</pre>`,
		html.EscapeString(summary))

	if err := d.Notifier.Send(ctx, d.OwnerEmail, ownerSubject, summary, ownerHTML); err != nil {
		d.Logger.Error("Owner notification failed",
			zap.String("orderId", rec.OrderID), zap.Error(err))
	} else {
		result.OwnerSent = true
	}

	if details.Email != "" {
		subject := fmt.Sprintf("MLT Booking Confirmed - %s", confirmation)
		text, htmlBody := customerEmail(details, confirmation)
		if err := d.Notifier.Send(ctx, details.Email, subject, text, htmlBody); err != nil {
			d.Logger.Error("Customer notification failed",
				zap.String("orderId", rec.OrderID), zap.Error(err))
		} else {
			result.CustomerSent = true
		}
	}

	return result
}

// bookingSummary is the plain-text owner digest of the paid booking.
func bookingSummary(rec models.PaymentRecord, details models.BookingDetails, confirmation string) string {
	lines := []string{
		fmt.Sprintf("Confirmation: %s", confirmation),
		fmt.Sprintf("OrderId: %s", rec.OrderID),
		fmt.Sprintf("PaymentId: %s", rec.PaymentID),
		fmt.Sprintf("Amount: %.2f %s", float64(rec.Amount)/100, rec.Currency),
		"",
		"BOOKING DETAILS",
		fmt.Sprintf("Passenger: %s", details.PassengerName),
		fmt.Sprintf("Email: %s", details.Email),
		fmt.Sprintf("Phone: %s", details.Phone),
		fmt.Sprintf("Passengers: %s", details.Passengers),
		fmt.Sprintf("Pickup: %s %s", details.PickupDate, details.PickupTime),
		fmt.Sprintf("Pickup location: %s", details.PickupLocation),
		fmt.Sprintf("Destination: %s", details.Destination),
		fmt.Sprintf("Route: %s", details.Route),
		fmt.Sprintf("Vehicle: %s", details.Vehicle),
		fmt.Sprintf("Trip type: %s", details.Trip),
		fmt.Sprintf("Flight: %s", details.Flight),
		fmt.Sprintf("Luggage: %s", details.Luggage),
		fmt.Sprintf("Child seats: %s", details.ChildSeats),
		fmt.Sprintf("Notes: %s", details.Notes),
	}
	return strings.Join(lines, "\n")
}

// customerEmail renders the customer confirmation in text and HTML. User
// supplied fields are escaped before entering markup.
func customerEmail(details models.BookingDetails, confirmation string) (string, string) {
	text := fmt.Sprintf(`Your booking is confirmed.

Confirmation: %s

Pickup: %s %s
From: %s
To: %s

If you need changes, reply to this email or contact us at 407-369-0643.

Thank you,
MLT Orlando Transportation`,
		confirmation,
		details.PickupDate, details.PickupTime,
		details.PickupLocation, details.Destination)

	esc := html.EscapeString
	htmlBody := fmt.Sprintf(`<p>Your booking is <strong>confirmed</strong>.</p>
<p><strong>Confirmation:</strong> %s</p>
<p><strong>Pickup:</strong> %s %s<br/>
<strong>From:</strong> %s<br/>
<strong>To:</strong> %s</p>
<p>If you need changes, reply to this email or contact us at <strong>407-369-0643</strong>.</p>
<p>Thank you,<br/>MLT Orlando Transportation</p>`,
		esc(confirmation),
		esc(details.PickupDate), esc(details.PickupTime),
		esc(details.PickupLocation), esc(details.Destination))

	return text, htmlBody
}
