package notification

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"mltransport/models"
)

type sentMail struct {
	to, subject, text, html string
}

// mockNotifier records sends and optionally fails specific recipients.
type mockNotifier struct {
	sent   []sentMail
	failTo map[string]bool
}

func (m *mockNotifier) Send(ctx context.Context, to, subject, text, html string) error {
	if m.failTo[to] {
		return errors.New("delivery refused")
	}
	m.sent = append(m.sent, sentMail{to, subject, text, html})
	return nil
}

var testRecord = models.PaymentRecord{
	OrderID:   "order-1",
	PaymentID: "pay-1",
	Status:    "COMPLETED",
	Amount:    23000,
	Currency:  "USD",
}

func TestDispatchOwnerAndCustomer(t *testing.T) {
	notifier := &mockNotifier{}
	d := NewDefaultDispatcher(notifier, "owner@example.com", zap.NewNop())

	details := models.BookingDetails{
		PassengerName:  "Pat Rider",
		Email:          "pat@example.com",
		PickupDate:     "2026-09-01",
		PickupTime:     "10:30",
		PickupLocation: "MCO Terminal B",
		Destination:    "Universal Orlando",
	}

	result := d.Dispatch(context.Background(), testRecord, details, "ABC12345")
	if !result.OwnerSent || !result.CustomerSent {
		t.Fatalf("result = %+v, want both sent", result)
	}
	if len(notifier.sent) != 2 {
		t.Fatalf("sent %d mails, want 2", len(notifier.sent))
	}

	owner := notifier.sent[0]
	if owner.to != "owner@example.com" {
		t.Errorf("owner mail to = %q", owner.to)
	}
	if !strings.Contains(owner.subject, "ABC12345") {
		t.Errorf("owner subject %q missing confirmation code", owner.subject)
	}
	if !strings.Contains(owner.text, "Amount: 230.00 USD") {
		t.Errorf("owner summary missing amount, got:\n%s", owner.text)
	}

	customer := notifier.sent[1]
	if customer.to != "pat@example.com" {
		t.Errorf("customer mail to = %q", customer.to)
	}
	if !strings.Contains(customer.text, "ABC12345") {
		t.Errorf("customer text missing confirmation code")
	}
}

func TestDispatchSkipsCustomerWithoutAddress(t *testing.T) {
	notifier := &mockNotifier{}
	d := NewDefaultDispatcher(notifier, "owner@example.com", zap.NewNop())

	result := d.Dispatch(context.Background(), testRecord, models.BookingDetails{}, "ABC12345")
	if !result.OwnerSent {
		t.Error("owner mail not sent")
	}
	if result.CustomerSent {
		t.Error("customer marked sent with no address")
	}
	if len(notifier.sent) != 1 {
		t.Errorf("sent %d mails, want 1", len(notifier.sent))
	}
}

func TestDispatchOwnerFailureDoesNotBlockCustomer(t *testing.T) {
	notifier := &mockNotifier{failTo: map[string]bool{"owner@example.com": true}}
	d := NewDefaultDispatcher(notifier, "owner@example.com", zap.NewNop())

	details := models.BookingDetails{Email: "pat@example.com"}
	result := d.Dispatch(context.Background(), testRecord, details, "ABC12345")
	if result.OwnerSent {
		t.Error("owner reported sent despite failure")
	}
	if !result.CustomerSent {
		t.Error("customer mail skipped after owner failure")
	}
}

func TestDispatchEscapesUserText(t *testing.T) {
	notifier := &mockNotifier{}
	d := NewDefaultDispatcher(notifier, "owner@example.com", zap.NewNop())

	details := models.BookingDetails{
		Email:          "pat@example.com",
		PickupLocation: `<script>alert("x")</script>`,
		Notes:          "<img src=x>",
	}
	d.Dispatch(context.Background(), testRecord, details, "ABC12345")

	for _, m := range notifier.sent {
		if strings.Contains(m.html, "<script>") || strings.Contains(m.html, "<img") {
			t.Errorf("unescaped user markup in HTML body for %s:\n%s", m.to, m.html)
		}
	}
}
