package booking

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"mltransport/models"
	"mltransport/services/notification"
)

// mockVerifier returns a canned outcome.
type mockVerifier struct {
	outcome models.VerificationOutcome
	calls   int
}

func (m *mockVerifier) Verify(ctx context.Context, orderID string) models.VerificationOutcome {
	m.calls++
	return m.outcome
}

// mockDispatcher records dispatches.
type mockDispatcher struct {
	calls  int
	result notification.DispatchResult
}

func (m *mockDispatcher) Dispatch(ctx context.Context, rec models.PaymentRecord, details models.BookingDetails, confirmation string) notification.DispatchResult {
	m.calls++
	return m.result
}

// memoryDedupe implements DedupeStore in memory for tests.
type memoryDedupe struct {
	seen map[string]bool
	err  error
}

func (m *memoryDedupe) MarkNotified(ctx context.Context, orderID string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	if m.seen == nil {
		m.seen = make(map[string]bool)
	}
	if m.seen[orderID] {
		return false, nil
	}
	m.seen[orderID] = true
	return true, nil
}

func completedOutcome() models.VerificationOutcome {
	return models.VerificationOutcome{
		State: models.VerificationCompleted,
		Record: &models.PaymentRecord{
			OrderID:     "order-1",
			PaymentID:   "pay-1",
			ReferenceID: "booking-ref-123",
			Status:      "COMPLETED",
			Amount:      23000,
			Currency:    "USD",
		},
	}
}

func newService(v *mockVerifier, d *mockDispatcher, store DedupeStore) *DefaultConfirmationService {
	return NewDefaultConfirmationService(v, d, store, zap.NewNop())
}

func TestConfirmMissingOrderID(t *testing.T) {
	v := &mockVerifier{}
	svc := newService(v, &mockDispatcher{}, &memoryDedupe{})

	_, err := svc.Confirm(context.Background(), "  ", models.BookingDetails{})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	if v.calls != 0 {
		t.Error("verifier called despite missing order id")
	}
}

func TestConfirmPendingIsNotPaid(t *testing.T) {
	v := &mockVerifier{outcome: models.VerificationOutcome{State: models.VerificationPending}}
	d := &mockDispatcher{}
	svc := newService(v, d, &memoryDedupe{})

	_, err := svc.Confirm(context.Background(), "order-1", models.BookingDetails{})
	var np *NotPaidError
	if !errors.As(err, &np) {
		t.Fatalf("error = %v, want *NotPaidError", err)
	}
	if np.Status != models.VerificationPending {
		t.Errorf("status = %q, want pending", np.Status)
	}
	if d.calls != 0 {
		t.Error("dispatch attempted for an unpaid order")
	}
}

func TestConfirmGatewayFailure(t *testing.T) {
	v := &mockVerifier{outcome: models.VerificationOutcome{
		State:  models.VerificationGatewayError,
		Detail: "upstream unavailable",
	}}
	svc := newService(v, &mockDispatcher{}, &memoryDedupe{})

	_, err := svc.Confirm(context.Background(), "order-1", models.BookingDetails{})
	var gf *GatewayFailure
	if !errors.As(err, &gf) {
		t.Fatalf("error = %v, want *GatewayFailure", err)
	}
}

func TestConfirmPaidDispatchesOnce(t *testing.T) {
	v := &mockVerifier{outcome: completedOutcome()}
	d := &mockDispatcher{result: notification.DispatchResult{OwnerSent: true, CustomerSent: true}}
	store := &memoryDedupe{}
	svc := newService(v, d, store)

	res, err := svc.Confirm(context.Background(), "order-1", models.BookingDetails{BookingID: "bk-20260901-xyz"})
	if err != nil {
		t.Fatalf("Confirm returned error: %v", err)
	}
	if res.ConfirmationNumber != "BK-20260" {
		t.Errorf("confirmation number = %q, want BK-20260", res.ConfirmationNumber)
	}
	if !res.OwnerNotified || !res.CustomerNotified {
		t.Errorf("notified flags = %+v, want both true", res)
	}
	if res.AmountVerified != 23000 {
		t.Errorf("verified amount = %d, want 23000", res.AmountVerified)
	}

	// Second confirmation for the same order verifies again but must not
	// dispatch again.
	res2, err := svc.Confirm(context.Background(), "order-1", models.BookingDetails{BookingID: "bk-20260901-xyz"})
	if err != nil {
		t.Fatalf("second Confirm returned error: %v", err)
	}
	if d.calls != 1 {
		t.Errorf("dispatch calls = %d, want 1", d.calls)
	}
	if !res2.AlreadyNotified {
		t.Error("second confirmation not flagged as already notified")
	}
	if res2.OwnerNotified || res2.CustomerNotified {
		t.Error("second confirmation reports fresh notifications")
	}
	if res2.ConfirmationNumber != res.ConfirmationNumber {
		t.Errorf("confirmation codes diverged: %q then %q", res.ConfirmationNumber, res2.ConfirmationNumber)
	}
}

func TestConfirmCodeFallsBackToReferenceThenOrder(t *testing.T) {
	v := &mockVerifier{outcome: completedOutcome()}
	svc := newService(v, &mockDispatcher{}, &memoryDedupe{})

	res, err := svc.Confirm(context.Background(), "order-1", models.BookingDetails{})
	if err != nil {
		t.Fatalf("Confirm returned error: %v", err)
	}
	if res.ConfirmationNumber != "BOOKING-" {
		t.Errorf("confirmation number = %q, want BOOKING- (from reference id)", res.ConfirmationNumber)
	}

	noRef := completedOutcome()
	noRef.Record.ReferenceID = ""
	v2 := &mockVerifier{outcome: noRef}
	svc2 := newService(v2, &mockDispatcher{}, &memoryDedupe{})
	res2, err := svc2.Confirm(context.Background(), "orderxyz99", models.BookingDetails{})
	if err != nil {
		t.Fatalf("Confirm returned error: %v", err)
	}
	if res2.ConfirmationNumber != "ORDERXYZ" {
		t.Errorf("confirmation number = %q, want ORDERXYZ (from order id)", res2.ConfirmationNumber)
	}
}

func TestConfirmDedupeStoreFailureSkipsDispatch(t *testing.T) {
	v := &mockVerifier{outcome: completedOutcome()}
	d := &mockDispatcher{result: notification.DispatchResult{OwnerSent: true}}
	svc := newService(v, d, &memoryDedupe{err: errors.New("redis down")})

	res, err := svc.Confirm(context.Background(), "order-1", models.BookingDetails{})
	if err != nil {
		t.Fatalf("Confirm returned error: %v", err)
	}
	if d.calls != 0 {
		t.Error("dispatch attempted while dedupe store was unavailable")
	}
	if res.OwnerNotified || res.CustomerNotified {
		t.Error("notified flags set without a dispatch")
	}
}
