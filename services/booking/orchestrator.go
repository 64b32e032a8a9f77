package booking

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"mltransport/models"
	"mltransport/services/notification"
	"mltransport/services/verification"
)

const confirmationCodeLen = 8

// ConfirmationService drives a single confirmation request from order id
// to verified payment and dispatched notifications.
type ConfirmationService interface {
	Confirm(ctx context.Context, orderID string, details models.BookingDetails) (*models.ConfirmationResult, error)
}

// DefaultConfirmationService implements ConfirmationService. It holds no
// per-order state; at-most-once notification across repeated confirmation
// calls comes from the DedupeStore.
type DefaultConfirmationService struct {
	Verifier   verification.Verifier
	Dispatcher notification.Dispatcher
	Dedupe     DedupeStore
	Logger     *zap.Logger
}

func NewDefaultConfirmationService(
	verifier verification.Verifier,
	dispatcher notification.Dispatcher,
	dedupe DedupeStore,
	logger *zap.Logger,
) *DefaultConfirmationService {
	return &DefaultConfirmationService{
		Verifier:   verifier,
		Dispatcher: dispatcher,
		Dedupe:     dedupe,
		Logger:     logger,
	}
}

// Confirm verifies the order's payment and, on the first completed
// verification for this order, dispatches the notifications.
func (s *DefaultConfirmationService) Confirm(ctx context.Context, orderID string, details models.BookingDetails) (*models.ConfirmationResult, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, NewValidationError("missing orderId from payment redirect")
	}

	outcome := s.Verifier.Verify(ctx, orderID)
	switch outcome.State {
	case models.VerificationCompleted:
		// fall through below
	case models.VerificationPending, models.VerificationFailed:
		return nil, &NotPaidError{Status: outcome.State}
	default:
		return nil, &GatewayFailure{Detail: outcome.Detail}
	}

	record := outcome.Record
	code := confirmationNumber(details.BookingID, record.ReferenceID, orderID)

	result := &models.ConfirmationResult{
		ConfirmationNumber: code,
		AmountVerified:     record.Amount,
		Currency:           record.Currency,
	}

	first, err := s.Dedupe.MarkNotified(ctx, orderID)
	if err != nil {
		// If the dedupe store cannot answer, sending could duplicate a
		// prior notification, so skip dispatch and leave it for manual
		// follow-up. The payment itself is still confirmed.
		s.Logger.Error("Dedupe store unavailable, skipping notification dispatch",
			zap.String("orderId", orderID), zap.Error(err))
		return result, nil
	}
	if !first {
		s.Logger.Info("Order already notified, skipping dispatch",
			zap.String("orderId", orderID))
		result.AlreadyNotified = true
		return result, nil
	}

	dispatched := s.Dispatcher.Dispatch(ctx, *record, details, code)
	result.OwnerNotified = dispatched.OwnerSent
	result.CustomerNotified = dispatched.CustomerSent

	s.Logger.Info("Booking confirmed",
		zap.String("orderId", orderID),
		zap.String("confirmation", code),
		zap.Bool("ownerNotified", result.OwnerNotified),
		zap.Bool("customerNotified", result.CustomerNotified))

	return result, nil
}

// confirmationNumber derives the customer-facing code from the first
// non-empty booking identifier. The gateway cannot influence it beyond
// the order id the request already carries.
func confirmationNumber(ids ...string) string {
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		runes := []rune(id)
		if len(runes) > confirmationCodeLen {
			runes = runes[:confirmationCodeLen]
		}
		return strings.ToUpper(string(runes))
	}
	return ""
}
