package verification

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"mltransport/models"
	"mltransport/services/gateway"
)

// knownStatuses are the payment statuses this service understands. Any
// status outside this set fails closed as a gateway error rather than
// being guessed at.
var knownStatuses = map[string]bool{
	"APPROVED":  true,
	"PENDING":   true,
	"COMPLETED": true,
	"CANCELED":  true,
	"FAILED":    true,
}

// Verifier resolves an order id into a verification outcome. Verification
// is read-only against the gateway and safe to call repeatedly.
type Verifier interface {
	Verify(ctx context.Context, orderID string) models.VerificationOutcome
}

// DefaultVerifier implements Verifier over a gateway client.
type DefaultVerifier struct {
	Gateway gateway.Client
	Logger  *zap.Logger
}

func NewDefaultVerifier(gw gateway.Client, logger *zap.Logger) *DefaultVerifier {
	return &DefaultVerifier{Gateway: gw, Logger: logger}
}

// Verify retrieves the order, follows its first tender to the payment and
// classifies the payment status. Only the literal COMPLETED status counts
// as paid.
func (v *DefaultVerifier) Verify(ctx context.Context, orderID string) models.VerificationOutcome {
	order, err := v.Gateway.RetrieveOrder(ctx, orderID)
	if err != nil {
		v.Logger.Warn("Order retrieval failed", zap.String("orderId", orderID), zap.Error(err))
		return models.VerificationOutcome{
			State:  models.VerificationGatewayError,
			Detail: fmt.Sprintf("failed to retrieve order: %v", err),
		}
	}

	// No tender yet is the normal race right after the checkout redirect;
	// the caller should poll, not error.
	if len(order.Tenders) == 0 || order.Tenders[0].PaymentID == "" {
		return models.VerificationOutcome{
			State:  models.VerificationPending,
			Detail: "order has no settled tender yet",
		}
	}

	paymentID := order.Tenders[0].PaymentID
	payment, err := v.Gateway.GetPayment(ctx, paymentID)
	if err != nil {
		v.Logger.Warn("Payment retrieval failed", zap.String("paymentId", paymentID), zap.Error(err))
		return models.VerificationOutcome{
			State:  models.VerificationGatewayError,
			Detail: fmt.Sprintf("failed to retrieve payment: %v", err),
		}
	}

	record := &models.PaymentRecord{
		OrderID:     orderID,
		PaymentID:   paymentID,
		ReferenceID: order.ReferenceID,
		Status:      payment.Status,
		Amount:      payment.AmountMoney.Amount,
		Currency:    payment.AmountMoney.Currency,
	}

	switch {
	case payment.Status == "COMPLETED":
		return models.VerificationOutcome{State: models.VerificationCompleted, Record: record}
	case knownStatuses[payment.Status]:
		return models.VerificationOutcome{
			State:  models.VerificationFailed,
			Record: record,
			Detail: fmt.Sprintf("payment not completed (status: %s)", payment.Status),
		}
	default:
		return models.VerificationOutcome{
			State:  models.VerificationGatewayError,
			Record: record,
			Detail: fmt.Sprintf("unrecognized payment status %q", payment.Status),
		}
	}
}
