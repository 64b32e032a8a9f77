package gateway

import (
	"context"
	"fmt"

	"mltransport/models"
)

// Tender is the settled payment method recorded against a gateway order.
type Tender struct {
	ID        string `json:"id"`
	PaymentID string `json:"payment_id"`
}

// Order is the gateway's order record for a checkout.
type Order struct {
	ID          string   `json:"id"`
	ReferenceID string   `json:"reference_id"`
	Tenders     []Tender `json:"tenders"`
}

// Money is a gateway amount in minor units.
type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// Payment is the gateway's payment record for a tender.
type Payment struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	AmountMoney Money  `json:"amount_money"`
}

// Client is the transport to the payment provider. Retrieval calls are
// read-only and safe to repeat; creation relies on the order's idempotency
// key to collapse duplicates.
type Client interface {
	CreatePaymentLink(ctx context.Context, order models.CheckoutOrder) (*models.PaymentLink, error)
	RetrieveOrder(ctx context.Context, orderID string) (*Order, error)
	GetPayment(ctx context.Context, paymentID string) (*Payment, error)
}

// Error is a failure reported by or while reaching the gateway.
type Error struct {
	Status int
	Code   string
	Detail string
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("gateway error %d (%s): %s", e.Status, e.Code, e.Detail)
	}
	return fmt.Sprintf("gateway error: %s", e.Detail)
}
