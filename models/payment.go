package models

// VerificationState classifies a payment lookup against the gateway.
type VerificationState string

const (
	// VerificationPending means the order exists but no tender has been
	// attached yet. Expected briefly after the checkout redirect.
	VerificationPending VerificationState = "pending"
	// VerificationCompleted means the gateway reports the payment settled.
	VerificationCompleted VerificationState = "completed"
	// VerificationFailed means the payment exists but did not settle.
	VerificationFailed VerificationState = "failed"
	// VerificationGatewayError covers transport failures and statuses this
	// service does not recognize. Unknown is never treated as paid.
	VerificationGatewayError VerificationState = "gateway_error"
)

// PaymentRecord is a fresh read of the gateway's payment for an order.
// Never cached across requests.
type PaymentRecord struct {
	OrderID     string `json:"orderId"`
	PaymentID   string `json:"paymentId"`
	ReferenceID string `json:"referenceId,omitempty"`
	Status      string `json:"status"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
}

// VerificationOutcome is the result of verifying an order's payment.
type VerificationOutcome struct {
	State  VerificationState
	Record *PaymentRecord
	Detail string
}
