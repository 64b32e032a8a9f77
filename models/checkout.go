package models

// CheckoutOrder is the gateway-agnostic description of a hosted checkout.
// One is built per booking attempt; the idempotency key is stable across
// client retries of the same attempt so the gateway collapses duplicates.
type CheckoutOrder struct {
	IdempotencyKey string
	LocationID     string
	ReferenceID    string
	LineItemName   string
	Amount         int64
	Currency       string
	RedirectURL    string
	BuyerEmail     string
	BuyerPhone     string
	Note           string
}

// PaymentLink is the gateway-hosted checkout URL returned after creating
// a checkout order.
type PaymentLink struct {
	ID      string `json:"paymentLinkId"`
	URL     string `json:"url"`
	LongURL string `json:"longUrl,omitempty"`
	OrderID string `json:"orderId"`
}
