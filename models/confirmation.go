package models

// ConfirmationResult is returned once a payment has been verified as
// completed. The confirmation number is derived from booking identifiers,
// never from gateway-controlled data.
type ConfirmationResult struct {
	ConfirmationNumber string `json:"confirmationNumber"`
	OwnerNotified      bool   `json:"ownerNotified"`
	CustomerNotified   bool   `json:"customerNotified"`
	AmountVerified     int64  `json:"amountVerified"`
	Currency           string `json:"currency"`
	AlreadyNotified    bool   `json:"alreadyNotified,omitempty"`
}
