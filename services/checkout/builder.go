package checkout

import (
	"net/url"
	"strings"

	"github.com/google/uuid"

	"mltransport/models"
)

// Gateway-documented length limits. Longer values are truncated rather
// than failing the request.
const (
	maxReferenceIDLen = 40
	maxNoteLen        = 500
)

// idempotencyNamespace seeds the derived idempotency token for retried
// submissions. Changing it would break retry collapsing for in-flight
// checkouts.
var idempotencyNamespace = uuid.MustParse("b6c6cb6e-3f6a-4a94-8f3e-3e7a6f1d9b42")

// MerchantConfig carries the merchant-side fields stamped onto every
// checkout order.
type MerchantConfig struct {
	LocationID string
	Currency   string
	// PublicBaseURL is the trusted origin customers are redirected back to.
	// Client input can only pick a path under it, never another origin.
	PublicBaseURL string
	// ConfirmPath is the default redirect path when the client sends none.
	ConfirmPath string
}

// Build assembles a gateway-agnostic checkout order from a validated
// booking request and its server-resolved quote.
func Build(req models.BookingRequest, quote models.PriceQuote, cfg MerchantConfig) models.CheckoutOrder {
	return models.CheckoutOrder{
		IdempotencyKey: idempotencyToken(req.ReferenceID),
		LocationID:     cfg.LocationID,
		ReferenceID:    truncate(req.ReferenceID, maxReferenceIDLen),
		LineItemName:   quote.Label,
		Amount:         quote.Amount,
		Currency:       quote.Currency,
		RedirectURL:    redirectURL(cfg, req.RedirectPath),
		BuyerEmail:     strings.TrimSpace(req.BuyerEmail),
		BuyerPhone:     strings.TrimSpace(req.BuyerPhone),
		Note:           truncate(req.Note, maxNoteLen),
	}
}

// idempotencyToken is stable for a given client reference id, so HTTP
// retries of the same submission collapse into one gateway order. Without
// a reference id each call is its own attempt and gets a fresh token.
func idempotencyToken(referenceID string) string {
	if referenceID == "" {
		return uuid.New().String()
	}
	return uuid.NewSHA1(idempotencyNamespace, []byte(referenceID)).String()
}

// redirectURL joins a client-supplied path suffix onto the trusted base
// origin. Absolute URLs and anything carrying a host are discarded.
func redirectURL(cfg MerchantConfig, clientPath string) string {
	path := cfg.ConfirmPath
	if clientPath != "" {
		if u, err := url.Parse(clientPath); err == nil && !u.IsAbs() && u.Host == "" && u.Path != "" {
			path = u.Path
		}
	}
	return strings.TrimRight(cfg.PublicBaseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
