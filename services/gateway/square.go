package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"mltransport/models"
)

const (
	productionBaseURL = "https://connect.squareup.com"
	sandboxBaseURL    = "https://connect.squareupsandbox.com"
)

// SquareClient talks to Square's Checkout, Orders and Payments APIs.
type SquareClient struct {
	baseURL     string
	accessToken string
	version     string
	httpClient  *http.Client
	logger      *zap.Logger
}

// NewSquareClient builds a client for the given environment ("production"
// or "sandbox"). version pins the Square-Version header.
func NewSquareClient(accessToken, env, version string, logger *zap.Logger) *SquareClient {
	baseURL := productionBaseURL
	if env == "sandbox" {
		baseURL = sandboxBaseURL
	}
	return &SquareClient{
		baseURL:     baseURL,
		accessToken: accessToken,
		version:     version,
		httpClient:  &http.Client{Timeout: 15 * time.Second},
		logger:      logger,
	}
}

type createLinkOrder struct {
	LocationID  string     `json:"location_id"`
	ReferenceID string     `json:"reference_id,omitempty"`
	LineItems   []lineItem `json:"line_items"`
}

type lineItem struct {
	Name           string `json:"name"`
	Quantity       string `json:"quantity"`
	BasePriceMoney Money  `json:"base_price_money"`
}

type checkoutOptions struct {
	RedirectURL string `json:"redirect_url,omitempty"`
}

type prePopulatedData struct {
	BuyerEmail       string `json:"buyer_email,omitempty"`
	BuyerPhoneNumber string `json:"buyer_phone_number,omitempty"`
}

type createLinkRequest struct {
	IdempotencyKey   string            `json:"idempotency_key"`
	Order            createLinkOrder   `json:"order"`
	CheckoutOptions  *checkoutOptions  `json:"checkout_options,omitempty"`
	PrePopulatedData *prePopulatedData `json:"pre_populated_data,omitempty"`
	PaymentNote      string            `json:"payment_note,omitempty"`
}

type createLinkResponse struct {
	PaymentLink struct {
		ID      string `json:"id"`
		URL     string `json:"url"`
		LongURL string `json:"long_url"`
		OrderID string `json:"order_id"`
	} `json:"payment_link"`
}

type retrieveOrderResponse struct {
	Order Order `json:"order"`
}

type getPaymentResponse struct {
	Payment Payment `json:"payment"`
}

// apiError is Square's error envelope on non-2xx responses.
type apiError struct {
	Errors []struct {
		Category string `json:"category"`
		Code     string `json:"code"`
		Detail   string `json:"detail"`
	} `json:"errors"`
}

// CreatePaymentLink creates a hosted checkout link for the order.
func (c *SquareClient) CreatePaymentLink(ctx context.Context, order models.CheckoutOrder) (*models.PaymentLink, error) {
	payload := createLinkRequest{
		IdempotencyKey: order.IdempotencyKey,
		Order: createLinkOrder{
			LocationID:  order.LocationID,
			ReferenceID: order.ReferenceID,
			LineItems: []lineItem{{
				Name:           order.LineItemName,
				Quantity:       "1",
				BasePriceMoney: Money{Amount: order.Amount, Currency: order.Currency},
			}},
		},
		PaymentNote: order.Note,
	}
	if order.RedirectURL != "" {
		payload.CheckoutOptions = &checkoutOptions{RedirectURL: order.RedirectURL}
	}
	if order.BuyerEmail != "" || order.BuyerPhone != "" {
		payload.PrePopulatedData = &prePopulatedData{
			BuyerEmail:       order.BuyerEmail,
			BuyerPhoneNumber: order.BuyerPhone,
		}
	}

	var resp createLinkResponse
	if err := c.do(ctx, http.MethodPost, "/v2/online-checkout/payment-links", payload, &resp); err != nil {
		return nil, err
	}
	if resp.PaymentLink.URL == "" {
		return nil, &Error{Detail: "gateway returned no payment link URL"}
	}

	c.logger.Info("Created payment link",
		zap.String("paymentLinkId", resp.PaymentLink.ID),
		zap.String("orderId", resp.PaymentLink.OrderID))

	return &models.PaymentLink{
		ID:      resp.PaymentLink.ID,
		URL:     resp.PaymentLink.URL,
		LongURL: resp.PaymentLink.LongURL,
		OrderID: resp.PaymentLink.OrderID,
	}, nil
}

// RetrieveOrder fetches the order, including any settled tenders.
func (c *SquareClient) RetrieveOrder(ctx context.Context, orderID string) (*Order, error) {
	var resp retrieveOrderResponse
	if err := c.do(ctx, http.MethodGet, "/v2/orders/"+orderID, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Order, nil
}

// GetPayment fetches a payment by id.
func (c *SquareClient) GetPayment(ctx context.Context, paymentID string) (*Payment, error) {
	var resp getPaymentResponse
	if err := c.do(ctx, http.MethodGet, "/v2/payments/"+paymentID, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Payment, nil
}

func (c *SquareClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode gateway request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build gateway request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Square-Version", c.version)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Detail: fmt.Sprintf("request to %s failed: %v", path, err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr apiError
		gwErr := &Error{Status: resp.StatusCode, Detail: "unexpected gateway response"}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && len(apiErr.Errors) > 0 {
			gwErr.Code = apiErr.Errors[0].Code
			gwErr.Detail = apiErr.Errors[0].Detail
		}
		c.logger.Warn("Gateway call failed",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("code", gwErr.Code))
		return gwErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Status: resp.StatusCode, Detail: fmt.Sprintf("failed to decode gateway response: %v", err)}
	}
	return nil
}
