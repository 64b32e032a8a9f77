package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"mltransport/models"
)

// newTestClient points a SquareClient at a fixture server.
func newTestClient(server *httptest.Server) *SquareClient {
	c := NewSquareClient("test-token", "sandbox", "2025-10-16", zap.NewNop())
	c.baseURL = server.URL
	return c
}

func TestCreatePaymentLinkRequestShape(t *testing.T) {
	var captured map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/online-checkout/payment-links" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("authorization header = %q", got)
		}
		if got := r.Header.Get("Square-Version"); got != "2025-10-16" {
			t.Errorf("version header = %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"payment_link": map[string]any{
				"id":       "plink-1",
				"url":      "https://square.link/u/abc",
				"long_url": "https://checkout.square.site/xyz",
				"order_id": "order-1",
			},
		})
	}))
	defer server.Close()

	c := newTestClient(server)
	link, err := c.CreatePaymentLink(context.Background(), models.CheckoutOrder{
		IdempotencyKey: "idem-1",
		LocationID:     "LOC123",
		ReferenceID:    "bk-001",
		LineItemName:   "MLT Transportation - MCO-UNIVERSAL (suv, round-trip)",
		Amount:         23000,
		Currency:       "USD",
		RedirectURL:    "https://mltorlandotransportation.com/payment-confirmed.html",
		BuyerEmail:     "pat@example.com",
	})
	if err != nil {
		t.Fatalf("CreatePaymentLink returned error: %v", err)
	}
	if link.URL != "https://square.link/u/abc" || link.OrderID != "order-1" {
		t.Errorf("link = %+v", link)
	}

	if captured["idempotency_key"] != "idem-1" {
		t.Errorf("idempotency_key = %v", captured["idempotency_key"])
	}
	order := captured["order"].(map[string]any)
	if order["location_id"] != "LOC123" || order["reference_id"] != "bk-001" {
		t.Errorf("order fields = %v", order)
	}
	items := order["line_items"].([]any)
	item := items[0].(map[string]any)
	money := item["base_price_money"].(map[string]any)
	if money["amount"].(float64) != 23000 || money["currency"] != "USD" {
		t.Errorf("base_price_money = %v", money)
	}
	if _, ok := captured["payment_note"]; ok {
		t.Error("empty payment_note was serialized")
	}
	prefill := captured["pre_populated_data"].(map[string]any)
	if prefill["buyer_email"] != "pat@example.com" {
		t.Errorf("buyer_email = %v", prefill["buyer_email"])
	}
	if _, ok := prefill["buyer_phone_number"]; ok {
		t.Error("empty buyer_phone_number was serialized")
	}
}

func TestRetrieveOrderAndGetPayment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v2/orders/order-1":
			json.NewEncoder(w).Encode(map[string]any{
				"order": map[string]any{
					"id":           "order-1",
					"reference_id": "bk-001",
					"tenders":      []map[string]any{{"id": "tender-1", "payment_id": "pay-1"}},
				},
			})
		case "/v2/payments/pay-1":
			json.NewEncoder(w).Encode(map[string]any{
				"payment": map[string]any{
					"id":           "pay-1",
					"status":       "COMPLETED",
					"amount_money": map[string]any{"amount": 23000, "currency": "USD"},
				},
			})
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	c := newTestClient(server)

	order, err := c.RetrieveOrder(context.Background(), "order-1")
	if err != nil {
		t.Fatalf("RetrieveOrder returned error: %v", err)
	}
	if len(order.Tenders) != 1 || order.Tenders[0].PaymentID != "pay-1" {
		t.Errorf("order tenders = %+v", order.Tenders)
	}

	payment, err := c.GetPayment(context.Background(), "pay-1")
	if err != nil {
		t.Fatalf("GetPayment returned error: %v", err)
	}
	if payment.Status != "COMPLETED" || payment.AmountMoney.Amount != 23000 {
		t.Errorf("payment = %+v", payment)
	}
}

func TestGatewayErrorDecoding(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{
			"errors": []map[string]any{{
				"category": "AUTHENTICATION_ERROR",
				"code":     "UNAUTHORIZED",
				"detail":   "The access token is invalid",
			}},
		})
	}))
	defer server.Close()

	c := newTestClient(server)
	_, err := c.RetrieveOrder(context.Background(), "order-1")
	if err == nil {
		t.Fatal("expected error for 401 response")
	}
	gwErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if gwErr.Status != http.StatusUnauthorized || gwErr.Code != "UNAUTHORIZED" {
		t.Errorf("error = %+v", gwErr)
	}
}
