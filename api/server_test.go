package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	"usage-billing/core/billing"
	"usage-billing/core/types"
)

func newTestServer() *Server {
	return NewServer("test", types.CurrencyEUR)
}

func postQuote(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/quote", strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

// TestQuoteEndpoint tests a full quotation over HTTP
func TestQuoteEndpoint(t *testing.T) {
	rec := postQuote(t, newTestServer(), `{
		"model": {
			"type": "PerCallWithBlockRate",
			"price": "0.01",
			"discountRates": [
				{"count": 1000, "discountPercent": 10},
				{"count": 5000, "discountPercent": 20}
			]
		},
		"userParameters": {
			"modelType": "PerCallWithBlockRate",
			"usage": {"totalUnits": 7000, "prepaidUnits": 1000}
		},
		"systemParameters": {"taxPercent": "24", "fees": "5.00"}
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp QuoteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	if resp.Status != billing.StatusComplete {
		t.Fatalf("expected complete status, got %s", resp.Status)
	}
	if resp.RequestID == "" {
		t.Error("expected a request id")
	}

	q := resp.EffectivePricingModel.Quotation
	if q == nil {
		t.Fatal("expected a quotation in the envelope")
	}
	if got := q.TotalPriceExcludingTax.StringFixed(2); got != "49.00" {
		t.Errorf("expected subtotal 49.00, got %s", got)
	}
	if got := q.Tax.StringFixed(2); got != "11.76" {
		t.Errorf("expected tax 11.76, got %s", got)
	}
	if got := q.TotalPrice.StringFixed(2); got != "60.76" {
		t.Errorf("expected total 60.76, got %s", got)
	}
	if q.Fees == nil || q.Fees.StringFixed(2) != "5.00" {
		t.Errorf("expected fees 5.00 passed through, got %v", q.Fees)
	}
	if q.Currency != types.CurrencyEUR {
		t.Errorf("expected default currency EUR, got %s", q.Currency)
	}
}

// TestQuoteEndpointIncomplete tests that a missing selector yields an
// incomplete response, not an error
func TestQuoteEndpointIncomplete(t *testing.T) {
	rec := postQuote(t, newTestServer(), `{
		"model": {"type": "FixedForPopulation", "price": "1.00"},
		"userParameters": {"modelType": "FixedForPopulation"},
		"systemParameters": {"taxPercent": "24"}
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp QuoteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Status != billing.StatusIncomplete {
		t.Errorf("expected incomplete status, got %s", resp.Status)
	}
	if resp.EffectivePricingModel.Quotation != nil {
		t.Error("expected no quotation on incomplete response")
	}
}

// TestQuoteEndpointRejectsBadTier tests validation failures map to 400
// with the taxonomy code
func TestQuoteEndpointRejectsBadTier(t *testing.T) {
	rec := postQuote(t, newTestServer(), `{
		"model": {
			"type": "PerCallWithBlockRate",
			"price": "0.01",
			"discountRates": [{"count": 0, "discountPercent": 10}]
		},
		"userParameters": {"modelType": "PerCallWithBlockRate"},
		"systemParameters": {"taxPercent": "24"}
	}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "INVALID_TIER_DEFINITION") {
		t.Errorf("expected INVALID_TIER_DEFINITION code in body: %s", rec.Body.String())
	}
}

// TestQuoteEndpointWarnings tests that integrity warnings surface in
// the response
func TestQuoteEndpointWarnings(t *testing.T) {
	rec := postQuote(t, newTestServer(), `{
		"model": {"type": "PerCallWithBlockRate", "price": "0.01"},
		"userParameters": {
			"modelType": "PerCallWithBlockRate",
			"usage": {"totalUnits": 100, "prepaidUnits": 150}
		},
		"systemParameters": {"taxPercent": "0"}
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp QuoteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Warnings) != 1 || resp.Warnings[0].Code != billing.WarnUsageIntegrity {
		t.Errorf("expected a usage integrity warning, got %+v", resp.Warnings)
	}
}

// TestQuoteEndpointInvalidJSON tests malformed bodies
func TestQuoteEndpointInvalidJSON(t *testing.T) {
	rec := postQuote(t, newTestServer(), `{not json`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

// TestModelsEndpoint tests the catalog listing
func TestModelsEndpoint(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/models", nil)
	rec := httptest.NewRecorder()
	newTestServer().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Models []ModelInfo `json:"models"`
		Count  int         `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Count != 10 || len(resp.Models) != 10 {
		t.Errorf("expected 10 catalog variants, got %d", resp.Count)
	}
}

// TestHealthEndpoint tests the health check
func TestHealthEndpoint(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	newTestServer().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "healthy") {
		t.Errorf("expected healthy status in body: %s", rec.Body.String())
	}
}
