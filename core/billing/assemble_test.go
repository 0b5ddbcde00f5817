package billing

import (
	"testing"

	"github.com/shopspring/decimal"

	"usage-billing/core/types"
)

// TestAssembleTaxAndFees tests subtotal, tax and fee handling
func TestAssembleTaxAndFees(t *testing.T) {
	items := []types.LineItem{
		{UnitCount: 1000, DiscountPercent: 10, Cost: decimal.RequireFromString("9.00")},
		{UnitCount: 5000, DiscountPercent: 20, Cost: decimal.RequireFromString("40.00")},
	}
	fee := decimal.RequireFromString("5.00")

	q := Assemble(items, decimal.NewFromInt(24), &fee, types.CurrencyEUR)

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
		t.Errorf("expected fees passed through unchanged, got %v", q.Fees)
	}
	if q.Currency != types.CurrencyEUR {
		t.Errorf("expected currency EUR, got %s", q.Currency)
	}
}

// TestAssembleQuotationIdentity tests that totalPrice equals the sum of
// subtotal and tax exactly in the two-decimal representation
func TestAssembleQuotationIdentity(t *testing.T) {
	tests := []struct {
		name  string
		costs []string
		tax   string
	}{
		{name: "round numbers", costs: []string{"10.00"}, tax: "20"},
		{name: "tax rounds up", costs: []string{"49.00"}, tax: "24"},
		{name: "fractional tax rate", costs: []string{"33.33", "0.01"}, tax: "7.7"},
		{name: "zero tax", costs: []string{"12.34"}, tax: "0"},
		{name: "no line items", costs: nil, tax: "24"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var items []types.LineItem
			for _, c := range tt.costs {
				items = append(items, types.LineItem{Cost: decimal.RequireFromString(c)})
			}

			q := Assemble(items, decimal.RequireFromString(tt.tax), nil, types.CurrencyUSD)

			if !q.TotalPrice.Equal(q.TotalPriceExcludingTax.Add(q.Tax)) {
				t.Errorf("identity violated: %s != %s + %s",
					q.TotalPrice, q.TotalPriceExcludingTax, q.Tax)
			}
		})
	}
}

// TestAssembleEmpty tests zero usage producing a zero quotation
func TestAssembleEmpty(t *testing.T) {
	q := Assemble(nil, decimal.NewFromInt(24), nil, types.CurrencyUSD)

	if !q.TotalPriceExcludingTax.IsZero() {
		t.Errorf("expected zero subtotal, got %s", q.TotalPriceExcludingTax)
	}
	if !q.Tax.IsZero() {
		t.Errorf("expected zero tax, got %s", q.Tax)
	}
	if !q.TotalPrice.IsZero() {
		t.Errorf("expected zero total, got %s", q.TotalPrice)
	}
	if q.Fees != nil {
		t.Errorf("expected nil fees, got %v", q.Fees)
	}
}
