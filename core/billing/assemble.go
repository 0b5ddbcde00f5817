// Package billing - Quotation computation engine
package billing

import (
	"github.com/shopspring/decimal"

	"usage-billing/core/types"
)

// Assemble folds line items into a quotation. Costs are already rounded
// per line item; the subtotal and tax are rounded again at the aggregate
// level, so totalPrice == totalPriceExcludingTax + tax holds exactly in
// the two-decimal output. Fees are informational and never enter the
// total.
func Assemble(lineItems []types.LineItem, taxPercent decimal.Decimal, fees *decimal.Decimal, currency types.Currency) types.Quotation {
	subtotal := decimal.Zero
	for _, li := range lineItems {
		subtotal = subtotal.Add(li.Cost)
	}
	subtotal = types.RoundMoney(subtotal)

	tax := types.RoundMoney(subtotal.Mul(taxPercent).Div(decimal.NewFromInt(100)))

	return types.Quotation{
		TaxPercent:             taxPercent,
		TotalPriceExcludingTax: subtotal,
		Tax:                    tax,
		TotalPrice:             subtotal.Add(tax),
		Fees:                   fees,
		Currency:               currency,
		LineItems:              lineItems,
	}
}
