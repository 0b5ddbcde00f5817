// Package types - Shared billing value types
package types

import "github.com/shopspring/decimal"

// UsageCounters are the raw usage counters supplied by the metering layer.
type UsageCounters struct {
	// TotalUnits is the total metered usage
	TotalUnits uint64 `json:"totalUnits"`

	// PrepaidUnits is the usage already covered by prepaid allotments
	PrepaidUnits uint64 `json:"prepaidUnits"`
}

// ReconciledUsage is the outcome of reconciling raw counters.
type ReconciledUsage struct {
	// ChargeableUnits is the usage that remains billable
	ChargeableUnits uint64 `json:"chargeableUnits"`
}

// LineItem is one priced slice of usage produced by the tier allocator.
type LineItem struct {
	// UnitPrice is the undiscounted price per unit
	UnitPrice decimal.Decimal `json:"unitPrice"`

	// UnitCount is the number of units billed in this slice
	UnitCount uint64 `json:"unitCount"`

	// DiscountPercent is the discount applied to this slice
	DiscountPercent uint8 `json:"discountPercent"`

	// Cost is the rounded cost of this slice
	Cost decimal.Decimal `json:"cost"`
}

// Quotation is the final priced breakdown for a usage and pricing model.
type Quotation struct {
	// TaxPercent is the tax rate applied to the subtotal
	TaxPercent decimal.Decimal `json:"taxPercent"`

	// TotalPriceExcludingTax is the rounded sum of line item costs
	TotalPriceExcludingTax decimal.Decimal `json:"totalPriceExcludingTax"`

	// Tax is the rounded tax amount
	Tax decimal.Decimal `json:"tax"`

	// TotalPrice is TotalPriceExcludingTax plus Tax, exact in the
	// two-decimal representation
	TotalPrice decimal.Decimal `json:"totalPrice"`

	// Fees is an optional informational platform fee, never part of TotalPrice
	Fees *decimal.Decimal `json:"fees,omitempty"`

	// Currency is the quotation currency
	Currency Currency `json:"currency"`

	// LineItems is the itemized breakdown the totals were folded from
	LineItems []LineItem `json:"lineItems,omitempty"`
}
