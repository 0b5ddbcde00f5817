// Package api - Thin HTTP layer over the quotation engine
// The API is only responsible for input decoding, engine orchestration
// and output serialization. It never performs billing math.
package api

import (
	"github.com/shopspring/decimal"

	"usage-billing/core/billing"
	"usage-billing/core/pricing"
	"usage-billing/core/types"
)

// SystemParameters are the system-supplied quotation terms. Tax rule
// resolution happens upstream; only the resulting percentage arrives here.
type SystemParameters struct {
	// TaxPercent is the tax rate to apply
	TaxPercent decimal.Decimal `json:"taxPercent"`

	// Fees is an optional informational platform fee
	Fees *decimal.Decimal `json:"fees,omitempty"`

	// Currency is the quotation currency; empty falls back to the
	// configured default
	Currency types.Currency `json:"currency,omitempty"`
}

// QuoteRequest is the body of POST /quote
type QuoteRequest struct {
	// Model is the pricing model to quote against
	Model pricing.Model `json:"model"`

	// UserParameters carry usage counters and selectors
	UserParameters pricing.Parameters `json:"userParameters"`

	// SystemParameters carry tax, fees and currency
	SystemParameters SystemParameters `json:"systemParameters"`
}

// EffectivePricingModel is the response envelope: the model echoed back
// together with the quotation computed for it
type EffectivePricingModel struct {
	Model            pricing.Model      `json:"model"`
	Quotation        *types.Quotation   `json:"quotation,omitempty"`
	SystemParameters SystemParameters   `json:"systemParameters"`
	UserParameters   pricing.Parameters `json:"userParameters"`
}

// QuoteResponse is the full response of POST /quote
type QuoteResponse struct {
	// Status is complete or incomplete
	Status billing.Status `json:"status"`

	// EffectivePricingModel is present on both statuses; its quotation
	// only when complete
	EffectivePricingModel *EffectivePricingModel `json:"effectivePricingModel"`

	// Warnings are non-fatal integrity findings
	Warnings []billing.IntegrityWarning `json:"warnings,omitempty"`

	// RequestID correlates the response with server logs
	RequestID string `json:"requestId"`
}

// ModelInfo describes one catalog variant for GET /models
type ModelInfo struct {
	Type                 pricing.ModelType `json:"type"`
	Dimension            pricing.Dimension `json:"dimension"`
	SupportsDiscountRate bool              `json:"supportsDiscountRates"`
	SupportsPrepaidTiers bool              `json:"supportsPrepaidTiers"`
	RequiresSelector     bool              `json:"requiresSelector"`
}
