// Package billing - Quotation computation engine
package billing

import (
	"github.com/shopspring/decimal"

	"usage-billing/core/pricing"
	"usage-billing/core/types"
)

// Status reports whether a quotation could be computed
type Status string

const (
	// StatusComplete means the result carries a quotation
	StatusComplete Status = "complete"

	// StatusIncomplete means the parameters are legitimately unfinished
	// and no quotation was computed
	StatusIncomplete Status = "incomplete"
)

// Terms are the system-supplied side of a quotation request.
type Terms struct {
	// TaxPercent is the tax rate; the rule that selected it is external
	TaxPercent decimal.Decimal `json:"taxPercent"`

	// Fees is an optional informational platform fee
	Fees *decimal.Decimal `json:"fees,omitempty"`

	// Currency is the quotation currency
	Currency types.Currency `json:"currency"`
}

// QuoteResult is the outcome of a quotation request.
type QuoteResult struct {
	// Status distinguishes a computed quotation from an incomplete state
	Status Status `json:"status"`

	// Quotation is present only when Status is complete
	Quotation *types.Quotation `json:"quotation,omitempty"`

	// Warnings are non-fatal data integrity findings
	Warnings []IntegrityWarning `json:"warnings,omitempty"`
}

// Quote validates the model/parameter pair, reconciles usage, allocates
// tier blocks and assembles the quotation. It is the single entry point
// the edges call.
func Quote(model pricing.Model, params pricing.Parameters, terms Terms) (*QuoteResult, error) {
	outcome, err := pricing.Validate(model, params)
	if err != nil {
		return nil, err
	}
	if outcome == pricing.OutcomeIncomplete {
		return &QuoteResult{Status: StatusIncomplete}, nil
	}

	units, warning := billableUnits(model, params)

	items := Allocate(units, model.Price, model.DiscountRates)
	quotation := Assemble(items, terms.TaxPercent, terms.Fees, terms.Currency)

	result := &QuoteResult{
		Status:    StatusComplete,
		Quotation: &quotation,
	}
	if warning != nil {
		result.Warnings = append(result.Warnings, *warning)
	}
	return result, nil
}

// billableUnits derives the quantity to allocate for a model variant.
// Metered variants reconcile raw counters; fixed variants bill a single
// allotment; dynamic variants take their quantity from the selector.
func billableUnits(model pricing.Model, params pricing.Parameters) (uint64, *IntegrityWarning) {
	switch model.Type {
	case pricing.ModelFree:
		return 0, nil

	case pricing.ModelFixed, pricing.ModelSentinelHubSubscription:
		return applyMinimum(1, model.MinUnits), nil

	case pricing.ModelFixedPerRows:
		return applyMinimum(params.RowCount, model.MinUnits), nil
	}

	// Metered variants, population included: chargeable usage comes from
	// the reconciled counters.
	reconciled, warning := Reconcile(params.Counters())
	return applyMinimum(reconciled.ChargeableUnits, model.MinUnits), warning
}

// applyMinimum raises a non-zero quantity to the model's minimum
// purchasable quantity. Zero stays zero: nothing consumed, nothing billed.
func applyMinimum(units, minUnits uint64) uint64 {
	if units == 0 {
		return 0
	}
	if minUnits > units {
		return minUnits
	}
	return units
}
