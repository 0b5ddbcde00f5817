// Package pricing - Pricing model catalog and validation
package pricing

import (
	"github.com/shopspring/decimal"

	"usage-billing/internal/errors"
)

// Outcome is the result of validating a model/parameter pair
type Outcome int

const (
	// OutcomeComplete means a quotation can be computed
	OutcomeComplete Outcome = iota

	// OutcomeIncomplete means the parameters are legitimately unfinished
	// (e.g. no selector chosen yet); not an error
	OutcomeIncomplete
)

// Validate checks that a model instance and its parameters are
// structurally consistent. A missing dynamic selector yields
// OutcomeIncomplete rather than an error so callers can render an
// intermediate state.
func Validate(model Model, params Parameters) (Outcome, error) {
	if err := CheckModel(model); err != nil {
		return OutcomeComplete, err
	}

	if params.ModelType != model.Type {
		return OutcomeComplete, errors.Mismatch(string(model.Type), string(params.ModelType))
	}

	spec, _ := Spec(model.Type)
	if spec.RequiresSelector && !hasSelector(model.Type, params) {
		return OutcomeIncomplete, nil
	}

	return OutcomeComplete, nil
}

// CheckModel validates a model instance on its own, without quotation
// parameters. Used when loading rate cards: a malformed model must be
// refused before it can be activated.
func CheckModel(model Model) error {
	spec, ok := Spec(model.Type)
	if !ok {
		return errors.Model("unknown pricing model type: " + string(model.Type))
	}

	if model.Price.LessThan(decimal.Zero) {
		return errors.Model("unit price must be non-negative")
	}

	return validateTiers(model, spec)
}

// validateTiers enforces the catalog's tier constraints: mutual
// exclusivity, variant support and well-formed entries.
func validateTiers(model Model, spec VariantSpec) error {
	if len(model.DiscountRates) > 0 && len(model.PrePaidTiers) > 0 {
		return errors.Tier("discountRates and prePaidTiers are mutually exclusive")
	}
	if len(model.DiscountRates) > 0 && !spec.AllowsDiscountRates {
		return errors.Tierf("model %s does not support discount rates", model.Type)
	}
	if len(model.PrePaidTiers) > 0 && !spec.AllowsPrepaidTiers {
		return errors.Tierf("model %s does not support prepaid tiers", model.Type)
	}

	for i, t := range model.DiscountRates {
		if t.Count == 0 {
			return errors.Tierf("discount tier %d has zero count", i)
		}
		if t.DiscountPercent > 100 {
			return errors.Tierf("discount tier %d has discount %d%% outside [0,100]", i, t.DiscountPercent)
		}
	}
	for i, t := range model.PrePaidTiers {
		if t.Count == 0 {
			return errors.Tierf("prepaid tier %d has zero count", i)
		}
		if t.DiscountPercent > 100 {
			return errors.Tierf("prepaid tier %d has discount %d%% outside [0,100]", i, t.DiscountPercent)
		}
	}
	return nil
}

// hasSelector reports whether the dynamic selector for a variant is present
func hasSelector(t ModelType, params Parameters) bool {
	switch t {
	case ModelFixedForPopulation:
		return len(params.RegionCodes) > 0
	case ModelFixedPerRows:
		return params.RowCount > 0
	default:
		return true
	}
}
