// Package pricing - Pricing model catalog and validation
// Models are flat tagged values; billing consumes them through free
// functions, never through dispatch on behavior.
package pricing

import (
	"github.com/shopspring/decimal"

	"usage-billing/core/types"
)

// ModelType discriminates the pricing model variants
type ModelType string

const (
	ModelFree                    ModelType = "Free"
	ModelFixed                   ModelType = "Fixed"
	ModelFixedPerRows            ModelType = "FixedPerRows"
	ModelFixedForPopulation      ModelType = "FixedForPopulation"
	ModelPerCallWithPrepaid      ModelType = "PerCallWithPrepaid"
	ModelPerCallWithBlockRate    ModelType = "PerCallWithBlockRate"
	ModelPerRowWithPrepaid       ModelType = "PerRowWithPrepaid"
	ModelPerRowWithBlockRate     ModelType = "PerRowWithBlockRate"
	ModelSentinelHubSubscription ModelType = "SentinelHubSubscription"
	ModelSentinelHubImages       ModelType = "SentinelHubImages"
)

// String returns the string representation
func (t ModelType) String() string {
	return string(t)
}

// DiscountTier is a block-rate tier. Count is a block size consumed
// positionally against remaining chargeable usage, not a cumulative
// threshold.
type DiscountTier struct {
	// Count is the block size in units
	Count uint64 `json:"count"`

	// DiscountPercent is the discount applied inside this block
	DiscountPercent uint8 `json:"discountPercent"`
}

// PrepaidTier is a purchasable SKU: a fixed allotment of units,
// typically discounted.
type PrepaidTier struct {
	// Count is the allotment size in units
	Count uint64 `json:"count"`

	// DiscountPercent is the discount against the per-unit price
	DiscountPercent uint8 `json:"discountPercent"`
}

// Price returns the rounded purchase price of the SKU at the given
// per-unit price.
func (t PrepaidTier) Price(unitPrice decimal.Decimal) decimal.Decimal {
	full := unitPrice.Mul(decimal.NewFromUint64(t.Count))
	return types.RoundMoney(full.Sub(types.Percent(full, t.DiscountPercent)))
}

// Model is a pricing model instance. Exactly one of DiscountRates and
// PrePaidTiers may be set, and only on variants that allow it.
type Model struct {
	// Type discriminates the variant
	Type ModelType `json:"type"`

	// Key is an optional identity used by callers for display correlation
	Key string `json:"key,omitempty"`

	// Price is the currency-per-unit price, non-negative
	Price decimal.Decimal `json:"price"`

	// MinUnits is the minimum purchasable quantity, where applicable
	MinUnits uint64 `json:"minUnits,omitempty"`

	// DiscountRates are block-rate tiers, consumed in list order
	DiscountRates []DiscountTier `json:"discountRates,omitempty"`

	// PrePaidTiers are purchasable SKUs
	PrePaidTiers []PrepaidTier `json:"prePaidTiers,omitempty"`

	// Domains, Coverage and Consumers are restriction lists, opaque to
	// billing and passed through unchanged
	Domains   []string `json:"domains,omitempty"`
	Coverage  []string `json:"coverage,omitempty"`
	Consumers []string `json:"consumers,omitempty"`
}
