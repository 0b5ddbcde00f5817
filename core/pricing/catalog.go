// Package pricing - Pricing model catalog and validation
package pricing

// Dimension is the usage dimension a model variant consumes
type Dimension string

const (
	// DimensionNone applies to flat models with no metered usage
	DimensionNone Dimension = "none"

	// DimensionCalls meters service calls
	DimensionCalls Dimension = "calls"

	// DimensionRows meters data rows
	DimensionRows Dimension = "rows"

	// DimensionPopulation meters resolved population units
	DimensionPopulation Dimension = "population"
)

// VariantSpec describes the structural constraints of a model variant
type VariantSpec struct {
	// Dimension is the usage dimension the variant consumes
	Dimension Dimension

	// AllowsDiscountRates permits block-rate tiers
	AllowsDiscountRates bool

	// AllowsPrepaidTiers permits prepaid SKU tiers
	AllowsPrepaidTiers bool

	// RequiresPrice requires a positive-or-zero unit price to be meaningful
	RequiresPrice bool

	// RequiresSelector requires a dynamic selector before a quotation
	// can be computed
	RequiresSelector bool
}

// catalog is the closed set of variants. Discount and prepaid tiers are
// mutually exclusive across the whole set.
var catalog = map[ModelType]VariantSpec{
	ModelFree: {
		Dimension: DimensionNone,
	},
	ModelFixed: {
		Dimension:     DimensionNone,
		RequiresPrice: true,
	},
	ModelFixedPerRows: {
		Dimension:        DimensionRows,
		RequiresPrice:    true,
		RequiresSelector: true,
	},
	ModelFixedForPopulation: {
		Dimension:        DimensionPopulation,
		RequiresPrice:    true,
		RequiresSelector: true,
	},
	ModelPerCallWithPrepaid: {
		Dimension:          DimensionCalls,
		AllowsPrepaidTiers: true,
		RequiresPrice:      true,
	},
	ModelPerCallWithBlockRate: {
		Dimension:           DimensionCalls,
		AllowsDiscountRates: true,
		RequiresPrice:       true,
	},
	ModelPerRowWithPrepaid: {
		Dimension:          DimensionRows,
		AllowsPrepaidTiers: true,
		RequiresPrice:      true,
	},
	ModelPerRowWithBlockRate: {
		Dimension:           DimensionRows,
		AllowsDiscountRates: true,
		RequiresPrice:       true,
	},
	ModelSentinelHubSubscription: {
		Dimension:          DimensionNone,
		AllowsPrepaidTiers: true,
		RequiresPrice:      true,
	},
	ModelSentinelHubImages: {
		Dimension:          DimensionCalls,
		AllowsPrepaidTiers: true,
		RequiresPrice:      true,
	},
}

// allTypes fixes a stable listing order for the catalog
var allTypes = []ModelType{
	ModelFree,
	ModelFixed,
	ModelFixedPerRows,
	ModelFixedForPopulation,
	ModelPerCallWithPrepaid,
	ModelPerCallWithBlockRate,
	ModelPerRowWithPrepaid,
	ModelPerRowWithBlockRate,
	ModelSentinelHubSubscription,
	ModelSentinelHubImages,
}

// Spec returns the structural constraints for a variant
func Spec(t ModelType) (VariantSpec, bool) {
	s, ok := catalog[t]
	return s, ok
}

// AllTypes returns every catalog variant in stable order
func AllTypes() []ModelType {
	out := make([]ModelType, len(allTypes))
	copy(out, allTypes)
	return out
}
