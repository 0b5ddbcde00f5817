// Package pricing - Pricing model catalog and validation
package pricing

import "usage-billing/core/types"

// Parameters carry the user-supplied side of a quotation request. The
// ModelType discriminator must match the model being quoted.
type Parameters struct {
	// ModelType discriminates which variant these parameters belong to
	ModelType ModelType `json:"modelType"`

	// Usage holds the metered counters for call/row/population variants.
	// A nil Usage is treated as zero usage.
	Usage *types.UsageCounters `json:"usage,omitempty"`

	// RegionCodes is the population selector for FixedForPopulation
	RegionCodes []string `json:"regionCodes,omitempty"`

	// RowCount is the row selector for FixedPerRows
	RowCount uint64 `json:"rowCount,omitempty"`
}

// Counters returns the usage counters, defaulting to zero usage.
func (p Parameters) Counters() types.UsageCounters {
	if p.Usage == nil {
		return types.UsageCounters{}
	}
	return *p.Usage
}
