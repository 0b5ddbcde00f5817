// Package billing - Quotation computation engine
package billing

import (
	"fmt"

	"usage-billing/core/types"
)

// IntegrityWarning flags a non-fatal data inconsistency in the usage
// counters. Computation proceeds, but the caller must surface it.
type IntegrityWarning struct {
	// Code identifies the inconsistency
	Code string `json:"code"`

	// Message describes it for logging
	Message string `json:"message"`
}

// WarnUsageIntegrity is raised when prepaid usage exceeds total usage
const WarnUsageIntegrity = "USAGE_INTEGRITY"

// Reconcile derives the chargeable quantity from raw counters. The
// subtraction saturates at zero; if prepaid usage exceeds total usage,
// an integrity warning is returned alongside the zero result so the
// inconsistency is never hidden.
func Reconcile(counters types.UsageCounters) (types.ReconciledUsage, *IntegrityWarning) {
	if counters.PrepaidUnits > counters.TotalUnits {
		return types.ReconciledUsage{ChargeableUnits: 0}, &IntegrityWarning{
			Code: WarnUsageIntegrity,
			Message: fmt.Sprintf("prepaid units (%d) exceed total units (%d); chargeable clamped to 0",
				counters.PrepaidUnits, counters.TotalUnits),
		}
	}

	return types.ReconciledUsage{
		ChargeableUnits: counters.TotalUnits - counters.PrepaidUnits,
	}, nil
}
