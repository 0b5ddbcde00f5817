package billing

import (
	"testing"

	"usage-billing/core/types"
)

// TestReconcile tests chargeable quantity derivation from raw counters
func TestReconcile(t *testing.T) {
	tests := []struct {
		name       string
		counters   types.UsageCounters
		chargeable uint64
		wantWarn   bool
	}{
		{
			name:       "prepaid covers part of usage",
			counters:   types.UsageCounters{TotalUnits: 7000, PrepaidUnits: 1000},
			chargeable: 6000,
		},
		{
			name:       "no prepaid",
			counters:   types.UsageCounters{TotalUnits: 500},
			chargeable: 500,
		},
		{
			name:       "prepaid covers everything",
			counters:   types.UsageCounters{TotalUnits: 100, PrepaidUnits: 100},
			chargeable: 0,
		},
		{
			name:       "prepaid exceeds total",
			counters:   types.UsageCounters{TotalUnits: 100, PrepaidUnits: 150},
			chargeable: 0,
			wantWarn:   true,
		},
		{
			name:       "zero usage",
			counters:   types.UsageCounters{},
			chargeable: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reconciled, warning := Reconcile(tt.counters)

			if reconciled.ChargeableUnits != tt.chargeable {
				t.Errorf("expected %d chargeable units, got %d", tt.chargeable, reconciled.ChargeableUnits)
			}
			if tt.wantWarn && warning == nil {
				t.Error("expected an integrity warning")
			}
			if !tt.wantWarn && warning != nil {
				t.Errorf("unexpected warning: %v", warning)
			}
			if warning != nil && warning.Code != WarnUsageIntegrity {
				t.Errorf("expected code %s, got %s", WarnUsageIntegrity, warning.Code)
			}
		})
	}
}
