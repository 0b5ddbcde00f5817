// Package billing - Quotation computation engine
// Pure and synchronous: every function is referentially transparent and
// safe to call concurrently.
package billing

import (
	"github.com/shopspring/decimal"

	"usage-billing/core/pricing"
	"usage-billing/core/types"
)

// Allocate partitions a chargeable quantity into tier-bound blocks and
// prices each block. Tiers are consumed strictly in list order as block
// sizes of remaining quantity, never as cumulative thresholds. Any
// quantity left after the last tier is billed at full price.
//
// Zero chargeable units produce no line items. A zero unit price still
// produces line items so the breakdown stays visible.
func Allocate(chargeableUnits uint64, unitPrice decimal.Decimal, tiers []pricing.DiscountTier) []types.LineItem {
	if chargeableUnits == 0 {
		return nil
	}

	items := make([]types.LineItem, 0, len(tiers)+1)
	remaining := chargeableUnits

	for _, tier := range tiers {
		if remaining == 0 {
			break
		}
		blockCount := tier.Count
		if remaining < blockCount {
			blockCount = remaining
		}
		items = append(items, priceBlock(unitPrice, blockCount, tier.DiscountPercent))
		remaining -= blockCount
	}

	if remaining > 0 {
		items = append(items, priceBlock(unitPrice, remaining, 0))
	}

	return items
}

// priceBlock prices one block: count * unitPrice * (100 - discount) / 100,
// rounded to the currency minor unit.
func priceBlock(unitPrice decimal.Decimal, count uint64, discountPercent uint8) types.LineItem {
	full := unitPrice.Mul(decimal.NewFromUint64(count))
	cost := types.RoundMoney(full.Sub(types.Percent(full, discountPercent)))

	return types.LineItem{
		UnitPrice:       unitPrice,
		UnitCount:       count,
		DiscountPercent: discountPercent,
		Cost:            cost,
	}
}
