// Package cmd provides the CLI commands for usage-billing.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"usage-billing/adapters/catalog"
	"usage-billing/core/pricing"
)

var modelsFile string

// modelsCmd lists the model catalog, or the contents of a rate card
var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List pricing model variants or a rate card's models",
	RunE:  runModels,
}

func init() {
	modelsCmd.Flags().StringVar(&modelsFile, "model", "", "rate-card file to list instead of the catalog")
}

func runModels(cmd *cobra.Command, args []string) error {
	if modelsFile != "" {
		return listRateCard(modelsFile)
	}

	fmt.Printf("%-26s %-12s %-10s %-8s %s\n", "TYPE", "DIMENSION", "DISCOUNT", "PREPAID", "SELECTOR")
	for _, t := range pricing.AllTypes() {
		spec, _ := pricing.Spec(t)
		fmt.Printf("%-26s %-12s %-10v %-8v %v\n",
			t, spec.Dimension, spec.AllowsDiscountRates, spec.AllowsPrepaidTiers, spec.RequiresSelector)
	}
	return nil
}

func listRateCard(path string) error {
	models, err := catalog.Load(path)
	if err != nil {
		return err
	}

	for _, m := range models {
		fmt.Printf("%s (%s)  price=%s", m.Key, m.Type, m.Price.String())
		if m.MinUnits > 0 {
			fmt.Printf("  min_units=%d", m.MinUnits)
		}
		fmt.Println()

		for _, t := range m.DiscountRates {
			fmt.Printf("  discount block: %d units at -%d%%\n", t.Count, t.DiscountPercent)
		}
		for _, t := range m.PrePaidTiers {
			fmt.Printf("  prepaid SKU: %d units at -%d%% = %s\n",
				t.Count, t.DiscountPercent, t.Price(m.Price).StringFixed(2))
		}
	}
	return nil
}
