// Package cmd provides the CLI commands for usage-billing.
package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"usage-billing/adapters/catalog"
	"usage-billing/core/billing"
	"usage-billing/core/pricing"
	"usage-billing/core/types"
	"usage-billing/internal/config"
)

var (
	quoteModelFile string
	quoteModelKey  string
	quoteTotal     uint64
	quotePrepaid   uint64
	quoteRows      uint64
	quoteRegions   []string
	quoteTax       string
	quoteFee       string
	quoteCurrency  string
)

// quoteCmd computes a quotation for a model from a rate-card file
var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Compute a quotation for metered usage",
	RunE:  runQuote,
}

func init() {
	quoteCmd.Flags().StringVar(&quoteModelFile, "model", "", "rate-card file (.hcl or .json)")
	quoteCmd.Flags().StringVar(&quoteModelKey, "key", "", "model key within the rate card")
	quoteCmd.Flags().Uint64Var(&quoteTotal, "total", 0, "total metered units")
	quoteCmd.Flags().Uint64Var(&quotePrepaid, "prepaid", 0, "units already covered by prepaid allotments")
	quoteCmd.Flags().Uint64Var(&quoteRows, "rows", 0, "row selector for per-rows models")
	quoteCmd.Flags().StringSliceVar(&quoteRegions, "regions", nil, "region codes for population models")
	quoteCmd.Flags().StringVar(&quoteTax, "tax", "", "tax percent (default from config)")
	quoteCmd.Flags().StringVar(&quoteFee, "fee", "", "informational platform fee")
	quoteCmd.Flags().StringVar(&quoteCurrency, "currency", "", "currency code (default from config)")
	_ = quoteCmd.MarkFlagRequired("model")
}

func runQuote(cmd *cobra.Command, args []string) error {
	model, err := selectModel(quoteModelFile, quoteModelKey)
	if err != nil {
		return err
	}

	terms, err := buildTerms()
	if err != nil {
		return err
	}

	params := pricing.Parameters{
		ModelType:   model.Type,
		Usage:       &types.UsageCounters{TotalUnits: quoteTotal, PrepaidUnits: quotePrepaid},
		RegionCodes: quoteRegions,
		RowCount:    quoteRows,
	}

	result, err := billing.Quote(model, params, terms)
	if err != nil {
		return err
	}

	for _, warning := range result.Warnings {
		fmt.Printf("WARNING [%s] %s\n", warning.Code, warning.Message)
	}

	if result.Status == billing.StatusIncomplete {
		fmt.Println("Quotation incomplete: select options to see a price.")
		return nil
	}

	printQuotation(model, result.Quotation)
	return nil
}

// selectModel loads the rate card and picks one model by key. A card
// with a single model needs no key.
func selectModel(path, key string) (pricing.Model, error) {
	models, err := catalog.Load(path)
	if err != nil {
		return pricing.Model{}, err
	}

	if key == "" {
		if len(models) == 1 {
			return models[0], nil
		}
		return pricing.Model{}, fmt.Errorf("rate card defines %d models; pick one with --key", len(models))
	}
	for _, m := range models {
		if m.Key == key {
			return m, nil
		}
	}
	return pricing.Model{}, fmt.Errorf("no model %q in %s", key, path)
}

func buildTerms() (billing.Terms, error) {
	cfg := config.Get()

	taxStr := quoteTax
	if taxStr == "" {
		taxStr = cfg.Billing.DefaultTaxPercent
	}
	tax, err := decimal.NewFromString(taxStr)
	if err != nil {
		return billing.Terms{}, fmt.Errorf("invalid tax percent %q: %w", taxStr, err)
	}

	var fees *decimal.Decimal
	if quoteFee != "" {
		fee, err := decimal.NewFromString(quoteFee)
		if err != nil {
			return billing.Terms{}, fmt.Errorf("invalid fee %q: %w", quoteFee, err)
		}
		fees = &fee
	}

	currency := types.Currency(quoteCurrency)
	if currency == "" {
		currency = cfg.Billing.DefaultCurrency
	}

	return billing.Terms{TaxPercent: tax, Fees: fees, Currency: currency}, nil
}

func printQuotation(model pricing.Model, q *types.Quotation) {
	fmt.Printf("Quotation for model %s", model.Type)
	if model.Key != "" {
		fmt.Printf(" (%s)", model.Key)
	}
	fmt.Println()
	fmt.Println()

	if len(q.LineItems) == 0 {
		fmt.Println("  (no billable usage)")
	}
	for _, li := range q.LineItems {
		fmt.Printf("  %8d units @ %s", li.UnitCount, li.UnitPrice.String())
		if li.DiscountPercent > 0 {
			fmt.Printf("  -%d%%", li.DiscountPercent)
		}
		fmt.Printf("  = %s %s\n", li.Cost.StringFixed(2), q.Currency)
	}

	fmt.Println()
	fmt.Printf("  Subtotal: %s %s\n", q.TotalPriceExcludingTax.StringFixed(2), q.Currency)
	fmt.Printf("  Tax (%s%%): %s %s\n", q.TaxPercent.String(), q.Tax.StringFixed(2), q.Currency)
	fmt.Printf("  Total:    %s %s\n", q.TotalPrice.StringFixed(2), q.Currency)
	if q.Fees != nil {
		fmt.Printf("  Platform fee (informational): %s %s\n", q.Fees.StringFixed(2), q.Currency)
	}
}
