// Package catalog loads pricing model definitions from rate-card files.
// Rate cards are authored in HCL; the JSON wire shape is accepted too so
// a card exported from the service layer can be loaded unchanged.
package catalog

import (
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/shopspring/decimal"

	"usage-billing/core/pricing"
	"usage-billing/internal/errors"
)

// rateCard is the HCL file schema
type rateCard struct {
	Models []modelBlock `hcl:"model,block"`
}

// modelBlock is one model definition
type modelBlock struct {
	Key           string      `hcl:"key,label"`
	Type          string      `hcl:"type"`
	Price         string      `hcl:"price,optional"`
	MinUnits      int64       `hcl:"min_units,optional"`
	DiscountRates []tierBlock `hcl:"discount_rate,block"`
	PrepaidTiers  []tierBlock `hcl:"prepaid_tier,block"`
	Domains       []string    `hcl:"domains,optional"`
	Coverage      []string    `hcl:"coverage,optional"`
	Consumers     []string    `hcl:"consumers,optional"`
}

// tierBlock is one tier entry
type tierBlock struct {
	Count   int64 `hcl:"count"`
	Percent int64 `hcl:"percent"`
}

// Load reads a rate-card file and returns the validated models it
// defines. The format is chosen by file extension: .hcl for rate cards,
// .json for the wire shape.
func Load(path string) ([]pricing.Model, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return loadHCL(path)
	case ".json":
		return loadJSON(path)
	default:
		return nil, errors.Catalog("unsupported rate-card format: "+filepath.Ext(path), nil)
	}
}

func loadHCL(path string) ([]pricing.Model, error) {
	var card rateCard
	if err := hclsimple.DecodeFile(path, nil, &card); err != nil {
		return nil, errors.Catalog("parsing rate card", err)
	}

	models := make([]pricing.Model, 0, len(card.Models))
	for _, block := range card.Models {
		model, err := block.toModel()
		if err != nil {
			return nil, err
		}
		if err := pricing.CheckModel(model); err != nil {
			return nil, errors.Catalog("model "+block.Key, err)
		}
		models = append(models, model)
	}
	return models, nil
}

func loadJSON(path string) ([]pricing.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Catalog("reading rate card", err)
	}

	var models []pricing.Model
	if err := json.Unmarshal(data, &models); err != nil {
		return nil, errors.Catalog("parsing rate card", err)
	}

	for _, model := range models {
		if err := pricing.CheckModel(model); err != nil {
			return nil, errors.Catalog("model "+model.Key, err)
		}
	}
	return models, nil
}

// toModel converts an HCL block into a pricing model
func (b modelBlock) toModel() (pricing.Model, error) {
	price := decimal.Zero
	if b.Price != "" {
		var err error
		price, err = decimal.NewFromString(b.Price)
		if err != nil {
			return pricing.Model{}, errors.Catalog("model "+b.Key+": invalid price", err)
		}
	}
	if b.MinUnits < 0 {
		return pricing.Model{}, errors.Catalog("model "+b.Key+": negative min_units", nil)
	}

	var discounts []pricing.DiscountTier
	for _, t := range b.DiscountRates {
		count, percent, err := checkTier(b.Key, t)
		if err != nil {
			return pricing.Model{}, err
		}
		discounts = append(discounts, pricing.DiscountTier{Count: count, DiscountPercent: percent})
	}

	var prepaid []pricing.PrepaidTier
	for _, t := range b.PrepaidTiers {
		count, percent, err := checkTier(b.Key, t)
		if err != nil {
			return pricing.Model{}, err
		}
		prepaid = append(prepaid, pricing.PrepaidTier{Count: count, DiscountPercent: percent})
	}

	return pricing.Model{
		Type:          pricing.ModelType(b.Type),
		Key:           b.Key,
		Price:         price,
		MinUnits:      uint64(b.MinUnits),
		DiscountRates: discounts,
		PrePaidTiers:  prepaid,
		Domains:       b.Domains,
		Coverage:      b.Coverage,
		Consumers:     b.Consumers,
	}, nil
}

// checkTier rejects tier values outside the unsigned ranges before the
// catalog sees them
func checkTier(key string, t tierBlock) (uint64, uint8, error) {
	if t.Count < 0 {
		return 0, 0, errors.Catalog("model "+key+": negative tier count", nil)
	}
	if t.Percent < 0 || t.Percent > 100 {
		return 0, 0, errors.Catalog("model "+key+": tier percent outside [0,100]", nil)
	}
	return uint64(t.Count), uint8(t.Percent), nil
}
