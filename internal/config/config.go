// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"

	"usage-billing/core/types"
	"usage-billing/internal/errors"
	"usage-billing/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version" env:"-"`

	// Server contains HTTP server settings
	Server ServerConfig `json:"server"`

	// Billing contains quotation defaults
	Billing BillingConfig `json:"billing"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr" env:"BILLING_ADDR"`
}

// BillingConfig contains quotation defaults applied when a request
// leaves a field unset
type BillingConfig struct {
	// DefaultCurrency is the currency used when a request names none
	DefaultCurrency types.Currency `json:"default_currency" env:"BILLING_CURRENCY"`

	// DefaultTaxPercent is the tax rate used when a request names none.
	// Tax rule resolution itself lives upstream.
	DefaultTaxPercent string `json:"default_tax_percent" env:"BILLING_TAX_PERCENT"`

	// RateCardPath is an optional HCL/JSON rate-card file preloaded at
	// startup
	RateCardPath string `json:"rate_card_path" env:"BILLING_RATE_CARD"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Server: ServerConfig{
			Addr: ":8080",
		},
		Billing: BillingConfig{
			DefaultCurrency:   types.CurrencyEUR,
			DefaultTaxPercent: "0",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file, then applies environment
// variable overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	config := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, config); err != nil {
			return nil, errors.Config("parsing config file", err)
		}
	case os.IsNotExist(err):
		// defaults
	default:
		return nil, errors.Config("reading config file", err)
	}

	if err := env.Parse(config); err != nil {
		return nil, errors.Config("parsing environment overrides", err)
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
