// Package main - Entry point for the usage billing server
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"usage-billing/adapters/catalog"
	"usage-billing/api"
	"usage-billing/internal/config"
	"usage-billing/internal/logging"
)

const version = "1.0.0"

func main() {
	cfgFile := flag.String("config", "", "config file path")
	addr := flag.String("addr", "", "listen address (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.Set(cfg)

	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	listenAddr := cfg.Server.Addr
	if *addr != "" {
		listenAddr = *addr
	}

	// A configured rate card is validated at startup so malformed models
	// block activation before the first request.
	if cfg.Billing.RateCardPath != "" {
		models, err := catalog.Load(cfg.Billing.RateCardPath)
		if err != nil {
			logging.Fatal("rate card rejected", zap.String("path", cfg.Billing.RateCardPath), zap.Error(err))
		}
		logging.Info("rate card loaded",
			zap.String("path", cfg.Billing.RateCardPath),
			zap.Int("models", len(models)))
	}

	server := api.NewServer(version, cfg.Billing.DefaultCurrency)

	logging.Info("usage billing server starting",
		zap.String("version", version),
		zap.String("addr", listenAddr))

	if err := server.ListenAndServe(listenAddr); err != nil {
		logging.Fatal("server failed", zap.Error(err))
	}
}
