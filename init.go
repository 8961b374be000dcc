package main

import (
	"context"

	"github.com/tournevent/carriertrack/internal/config"
	"github.com/tournevent/carriertrack/internal/telemetry"
	"github.com/tournevent/carriertrack/pkg/tracknum"
	"github.com/tournevent/carriertrack/pkg/tracknum/fedex"
	"github.com/tournevent/carriertrack/pkg/tracknum/ups"
	"github.com/tournevent/carriertrack/pkg/tracknum/usps"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

func loadConfig() (*config.Config, error) {
	return config.Load()
}

func initLogger(level string) (*otelzap.Logger, error) {
	return telemetry.NewLogger(level)
}

func initTracer(ctx context.Context, cfg *config.Config) (func(context.Context) error, error) {
	if !cfg.OTELEnabled {
		return func(context.Context) error { return nil }, nil
	}

	_, shutdown, err := telemetry.InitTracer(ctx, cfg.OTELEndpoint, cfg.ServiceName, cfg.Version)
	return shutdown, err
}

// initValidatorRegistry registers the enabled validators in dispatch priority
// order: UPS, then FedEx Express, FedEx Ground, USPS.
func initValidatorRegistry(cfg *config.Config) *tracknum.Registry {
	registry := tracknum.NewRegistry()

	if cfg.UPSEnabled {
		registry.Register(ups.New())
	}
	if cfg.FedExExpressEnabled {
		registry.Register(fedex.NewExpress())
	}
	if cfg.FedExGroundEnabled {
		registry.Register(fedex.NewGround())
	}
	if cfg.USPSEnabled {
		registry.Register(usps.New())
	}

	return registry
}
