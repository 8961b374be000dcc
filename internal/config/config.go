package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"go.opentelemetry.io/otel/attribute"
)

// Config holds all configuration for the service.
type Config struct {
	// Server
	Port     int    `envconfig:"PORT" default:"80"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Carrier validators
	UPSEnabled          bool `envconfig:"UPS_ENABLED" default:"true"`
	FedExExpressEnabled bool `envconfig:"FEDEX_EXPRESS_ENABLED" default:"true"`
	FedExGroundEnabled  bool `envconfig:"FEDEX_GROUND_ENABLED" default:"true"`
	USPSEnabled         bool `envconfig:"USPS_ENABLED" default:"true"`

	// Telemetry
	OTELEnabled  bool   `envconfig:"OTEL_ENABLED" default:"true"`
	OTELEndpoint string `envconfig:"OTEL_ENDPOINT" default:"http://jaeger-collector.claude.svc.cluster.local:4318"`
	ServiceName  string `envconfig:"SERVICE_NAME" default:"delivro-carriertrack"`
	Version      string `envconfig:"SERVICE_VERSION" default:"0.0.1"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &cfg, nil
}

// Attributes returns OpenTelemetry attributes for this configuration.
func (c *Config) Attributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("service.name", c.ServiceName),
		attribute.String("service.version", c.Version),
		attribute.Bool("ups.enabled", c.UPSEnabled),
		attribute.Bool("fedex_express.enabled", c.FedExExpressEnabled),
		attribute.Bool("fedex_ground.enabled", c.FedExGroundEnabled),
		attribute.Bool("usps.enabled", c.USPSEnabled),
	}
}
