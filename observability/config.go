package observability

import (
	"fmt"
	"time"
)

// Config configures export of traces and metrics.
type Config struct {
	// Enabled turns on the OTLP exporters. Disabled leaves the global
	// no-op providers in place.
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
	// Endpoint is the OTLP HTTP collector host:port.
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`
	// Insecure sends over plain HTTP.
	Insecure bool `yaml:"insecure" mapstructure:"insecure"`
	// SampleRate is the trace sampling ratio in [0, 1].
	SampleRate float64 `yaml:"sample_rate" mapstructure:"sample_rate"`
	// ExportInterval is the metric export period.
	ExportInterval time.Duration `yaml:"export_interval" mapstructure:"export_interval"`
	// Environment is attached to the resource.
	Environment string `yaml:"environment" mapstructure:"environment"`
}

// ApplyDefaults fills zero values.
func (c *Config) ApplyDefaults() {
	if c.Endpoint == "" {
		c.Endpoint = "localhost:4318"
	}
	if c.SampleRate == 0 {
		c.SampleRate = 1.0
	}
	if c.ExportInterval == 0 {
		c.ExportInterval = 15 * time.Second
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
}

// Validate checks the configuration after defaults were applied.
func (c *Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.SampleRate < 0 || c.SampleRate > 1 {
		return fmt.Errorf("telemetry.sample_rate must be within [0, 1] (got: %v)", c.SampleRate)
	}
	if c.ExportInterval < 0 {
		return fmt.Errorf("telemetry.export_interval must not be negative")
	}
	return nil
}
