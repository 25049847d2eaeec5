package httpclient

import (
	"fmt"
	"time"

	"github.com/kbukum/picacg/resilience"
	"github.com/kbukum/picacg/security"
)

const (
	defaultTimeout = 5 * time.Second
)

// Config configures the HTTP client.
type Config struct {
	// BaseURL is the base URL relative request paths are resolved against.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`

	// Timeout bounds each attempt. Defaults to 5s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Retry configures retrying of transient failures. Nil selects
	// resilience.DefaultRetryConfig (2 retries).
	Retry *resilience.RetryConfig `yaml:"retry" mapstructure:"retry"`

	// TLS configures the transport. Nil keeps Go's defaults.
	TLS *TLSConfig `yaml:"tls" mapstructure:"tls"`

	// RateLimit paces outgoing attempts. Nil disables pacing.
	RateLimit *resilience.RateLimiterConfig `yaml:"rate_limit" mapstructure:"rate_limit"`

	// Headers are default headers applied to all requests.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`
}

// ApplyDefaults fills in zero-value fields.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.Retry == nil {
		r := resilience.DefaultRetryConfig()
		c.Retry = &r
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("httpclient: timeout must be positive")
	}
	if c.Retry != nil && c.Retry.MaxRetries < 0 {
		return fmt.Errorf("httpclient: retry.max_retries must not be negative")
	}
	if c.RateLimit != nil && c.RateLimit.Rate < 0 {
		return fmt.Errorf("httpclient: rate_limit.rate must not be negative")
	}
	if c.TLS != nil {
		if err := c.TLS.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// TrustAllTLS returns a TLS configuration with certificate validation
// disabled. Use it only where the upstream deployment requires it.
func TrustAllTLS() *TLSConfig {
	return &security.TLSConfig{TrustAllCertificates: true}
}
