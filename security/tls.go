package security

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
)

// TLSConfig holds the TLS settings of the HTTP transport.
type TLSConfig struct {
	// TrustAllCertificates disables server certificate verification.
	// Required by some upstream deployments; removes all protection against
	// an intercepting peer.
	TrustAllCertificates bool `yaml:"trust_all_certificates" mapstructure:"trust_all_certificates"`

	// CAFile is a PEM bundle added to the root pool, e.g. for a local proxy.
	CAFile string `yaml:"ca_file" mapstructure:"ca_file"`

	// ServerName overrides the server name used for certificate verification.
	ServerName string `yaml:"server_name" mapstructure:"server_name"`

	// MinVersion is the minimum TLS version. Defaults to TLS 1.2.
	MinVersion uint16 `yaml:"min_version" mapstructure:"min_version"`
}

// Build creates a *tls.Config from the configuration.
// Returns nil when nothing is configured so the transport keeps its defaults.
func (c *TLSConfig) Build() (*tls.Config, error) {
	if !c.IsEnabled() {
		return nil, nil
	}

	minVersion := c.MinVersion
	if minVersion == 0 {
		minVersion = tls.VersionTLS12
	}

	cfg := &tls.Config{
		InsecureSkipVerify: c.TrustAllCertificates, //nolint:gosec // explicit opt-in
		ServerName:         c.ServerName,
		MinVersion:         minVersion,
	}

	if c.CAFile != "" {
		pem, err := os.ReadFile(c.CAFile)
		if err != nil {
			return nil, fmt.Errorf("security/tls: failed to read CA file: %w", err)
		}
		pool, err := x509.SystemCertPool()
		if err != nil || pool == nil {
			pool = x509.NewCertPool()
		}
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("security/tls: failed to parse CA certificate")
		}
		cfg.RootCAs = pool
	}

	return cfg, nil
}

// Validate checks that the TLS configuration is consistent.
func (c *TLSConfig) Validate() error {
	if c == nil {
		return nil
	}
	if c.MinVersion != 0 && (c.MinVersion < tls.VersionTLS10 || c.MinVersion > tls.VersionTLS13) {
		return fmt.Errorf("security/tls: unsupported min_version 0x%04x", c.MinVersion)
	}
	return nil
}

// IsEnabled returns true if any TLS setting is configured.
func (c *TLSConfig) IsEnabled() bool {
	if c == nil {
		return false
	}
	return c.TrustAllCertificates || c.CAFile != "" || c.ServerName != "" || c.MinVersion != 0
}
