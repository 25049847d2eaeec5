package picacg

import (
	"fmt"

	"github.com/kbukum/picacg/httpclient"
	"github.com/kbukum/picacg/logger"
	"github.com/kbukum/picacg/signer"
	"github.com/kbukum/picacg/validation"
)

// DefaultBaseURL is the API host.
const DefaultBaseURL = "https://picaapi.picacomic.com"

// Config configures a Client.
type Config struct {
	// HTTP configures the transport. HTTP.BaseURL defaults to DefaultBaseURL.
	HTTP httpclient.Config `yaml:"http" mapstructure:"http"`

	// Credentials are the signing secrets. Empty fields use the defaults.
	Credentials signer.Credentials `yaml:"credentials" mapstructure:"credentials"`

	// App is the client metadata sent with every request.
	App signer.AppInfo `yaml:"app" mapstructure:"app"`

	// Logging configures the client logger when none is supplied.
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`

	// DataDir holds the persisted settings file.
	DataDir string `yaml:"data_dir" mapstructure:"data_dir"`
}

// ApplyDefaults fills in zero-value fields.
func (c *Config) ApplyDefaults() {
	if c.HTTP.BaseURL == "" {
		c.HTTP.BaseURL = DefaultBaseURL
	}
	c.HTTP.ApplyDefaults()

	d := signer.DefaultCredentials()
	if c.Credentials.APIKey == "" {
		c.Credentials.APIKey = d.APIKey
	}
	if c.Credentials.Nonce == "" {
		c.Credentials.Nonce = d.Nonce
	}
	if c.Credentials.DigestKey == "" {
		c.Credentials.DigestKey = d.DigestKey
	}
	c.App.ApplyDefaults()
	c.Logging.ApplyDefaults()
	if c.DataDir == "" {
		c.DataDir = "."
	}
}

// Validate checks the configuration after defaults were applied.
func (c *Config) Validate() error {
	if err := c.HTTP.Validate(); err != nil {
		return fmt.Errorf("picacg.http: %w", err)
	}
	if err := validation.Validate(c.Credentials); err != nil {
		return fmt.Errorf("picacg.credentials: %w", err)
	}
	if err := validation.Validate(c.App); err != nil {
		return fmt.Errorf("picacg.app: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("picacg.logging: %w", err)
	}
	return nil
}
