// internal/common/config/config.go
package config

import (
	"fmt"
	"time"

	"imagegecko-probe/internal/common/errors"
	"imagegecko-probe/internal/common/validation"
)

// Defaults are the fixed values of the diagnostic run.
const (
	DefaultEndpoint  = "https://dev.api.contentgecko.io/product-image"
	DefaultImagePath = "/Users/ristorehemagi/Local Documents/ImageGecko/prillipilt.jpg"
	DefaultTimeoutMS = 30000
	DefaultUserAgent = "ImageGecko-Plugin-Test/1.0"

	DefaultProductID     = 123
	DefaultPrompt        = "Studio lit model photo with professional lighting and clean background"
	DefaultSourceImageID = 456
	DefaultProductSKU    = "TEST-SKU-123"
)

// DefaultCategories is a function so callers never share the slice.
func DefaultCategories() []int {
	return []int{1, 2}
}

// Config is the main application configuration struct.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Probe   ProbeConfig   `mapstructure:"probe"`
	Payload PayloadConfig `mapstructure:"payload"`
	Logging LoggingConfig `mapstructure:"logging"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// ProbeConfig describes the single request the probe sends.
type ProbeConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	ImagePath string `mapstructure:"image_path"`
	Timeout   int    `mapstructure:"timeout"` // milliseconds
	UserAgent string `mapstructure:"user_agent"`
	DryRun    bool   `mapstructure:"dry_run"`
}

// PayloadConfig holds the literal request fields.
type PayloadConfig struct {
	ProductID     int    `mapstructure:"product_id"`
	Prompt        string `mapstructure:"prompt"`
	SourceImageID int    `mapstructure:"source_image_id"`
	Categories    []int  `mapstructure:"categories"`
	ProductSKU    string `mapstructure:"product_sku"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// MetricsConfig controls the optional textfile dump written at exit.
type MetricsConfig struct {
	File string `mapstructure:"file"`
}

// Validate checks the fields the probe cannot run without.
func (c *Config) Validate() error {
	if c.Probe.Endpoint == "" {
		return errors.NewInvalidConfigurationError("probe.endpoint", "endpoint is required")
	}
	if !validation.ValidateURL(c.Probe.Endpoint) {
		return errors.NewInvalidConfigurationError("probe.endpoint",
			fmt.Sprintf("endpoint must be an http(s) URL, got %q", c.Probe.Endpoint))
	}
	if c.Probe.ImagePath == "" {
		return errors.NewInvalidConfigurationError("probe.image_path", "image path is required")
	}
	if c.Probe.Timeout <= 0 {
		return errors.NewInvalidConfigurationError("probe.timeout",
			fmt.Sprintf("timeout must be positive, got %dms", c.Probe.Timeout))
	}
	return nil
}

// GetDuration converts milliseconds from config to time.Duration
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}
