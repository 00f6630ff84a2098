package probe

import (
	"time"

	"imagegecko-probe/internal/common/config"
)

// Config is everything one probe run needs.
type Config struct {
	Endpoint  string
	ImagePath string
	Timeout   time.Duration
	UserAgent string
	DryRun    bool
	Payload   PayloadConfig
}

// PayloadConfig carries the literal, non-image request fields.
type PayloadConfig struct {
	ProductID     int
	Prompt        string
	SourceImageID int
	Categories    []int
	ProductSKU    string
}

func DefaultConfig() *Config {
	return &Config{
		Endpoint:  config.DefaultEndpoint,
		ImagePath: config.DefaultImagePath,
		Timeout:   config.GetDuration(config.DefaultTimeoutMS),
		UserAgent: config.DefaultUserAgent,
		Payload: PayloadConfig{
			ProductID:     config.DefaultProductID,
			Prompt:        config.DefaultPrompt,
			SourceImageID: config.DefaultSourceImageID,
			Categories:    config.DefaultCategories(),
			ProductSKU:    config.DefaultProductSKU,
		},
	}
}

// FromAppConfig projects the application config onto the probe.
func FromAppConfig(cfg *config.Config) *Config {
	categories := make([]int, len(cfg.Payload.Categories))
	copy(categories, cfg.Payload.Categories)

	return &Config{
		Endpoint:  cfg.Probe.Endpoint,
		ImagePath: cfg.Probe.ImagePath,
		Timeout:   config.GetDuration(cfg.Probe.Timeout),
		UserAgent: cfg.Probe.UserAgent,
		DryRun:    cfg.Probe.DryRun,
		Payload: PayloadConfig{
			ProductID:     cfg.Payload.ProductID,
			Prompt:        cfg.Payload.Prompt,
			SourceImageID: cfg.Payload.SourceImageID,
			Categories:    categories,
			ProductSKU:    cfg.Payload.ProductSKU,
		},
	}
}

// Headers returns the two fixed request headers.
func (c *Config) Headers() map[string]string {
	return map[string]string{
		"Content-Type": "application/json",
		"User-Agent":   c.UserAgent,
	}
}
