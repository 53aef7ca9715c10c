package frames

import (
	"strings"
	"time"

	"github.com/joefazee/iwager/internal/validator"
	"github.com/joefazee/iwager/models"
)

// Config represents the configuration for the frames module
type Config struct {
	AppURL        string        `env:"APP_URL" env-default:"http://localhost:8080"`
	TriggerHandle string        `env:"TRIGGER_HANDLE" env-default:"@watchthis"`
	MarketTTL     time.Duration `env:"FRAME_MARKET_CACHE_TTL" env-default:"1m"`
}

// Validate validates the frames configuration
func (c *Config) Validate() error {
	if !validator.NotBlank(c.AppURL) {
		return models.ErrInvalidAppURL
	}
	if !strings.HasPrefix(c.AppURL, "http://") && !strings.HasPrefix(c.AppURL, "https://") {
		return models.ErrInvalidAppURL
	}
	if !strings.HasPrefix(c.TriggerHandle, "@") {
		return models.ErrInvalidTriggerHandle
	}
	return nil
}

// GetDefaultConfig returns the default configuration
func GetDefaultConfig() *Config {
	return &Config{
		AppURL:        "http://localhost:8080",
		TriggerHandle: "@watchthis",
		MarketTTL:     time.Minute,
	}
}
