package casts

import (
	"strings"

	"github.com/joefazee/iwager/internal/validator"
	"github.com/joefazee/iwager/models"
)

// Config represents the configuration for the casts module
type Config struct {
	AppURL string `env:"APP_URL" env-default:"http://localhost:8080"`
}

// Validate validates the casts configuration
func (c *Config) Validate() error {
	if !validator.NotBlank(c.AppURL) {
		return models.ErrInvalidAppURL
	}
	if !strings.HasPrefix(c.AppURL, "http://") && !strings.HasPrefix(c.AppURL, "https://") {
		return models.ErrInvalidAppURL
	}
	return nil
}

// GetDefaultConfig returns the default configuration
func GetDefaultConfig() *Config {
	return &Config{
		AppURL: "http://localhost:8080",
	}
}
