package llm

import "github.com/joefazee/iwager/models"

// Config holds the Gemini endpoint settings
type Config struct {
	APIKey      string  `env:"GEMINI_API_KEY"`
	Model       string  `env:"GEMINI_MODEL" env-default:"gemini-2.0-flash"`
	Temperature float32 `env:"GEMINI_TEMPERATURE" env-default:"0.1"`
}

// Configured reports whether an API key is present. The pipeline runs in
// degraded mode without one, so this is not a validation failure.
func (c *Config) Configured() bool {
	return c.APIKey != ""
}

// Validate checks the settings needed to construct a live completer
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return models.ErrLLMKeyNotConfigured
	}
	return nil
}
