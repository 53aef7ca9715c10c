package markets

import (
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/joefazee/iwager/internal/validator"
	"github.com/joefazee/iwager/models"
)

// triggerHandleRx matches an @-prefixed Farcaster handle.
var triggerHandleRx = regexp.MustCompile(`^@\w+$`)

// Config represents the configuration for the markets module
type Config struct {
	TriggerHandle      string          `env:"TRIGGER_HANDLE" env-default:"@watchthis"`
	IDAttempts         int             `env:"MARKET_ID_ATTEMPTS" env-default:"3"`
	FallbackConfidence float64         `env:"FALLBACK_CONFIDENCE" env-default:"0.8"`
	DefaultStake       decimal.Decimal `env:"DEFAULT_STAKE" env-default:"5"`
	RecentLimit        int             `env:"RECENT_MARKETS_LIMIT" env-default:"5"`
}

// Validate validates the market configuration
func (c *Config) Validate() error {
	if !validator.NotBlank(c.TriggerHandle) ||
		!validator.Matches(c.TriggerHandle, triggerHandleRx) ||
		!validator.MinRunes(c.TriggerHandle, 2) ||
		!validator.MaxRunes(c.TriggerHandle, 32) {
		return models.ErrInvalidTriggerHandle
	}

	if c.IDAttempts <= 0 {
		return models.ErrInvalidIDAttempts
	}

	if c.FallbackConfidence < 0 || c.FallbackConfidence > 1 {
		return models.ErrInvalidFallbackScore
	}

	if c.DefaultStake.LessThanOrEqual(decimal.Zero) {
		return models.ErrInvalidDefaultStake
	}

	return nil
}

// GetDefaultConfig returns the default configuration
func GetDefaultConfig() *Config {
	return &Config{
		TriggerHandle:      "@watchthis",
		IDAttempts:         3,
		FallbackConfidence: 0.8,
		DefaultStake:       decimal.NewFromInt(5), // 5 USDC
		RecentLimit:        5,
	}
}
