package markets

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/joefazee/iwager/models"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"defaults are valid", func(_ *Config) {}, nil},
		{"blank handle", func(c *Config) { c.TriggerHandle = "   " }, models.ErrInvalidTriggerHandle},
		{"handle without @", func(c *Config) { c.TriggerHandle = "watchthis" }, models.ErrInvalidTriggerHandle},
		{"handle with spaces", func(c *Config) { c.TriggerHandle = "@watch this" }, models.ErrInvalidTriggerHandle},
		{"bare @", func(c *Config) { c.TriggerHandle = "@" }, models.ErrInvalidTriggerHandle},
		{"handle too long", func(c *Config) { c.TriggerHandle = "@" + strings.Repeat("a", 40) }, models.ErrInvalidTriggerHandle},
		{"zero attempts", func(c *Config) { c.IDAttempts = 0 }, models.ErrInvalidIDAttempts},
		{"fallback confidence above 1", func(c *Config) { c.FallbackConfidence = 1.5 }, models.ErrInvalidFallbackScore},
		{"zero default stake", func(c *Config) { c.DefaultStake = decimal.Zero }, models.ErrInvalidDefaultStake},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
