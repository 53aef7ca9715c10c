package markets

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewMarketID(t *testing.T) {
	id := NewMarketID()

	assert.True(t, strings.HasPrefix(id, "market_"))
	assert.Len(t, id, len("market_")+16)

	for _, r := range strings.TrimPrefix(id, "market_") {
		assert.Contains(t, "0123456789abcdef", string(r))
	}
}

func TestNewMarketID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewMarketID()
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestFallbackMarketID(t *testing.T) {
	now := time.Date(2026, time.June, 15, 10, 30, 0, 0, time.UTC)

	id := FallbackMarketID(now)
	assert.True(t, strings.HasPrefix(id, "market_"))
	assert.Len(t, id, len("market_")+20)
	assert.NotContains(t, id, "+")
	assert.NotContains(t, id, "/")
	assert.NotContains(t, id, "=")
}

// The counter keeps identifiers distinct even for an identical timestamp.
func TestFallbackMarketID_SameInstant(t *testing.T) {
	now := time.Date(2026, time.June, 15, 10, 30, 0, 0, time.UTC)

	a := FallbackMarketID(now)
	b := FallbackMarketID(now)
	assert.NotEqual(t, a, b)
}
