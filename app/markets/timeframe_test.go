package markets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExtractTimeframe(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"hours short", "BTC hits $100k in 3h", "3h"},
		{"hours long", "resolves in 12hours", "12hours"},
		{"days", "ETH flips BTC in 2d", "2d"},
		{"today", "It will rain TODAY in NYC", "today"},
		{"tomorrow", "Launch happens Tomorrow", "tomorrow"},
		{"named date", "BTC hits $100k by December 31st", "december 31st"},
		{"named date no ordinal", "ships on march 3", "march 3"},
		{"this week", "deal closes this week", "this week"},
		{"next month", "merge lands next month", "next month"},
		{"numeric date", "settles 12/31/2026 at noon", "12/31/2026"},
		{"standard 24h", "resolves in 24h", "24h"},
		{"eoy", "SOL above $500 EOY", "eoy"},
		{"end of year", "by the End of Year", "end of year"},
		{"no match", "something will happen eventually", TimeframeUnknown},
		{"empty", "", TimeframeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractTimeframe(tt.text))
		})
	}
}

func TestMatchesTimeframe(t *testing.T) {
	assert.True(t, MatchesTimeframe("BTC above $100k by December 31st"))
	assert.True(t, MatchesTimeframe("done in 48h"))
	assert.False(t, MatchesTimeframe("BTC will go up"))
}

func TestCalculateCloseTime(t *testing.T) {
	now := time.Date(2026, time.June, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		timeframe string
		want      time.Time
	}{
		{"explicit hours", "3h", now.Add(3 * time.Hour)},
		{"hours long form", "12hours", now.Add(12 * time.Hour)},
		{"explicit days", "2d", now.Add(48 * time.Hour)},
		{"today ends at midnight", "today", time.Date(2026, time.June, 15, 23, 59, 59, 999000000, time.UTC)},
		{"tomorrow ends at midnight", "tomorrow", time.Date(2026, time.June, 16, 23, 59, 59, 999000000, time.UTC)},
		{"eoy", "eoy", time.Date(2026, time.December, 31, 23, 59, 59, 999000000, time.UTC)},
		{"end of year", "end of year", time.Date(2026, time.December, 31, 23, 59, 59, 999000000, time.UTC)},
		{"december 31st", "december 31st", time.Date(2026, time.December, 31, 23, 59, 59, 999000000, time.UTC)},
		{"week", "next week", now.Add(7 * 24 * time.Hour)},
		{"month", "this month", now.Add(30 * 24 * time.Hour)},
		{"unknown defaults to a day", TimeframeUnknown, now.Add(24 * time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateCloseTime(tt.timeframe, now))
		})
	}
}

// A "24h" close never coincides with "tomorrow": the former is an exact
// offset, the latter snaps to end of day.
func TestCalculateCloseTime_24hVersusTomorrow(t *testing.T) {
	now := time.Date(2026, time.June, 15, 10, 30, 0, 0, time.UTC)

	in24h := CalculateCloseTime("24h", now)
	tomorrow := CalculateCloseTime("tomorrow", now)

	assert.Equal(t, now.Add(24*time.Hour), in24h)
	assert.True(t, tomorrow.After(in24h))
	assert.Equal(t, 23, tomorrow.Hour())
}

func TestCalculateCloseTime_Deterministic(t *testing.T) {
	now := time.Date(2026, time.January, 2, 3, 4, 5, 0, time.UTC)
	for _, tf := range []string{"3h", "today", "eoy", "next week", TimeframeUnknown} {
		assert.Equal(t, CalculateCloseTime(tf, now), CalculateCloseTime(tf, now), tf)
	}
}
