package markets

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/joefazee/iwager/internal/validator"
)

// TimeframeUnknown is returned when no pattern matches. Unknown timeframes
// still produce a close time (the 24h default) so creation never blocks on
// sloppy phrasing that already passed rule validation.
const TimeframeUnknown = "unknown"

// TimeframePattern pairs a descriptive name with the expression that detects
// it. The table is ordered: extraction returns the first match.
type TimeframePattern struct {
	Name   string
	Regexp *regexp.Regexp
}

const monthNames = `(?:january|february|march|april|may|june|july|august|september|october|november|december)`

// TimeframePatterns is the canonical ordered list of recognized timeframe
// expressions. The rule validator checks against the same table, so a text
// that passes validation always yields a token here.
var TimeframePatterns = []TimeframePattern{
	{"hours", regexp.MustCompile(`(?i)\b(\d+h|\d+hr|\d+hour|\d+hours)\b`)},
	{"days", regexp.MustCompile(`(?i)\b(\d+d|\d+day|\d+days)\b`)},
	{"today", regexp.MustCompile(`(?i)\btoday\b`)},
	{"tomorrow", regexp.MustCompile(`(?i)\btomorrow\b`)},
	{"named-date", regexp.MustCompile(`(?i)\b` + monthNames + `\s+\d{1,2}(st|nd|rd|th)?\b`)},
	{"by-named-date", regexp.MustCompile(`(?i)\bby\s+` + monthNames + `\s+\d{1,2}(st|nd|rd|th)?\b`)},
	{"week", regexp.MustCompile(`(?i)\b(this\s+week|next\s+week)\b`)},
	{"month", regexp.MustCompile(`(?i)\b(this\s+month|next\s+month)\b`)},
	{"numeric-date", regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{2,4}\b`)},
	{"standard", regexp.MustCompile(`(?i)\b(24h|1week|1w)\b`)},
	{"eoy", regexp.MustCompile(`(?i)\b(eoy|end\s+of\s+year)\b`)},
}

// timeframeRegexps is the bare expression list for match-only checks.
var timeframeRegexps = func() []*regexp.Regexp {
	rxs := make([]*regexp.Regexp, len(TimeframePatterns))
	for i := range TimeframePatterns {
		rxs[i] = TimeframePatterns[i].Regexp
	}
	return rxs
}()

// MatchesTimeframe reports whether text contains any recognized timeframe
// expression.
func MatchesTimeframe(text string) bool {
	return validator.MatchesAny(text, timeframeRegexps)
}

// ExtractTimeframe returns the first matching timeframe substring from text,
// lowercased, or TimeframeUnknown when nothing matches.
func ExtractTimeframe(text string) string {
	for i := range TimeframePatterns {
		if m := TimeframePatterns[i].Regexp.FindString(text); m != "" {
			return strings.ToLower(m)
		}
	}
	return TimeframeUnknown
}

var (
	hourCountRx = regexp.MustCompile(`(?i)\b(\d+)\s*(?:h|hr|hour|hours)\b`)
	dayCountRx  = regexp.MustCompile(`(?i)\b(\d+)\s*(?:d|day|days)\b`)
)

// CalculateCloseTime turns a timeframe token into a concrete close
// timestamp relative to now. The mapping is deterministic for a fixed now so
// callers inject their clock.
func CalculateCloseTime(timeframe string, now time.Time) time.Time {
	tf := strings.ToLower(timeframe)

	if m := hourCountRx.FindStringSubmatch(tf); m != nil {
		hours, _ := strconv.Atoi(m[1])
		return now.Add(time.Duration(hours) * time.Hour)
	}

	if m := dayCountRx.FindStringSubmatch(tf); m != nil {
		days, _ := strconv.Atoi(m[1])
		return now.Add(time.Duration(days) * 24 * time.Hour)
	}

	switch tf {
	case "today":
		return endOfDay(now)
	case "tomorrow":
		return endOfDay(now.AddDate(0, 0, 1))
	}

	if strings.Contains(tf, "eoy") || strings.Contains(tf, "end of year") ||
		(strings.Contains(tf, "december") && strings.Contains(tf, "31")) {
		return time.Date(now.Year(), time.December, 31, 23, 59, 59, 999000000, now.Location())
	}

	if strings.Contains(tf, "week") {
		return now.Add(7 * 24 * time.Hour)
	}
	if strings.Contains(tf, "month") {
		return now.Add(30 * 24 * time.Hour)
	}

	// Default, including TimeframeUnknown.
	return now.Add(24 * time.Hour)
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999000000, t.Location())
}
