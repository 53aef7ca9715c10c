package validation

import (
	"fmt"

	"github.com/joefazee/iwager/app/markets"
	"github.com/joefazee/iwager/internal/validator"
)

// ErrorKind classifies a rule rejection
type ErrorKind string

const (
	FormatError    ErrorKind = "format_error"
	VagueError     ErrorKind = "vague_error"
	TimeframeError ErrorKind = "timeframe_error"
)

// SubjectiveTerms lists judgment words that make a prediction unresolvable.
// Detection walks the list in order and reports the first hit.
var SubjectiveTerms = []string{
	"happy",
	"successful",
	"good",
	"bad",
	"amazing",
	"terrible",
	"awesome",
	"horrible",
	"beautiful",
	"interesting",
	"popular",
	"better",
	"worse",
}

// VagueQuantityTerms lists quantity words too imprecise to settle a market.
var VagueQuantityTerms = []string{
	"many",
	"few",
	"around",
	"approximately",
	"some",
	"several",
	"lots",
	"roughly",
	"a lot",
}

// RuleVerdict is the outcome of the deterministic rule pass
type RuleVerdict struct {
	Valid   bool
	Kind    ErrorKind
	Message string
}

func ruleFail(kind ErrorKind, message string) RuleVerdict {
	return RuleVerdict{Kind: kind, Message: message}
}

// ValidateRules applies the deterministic checks in a fixed order,
// short-circuiting on the first failure. It is pure: every input yields
// exactly one verdict and nothing escapes.
func ValidateRules(text, triggerHandle string) RuleVerdict {
	if !validator.ContainsFold(text, triggerHandle) {
		return ruleFail(FormatError, fmt.Sprintf("Prediction must mention %s", triggerHandle))
	}

	if term, found := validator.ContainsAnyFold(text, SubjectiveTerms); found {
		return ruleFail(VagueError, fmt.Sprintf("Prediction is too subjective to resolve (%q). Use a measurable outcome.", term))
	}

	if term, found := validator.ContainsAnyFold(text, VagueQuantityTerms); found {
		return ruleFail(VagueError, fmt.Sprintf("Prediction uses a vague quantity (%q). Use an exact number or threshold.", term))
	}

	if validator.ContainsWordFold(text, "if") && validator.ContainsWordFold(text, "then") {
		return ruleFail(FormatError, "Conditional predictions are not supported. State a single outcome.")
	}

	if !markets.MatchesTimeframe(text) {
		return ruleFail(TimeframeError, "Prediction needs a timeframe (e.g. \"by December 31st\", \"in 24h\", \"this week\").")
	}

	return RuleVerdict{Valid: true}
}
