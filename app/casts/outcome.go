package casts

import (
	"github.com/joefazee/iwager/app/validation"
	"github.com/joefazee/iwager/models"
)

// OutcomeKind is the closed set of terminal pipeline results for one cast
type OutcomeKind string

const (
	// OutcomeRejectedRule means a deterministic rule check failed.
	OutcomeRejectedRule OutcomeKind = "rejected_rule"
	// OutcomeRejectedModel means the model judged the prediction invalid.
	OutcomeRejectedModel OutcomeKind = "rejected_model"
	// OutcomeCreated means the market was created with the model's verdict.
	OutcomeCreated OutcomeKind = "created"
	// OutcomeCreatedDegraded means the model was unreachable and the market
	// was created anyway with the fallback confidence.
	OutcomeCreatedDegraded OutcomeKind = "created_degraded"
	// OutcomeCreateFailed means validation passed but persistence failed.
	OutcomeCreateFailed OutcomeKind = "create_failed"
)

// Outcome describes how the pipeline terminated for one inbound cast.
// Exactly one reply is dispatched per outcome.
type Outcome struct {
	Kind     OutcomeKind
	Market   *models.Market
	Reply    string
	RuleKind validation.ErrorKind
	Reason   string
}

// MarketCreated reports whether the outcome carries a persisted market
func (o Outcome) MarketCreated() bool {
	return o.Kind == OutcomeCreated || o.Kind == OutcomeCreatedDegraded
}
