package casts

import (
	"context"

	"github.com/joefazee/iwager/app/validation"
)

// SemanticChecker judges prediction quality through a language model
type SemanticChecker interface {
	Validate(ctx context.Context, text string) validation.Verdict
}

// ReplyDispatcher publishes the single reply for a processed cast
type ReplyDispatcher interface {
	Dispatch(ctx context.Context, parentHash, text, marketID string) error
}

// Service defines the interface for the cast processing pipeline
type Service interface {
	ProcessCast(ctx context.Context, cast *Cast) Outcome
}
