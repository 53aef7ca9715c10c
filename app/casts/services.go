package casts

import (
	"context"
	"fmt"

	"github.com/joefazee/iwager/app/markets"
	"github.com/joefazee/iwager/app/validation"
	"github.com/joefazee/iwager/internal/logger"
)

// DegradedReasoning is stored on markets created while the model dependency
// was unavailable, so the degraded path is visible in the record itself.
const DegradedReasoning = "Auto-approved: model validation unavailable, prediction passed rule checks"

// service runs the full pipeline for one inbound cast: rule check, semantic
// check, market creation, reply dispatch.
type service struct {
	markets    markets.Service
	marketsCfg *markets.Config
	semantic   SemanticChecker
	dispatcher ReplyDispatcher
	logger     logger.Logger
}

// NewService creates the cast processing service
func NewService(
	marketSvc markets.Service,
	marketsCfg *markets.Config,
	semantic SemanticChecker,
	dispatcher ReplyDispatcher,
	l logger.Logger,
) Service {
	return &service{
		markets:    marketSvc,
		marketsCfg: marketsCfg,
		semantic:   semantic,
		dispatcher: dispatcher,
		logger:     l,
	}
}

// ProcessCast runs one cast through the pipeline and dispatches exactly one
// reply for whatever terminal outcome it reaches. Dispatch failures are
// logged inside the dispatcher and never change the outcome.
func (s *service) ProcessCast(ctx context.Context, cast *Cast) Outcome {
	outcome := s.decide(ctx, cast)

	marketID := ""
	if outcome.MarketCreated() {
		marketID = outcome.Market.MarketID
	}
	_ = s.dispatcher.Dispatch(ctx, cast.Hash, outcome.Reply, marketID)

	s.logger.Info("cast processed", logger.Fields{
		"cast_hash": cast.Hash,
		"outcome":   string(outcome.Kind),
		"market_id": marketID,
	})
	return outcome
}

func (s *service) decide(ctx context.Context, cast *Cast) Outcome {
	rule := validation.ValidateRules(cast.Text, s.marketsCfg.TriggerHandle)
	if !rule.Valid {
		return Outcome{
			Kind:     OutcomeRejectedRule,
			RuleKind: rule.Kind,
			Reason:   rule.Message,
			Reply:    "❌ " + rule.Message,
		}
	}

	verdict := s.semantic.Validate(ctx, cast.Text)

	switch {
	case verdict.Technical():
		s.logger.Info("model unavailable, creating market in degraded mode", logger.Fields{
			"cast_hash": cast.Hash,
			"cause":     verdict.ErrorTag,
		})
		return s.create(ctx, cast, s.marketsCfg.FallbackConfidence, DegradedReasoning, true)

	case !verdict.Valid:
		reason := verdict.Message
		if reason == "" {
			reason = verdict.Reasoning
		}
		return Outcome{
			Kind:   OutcomeRejectedModel,
			Reason: reason,
			Reply:  "❌ Not a valid prediction: " + reason,
		}

	default:
		return s.create(ctx, cast, validation.Round2(verdict.Confidence), verdict.Reasoning, false)
	}
}

func (s *service) create(ctx context.Context, cast *Cast, confidence float64, reasoning string, degraded bool) Outcome {
	market, err := s.markets.CreateFromCast(ctx, &markets.CreateMarketInput{
		Text:            cast.Text,
		CreatorFID:      cast.Author.FID,
		CreatorUsername: cast.Author.Username,
		ChannelID:       cast.ChannelID(),
		ChannelName:     cast.ChannelName(),
		CastHash:        cast.Hash,
		Confidence:      confidence,
		Reasoning:       reasoning,
	})
	if err != nil {
		s.logger.Error(err, logger.Fields{"cast_hash": cast.Hash})
		return Outcome{
			Kind:   OutcomeCreateFailed,
			Reason: err.Error(),
			Reply:  "⚠️ Couldn't create your market right now. Please try again later.",
		}
	}

	kind := OutcomeCreated
	reply := fmt.Sprintf("🎯 Market created!\n\"%s\"\nCloses %s. Bet YES or NO below 👇",
		market.Question, market.CloseTime.Format("Jan 2, 3:04 PM MST"))
	if degraded {
		kind = OutcomeCreatedDegraded
		reply = fmt.Sprintf("🎯 Market created (auto-approved)!\n\"%s\"\nCloses %s. Bet YES or NO below 👇",
			market.Question, market.CloseTime.Format("Jan 2, 3:04 PM MST"))
	}

	return Outcome{Kind: kind, Market: market, Reply: reply}
}
