package validation

import (
	"context"
	"encoding/json"
	"math"
	"strings"
	"time"

	"github.com/joefazee/iwager/internal/llm"
	"github.com/joefazee/iwager/internal/logger"
)

// Technical sentinels mark verdicts caused by the model dependency failing
// rather than by the prediction's content. The lifecycle manager matches on
// these to decide between rejection and degraded-mode creation.
const (
	TechnicalNoCredential = "technical:no_credential"
	TechnicalTransport    = "technical:transport"
	TechnicalEmptyReply   = "technical:empty_completion"
	TechnicalParse        = "technical:unparseable"
)

const semanticTimeout = 15 * time.Second

// Verdict is the outcome of the model pass
type Verdict struct {
	Valid      bool
	Confidence float64
	Reasoning  string
	ErrorTag   string
	Message    string
}

// Technical reports whether the verdict signals a model-dependency failure
// instead of a content judgment.
func (v Verdict) Technical() bool {
	return strings.HasPrefix(v.ErrorTag, "technical:")
}

func technicalVerdict(tag, reasoning string) Verdict {
	return Verdict{Valid: false, Confidence: 0, Reasoning: reasoning, ErrorTag: tag}
}

const semanticPrompt = `You are judging whether a social post describes a valid prediction for a yes/no prediction market.

A valid prediction must be:
- measurable: a concrete, observable outcome
- time-bound: resolvable by a specific deadline
- specific: names the subject and the threshold
- resolvable: a neutral third party could settle it from public information
- non-subjective: no opinion or judgment words

Prediction text:
"%s"

Respond with ONLY a JSON object, no other text:
{"valid": true or false, "confidence": 0.0 to 1.0, "reasoning": "one sentence", "error": "present only when valid is false"}`

type modelResponse struct {
	Valid      bool    `json:"valid"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
	Error      string  `json:"error"`
}

// SemanticValidator asks a language model to judge prediction quality
type SemanticValidator struct {
	completer llm.Completer
	logger    logger.Logger
}

// NewSemanticValidator creates a semantic validator. A nil completer is
// allowed and yields configuration-failure verdicts, keeping the pipeline
// alive when no credential is present.
func NewSemanticValidator(completer llm.Completer, l logger.Logger) *SemanticValidator {
	return &SemanticValidator{completer: completer, logger: l}
}

// Validate requests a structured judgment for text. All failure modes come
// back as a non-valid Verdict; this method never returns an error.
func (s *SemanticValidator) Validate(ctx context.Context, text string) Verdict {
	if s.completer == nil {
		return technicalVerdict(TechnicalNoCredential, "model credential not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, semanticTimeout)
	defer cancel()

	raw, err := s.completer.Complete(ctx, strings.Replace(semanticPrompt, "%s", text, 1))
	if err != nil {
		s.logger.Error(err, logger.Fields{"stage": "semantic_validation"})
		return technicalVerdict(TechnicalTransport, err.Error())
	}

	cleaned := stripCodeFences(raw)
	if cleaned == "" {
		return technicalVerdict(TechnicalEmptyReply, "model returned an empty completion")
	}

	var resp modelResponse
	if err := json.Unmarshal([]byte(cleaned), &resp); err != nil {
		s.logger.Error(err, logger.Fields{"stage": "semantic_validation", "raw": raw})
		return technicalVerdict(TechnicalParse, err.Error())
	}

	verdict := Verdict{
		Valid:      resp.Valid,
		Confidence: clampConfidence(resp.Confidence),
		Reasoning:  resp.Reasoning,
		Message:    resp.Error,
	}
	if !resp.Valid && verdict.Message == "" {
		verdict.Message = resp.Reasoning
	}
	return verdict
}

// stripCodeFences removes a surrounding markdown code fence, which models
// add despite instructions.
func stripCodeFences(raw string) string {
	out := strings.TrimSpace(raw)
	if strings.HasPrefix(out, "```") {
		out = strings.TrimPrefix(out, "```json")
		out = strings.TrimPrefix(out, "```")
		out = strings.TrimSuffix(out, "```")
		out = strings.TrimSpace(out)
	}
	return out
}

func clampConfidence(c float64) float64 {
	return math.Max(0, math.Min(1, c))
}

// Round2 rounds a confidence score to two decimals for persistence
func Round2(c float64) float64 {
	return math.Round(c*100) / 100
}
