package validation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/joefazee/iwager/internal/llm"
	"github.com/joefazee/iwager/internal/logger"
)

func newValidator(completer llm.Completer) *SemanticValidator {
	return NewSemanticValidator(completer, logger.NewNullLogger())
}

func TestSemanticValidator_Approval(t *testing.T) {
	completer := &llm.MockCompleter{}
	completer.On("Complete", mock.Anything, mock.Anything).
		Return(`{"valid": true, "confidence": 0.93, "reasoning": "objective price threshold with a deadline"}`, nil)

	v := newValidator(completer).Validate(context.Background(), "BTC hits $100k by December 31st")

	assert.True(t, v.Valid)
	assert.False(t, v.Technical())
	assert.Equal(t, 0.93, v.Confidence)
	assert.Equal(t, "objective price threshold with a deadline", v.Reasoning)
}

func TestSemanticValidator_ContentRejection(t *testing.T) {
	completer := &llm.MockCompleter{}
	completer.On("Complete", mock.Anything, mock.Anything).
		Return(`{"valid": false, "confidence": 0.2, "reasoning": "no measurable outcome", "error": "Prediction is not measurable"}`, nil)

	v := newValidator(completer).Validate(context.Background(), "things will change soon")

	assert.False(t, v.Valid)
	assert.False(t, v.Technical())
	assert.Equal(t, "Prediction is not measurable", v.Message)
}

func TestSemanticValidator_CodeFencedResponse(t *testing.T) {
	completer := &llm.MockCompleter{}
	completer.On("Complete", mock.Anything, mock.Anything).
		Return("```json\n{\"valid\": true, \"confidence\": 0.8, \"reasoning\": \"ok\"}\n```", nil)

	v := newValidator(completer).Validate(context.Background(), "ETH above $5k in 24h")

	assert.True(t, v.Valid)
	assert.Equal(t, 0.8, v.Confidence)
}

func TestSemanticValidator_TechnicalFailures(t *testing.T) {
	t.Run("no completer configured", func(t *testing.T) {
		v := newValidator(nil).Validate(context.Background(), "anything")

		assert.False(t, v.Valid)
		assert.True(t, v.Technical())
		assert.Equal(t, TechnicalNoCredential, v.ErrorTag)
		assert.Zero(t, v.Confidence)
	})

	t.Run("transport failure", func(t *testing.T) {
		completer := &llm.MockCompleter{}
		completer.On("Complete", mock.Anything, mock.Anything).
			Return("", errors.New("connection reset by peer"))

		v := newValidator(completer).Validate(context.Background(), "anything")

		assert.True(t, v.Technical())
		assert.Equal(t, TechnicalTransport, v.ErrorTag)
		assert.Contains(t, v.Reasoning, "connection reset")
	})

	t.Run("empty completion", func(t *testing.T) {
		completer := &llm.MockCompleter{}
		completer.On("Complete", mock.Anything, mock.Anything).Return("", nil)

		v := newValidator(completer).Validate(context.Background(), "anything")

		assert.True(t, v.Technical())
		assert.Equal(t, TechnicalEmptyReply, v.ErrorTag)
	})

	t.Run("unparseable completion", func(t *testing.T) {
		completer := &llm.MockCompleter{}
		completer.On("Complete", mock.Anything, mock.Anything).
			Return("I think this prediction looks great!", nil)

		v := newValidator(completer).Validate(context.Background(), "anything")

		assert.True(t, v.Technical())
		assert.Equal(t, TechnicalParse, v.ErrorTag)
	})
}

func TestSemanticValidator_ConfidenceClamped(t *testing.T) {
	completer := &llm.MockCompleter{}
	completer.On("Complete", mock.Anything, mock.Anything).
		Return(`{"valid": true, "confidence": 1.7, "reasoning": "ok"}`, nil)

	v := newValidator(completer).Validate(context.Background(), "anything")
	assert.Equal(t, 1.0, v.Confidence)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 0.93, Round2(0.9349))
	assert.Equal(t, 0.94, Round2(0.935))
	assert.Equal(t, 1.0, Round2(0.999))
	assert.Equal(t, 0.0, Round2(0.0))
}
