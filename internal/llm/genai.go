package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

// GeminiCompleter implements Completer using Google's Gemini API.
type GeminiCompleter struct {
	client      *genai.Client
	model       string
	temperature float32
}

// NewGeminiCompleter creates a Gemini-backed completer. Temperature is fixed
// low so verdicts lean deterministic across retries of the same text.
func NewGeminiCompleter(ctx context.Context, apiKey, model string, temperature float32) (*GeminiCompleter, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiCompleter{
		client:      client,
		model:       model,
		temperature: temperature,
	}, nil
}

// Complete sends the prompt as a single user turn and returns the raw text
// of the first candidate.
func (g *GeminiCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		Temperature: genai.Ptr(g.temperature),
	})
	if err != nil {
		return "", fmt.Errorf("gemini completion failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini returned an empty completion")
	}
	return text, nil
}
