// Package llm wraps the language-model completion endpoint behind a small
// interface so callers can substitute a fake in tests.
package llm

import "context"

// Completer issues a single-turn completion for a prompt and returns the raw
// model text. Implementations must honor ctx cancellation and deadlines.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
