// ABOUTME: LLMClient interface abstracts hosted text-generation providers
// ABOUTME: The summarizer consumes this capability, never a concrete SDK

package interfaces

import "context"

// LLMClient is the capability contract for a hosted text-generation API:
// given a system instruction and a user message, return generated text.
// Implementations wrap provider SDKs (OpenAI, Anthropic, Perplexity).
type LLMClient interface {
	// Complete sends one prompt pair and returns the generated text.
	// Implementations perform at most one retry on transient failures.
	Complete(ctx context.Context, system, user string) (string, error)

	// Model returns the identifier of the underlying model, for logging
	// and report attribution.
	Model() string
}
