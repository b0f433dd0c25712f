// Package llm provides text-completion clients for OpenAI-compatible and
// Anthropic endpoints.
package llm

import (
	"context"
)

// CompletionClient is the text-completion collaborator. One call wraps
// exactly one request and returns only the completion text; transport
// failures come back as a classified *Error wrapping the cause.
// Use this interface for dependency injection to enable mocking in tests.
type CompletionClient interface {
	// Complete generates a completion for the prompt under the given
	// system instruction.
	Complete(ctx context.Context, prompt string, systemMessage string) (string, error)

	// GetModel returns the configured model name.
	GetModel() string

	// GetEndpoint returns the configured endpoint.
	GetEndpoint() string
}

// ClientFactory creates completion clients for a given endpoint and
// model. The endpoint and model arrive with each analysis request, so
// clients are built per request rather than held as process state.
type ClientFactory interface {
	NewClient(endpoint, model string) (CompletionClient, error)
}

// Ensure implementations satisfy CompletionClient at compile time.
var (
	_ CompletionClient = (*Client)(nil)
	_ CompletionClient = (*AnthropicClient)(nil)
)
