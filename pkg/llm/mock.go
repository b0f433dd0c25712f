package llm

import (
	"context"
)

// MockCompletionClient is a configurable mock for testing completion
// consumers. Set the function field to control behavior in tests.
type MockCompletionClient struct {
	// CompleteFunc is called when Complete is invoked.
	// If nil, returns empty string and nil error.
	CompleteFunc func(ctx context.Context, prompt string, systemMessage string) (string, error)

	// Model is returned by GetModel. Defaults to "mock-model".
	Model string

	// Endpoint is returned by GetEndpoint. Defaults to "http://mock-endpoint".
	Endpoint string

	// Call tracking for verification.
	CompleteCalls int
	Prompts       []string
}

// NewMockCompletionClient creates a new mock with sensible defaults.
func NewMockCompletionClient() *MockCompletionClient {
	return &MockCompletionClient{
		Model:    "mock-model",
		Endpoint: "http://mock-endpoint",
	}
}

// Complete implements CompletionClient.
func (m *MockCompletionClient) Complete(ctx context.Context, prompt string, systemMessage string) (string, error) {
	m.CompleteCalls++
	m.Prompts = append(m.Prompts, prompt)
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, prompt, systemMessage)
	}
	return "", nil
}

// GetModel implements CompletionClient.
func (m *MockCompletionClient) GetModel() string {
	if m.Model == "" {
		return "mock-model"
	}
	return m.Model
}

// GetEndpoint implements CompletionClient.
func (m *MockCompletionClient) GetEndpoint() string {
	if m.Endpoint == "" {
		return "http://mock-endpoint"
	}
	return m.Endpoint
}

// Ensure MockCompletionClient implements CompletionClient at compile time.
var _ CompletionClient = (*MockCompletionClient)(nil)

// MockClientFactory returns a fixed client from NewClient. If NewClientErr
// is set it is returned instead.
type MockClientFactory struct {
	Client       CompletionClient
	NewClientErr error

	// Call tracking.
	Endpoints []string
	Models    []string
}

// NewClient implements ClientFactory.
func (f *MockClientFactory) NewClient(endpoint, model string) (CompletionClient, error) {
	f.Endpoints = append(f.Endpoints, endpoint)
	f.Models = append(f.Models, model)
	if f.NewClientErr != nil {
		return nil, f.NewClientErr
	}
	return f.Client, nil
}

// Ensure MockClientFactory implements ClientFactory at compile time.
var _ ClientFactory = (*MockClientFactory)(nil)
