package llm

import (
	"fmt"

	"go.uber.org/zap"
)

// Supported providers.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Factory builds completion clients for the provider named in server
// configuration. Endpoint and model come from the analysis request, so a
// new client is built per request; clients are cheap wrappers around a
// shared HTTP transport.
type Factory struct {
	provider    string
	apiKey      string
	temperature float64
	logger      *zap.Logger
}

// NewFactory creates a completion-client factory.
// Provider defaults to openai when empty.
func NewFactory(provider, apiKey string, temperature float64, logger *zap.Logger) *Factory {
	if provider == "" {
		provider = ProviderOpenAI
	}
	return &Factory{
		provider:    provider,
		apiKey:      apiKey,
		temperature: temperature,
		logger:      logger,
	}
}

// NewClient creates a completion client for the given endpoint and model.
func (f *Factory) NewClient(endpoint, model string) (CompletionClient, error) {
	cfg := &Config{
		Endpoint:    endpoint,
		Model:       model,
		APIKey:      f.apiKey,
		Temperature: f.temperature,
	}

	switch f.provider {
	case ProviderOpenAI:
		return NewClient(cfg, f.logger)
	case ProviderAnthropic:
		return NewAnthropicClient(cfg, f.logger)
	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", f.provider)
	}
}

// Ensure Factory implements ClientFactory at compile time.
var _ ClientFactory = (*Factory)(nil)
