package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/queryscribe/queryscribe/pkg/models"
)

// Config holds all configuration for queryscribe.
// Configuration can come from a YAML file (config.yaml) or environment
// variables; environment variables override YAML values. Secrets (LLM API
// keys) must only come from environment variables.
type Config struct {
	// Server configuration
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"127.0.0.1"`
	Port     string `yaml:"port" env:"PORT" env-default:"8080"`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	Version  string `yaml:"-"` // Set at load time, not from config

	// LLM configuration. Endpoint and model are request-level settings;
	// these are the defaults applied at the boundary when a request
	// omits them.
	LLM LLMConfig `yaml:"llm"`

	// Analysis pipeline settings
	Analysis AnalysisConfig `yaml:"analysis"`
}

// LLMConfig holds completion-service settings.
type LLMConfig struct {
	// Provider selects the client implementation: "openai" (any
	// OpenAI-compatible endpoint, including Ollama) or "anthropic".
	Provider string `yaml:"provider" env:"LLM_PROVIDER" env-default:"openai"`

	// DefaultEndpoint is used when a request names no endpoint.
	DefaultEndpoint string `yaml:"default_endpoint" env:"LLM_DEFAULT_ENDPOINT" env-default:"http://localhost:11434"`

	// DefaultModel is used when a request names no model.
	DefaultModel string `yaml:"default_model" env:"LLM_DEFAULT_MODEL" env-default:"llama3"`

	// APIKey for hosted endpoints. Optional for local ones.
	APIKey string `yaml:"-" env:"LLM_API_KEY"` // Secret - not in YAML

	// Temperature for completions. Low by default: SQL generation wants
	// determinism, not creativity.
	Temperature float64 `yaml:"temperature" env:"LLM_TEMPERATURE" env-default:"0.1"`
}

// AnalysisConfig holds pipeline tuning knobs.
type AnalysisConfig struct {
	// MaxRows caps collected result rows per query.
	MaxRows int `yaml:"max_rows" env:"ANALYSIS_MAX_ROWS" env-default:"1000"`

	// SampleRows is how many rows are quoted in the summary prompt.
	SampleRows int `yaml:"sample_rows" env:"ANALYSIS_SAMPLE_ROWS" env-default:"5"`
}

// Load reads configuration from config.yaml with environment variable
// overrides. The version parameter is injected at build time. A missing
// config.yaml is not an error; env defaults cover every field.
func Load(version string) (*Config, error) {
	cfg := &Config{
		Version: version,
	}

	if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config.yaml: %w", err)
		}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	return cfg, nil
}

// ApplyRequestDefaults fills a request's endpoint and model from the
// configured defaults. Defaulting happens exactly once, here at the
// boundary; the core never consults configuration.
func (c *Config) ApplyRequestDefaults(req *models.AnalysisRequest) {
	if req.LLMEndpoint == "" {
		req.LLMEndpoint = c.LLM.DefaultEndpoint
	}
	if req.Model == "" {
		req.Model = c.LLM.DefaultModel
	}
	req.ApplyDefaults()
}
