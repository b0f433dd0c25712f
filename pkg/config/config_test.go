package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/queryscribe/queryscribe/pkg/models"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("1.0.0")
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", cfg.Version)
	assert.Equal(t, "127.0.0.1", cfg.BindAddr)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, models.DefaultLLMEndpoint, cfg.LLM.DefaultEndpoint)
	assert.Equal(t, models.DefaultLLMModel, cfg.LLM.DefaultModel)
	assert.Equal(t, 1000, cfg.Analysis.MaxRows)
	assert.Equal(t, 5, cfg.Analysis.SampleRows)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LLM_PROVIDER", "anthropic")
	t.Setenv("LLM_API_KEY", "sk-from-env")
	t.Setenv("ANALYSIS_MAX_ROWS", "250")

	cfg, err := Load("dev")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "anthropic", cfg.LLM.Provider)
	assert.Equal(t, "sk-from-env", cfg.LLM.APIKey)
	assert.Equal(t, 250, cfg.Analysis.MaxRows)
}

func TestApplyRequestDefaults(t *testing.T) {
	cfg := &Config{
		LLM: LLMConfig{
			DefaultEndpoint: "http://gpu-box:11434",
			DefaultModel:    "mistral",
		},
	}

	t.Run("fills empty fields", func(t *testing.T) {
		req := &models.AnalysisRequest{ConnectionString: "x", Prompt: "y"}
		cfg.ApplyRequestDefaults(req)
		assert.Equal(t, "http://gpu-box:11434", req.LLMEndpoint)
		assert.Equal(t, "mistral", req.Model)
	})

	t.Run("keeps explicit fields", func(t *testing.T) {
		req := &models.AnalysisRequest{LLMEndpoint: "http://other:8000", Model: "phi3"}
		cfg.ApplyRequestDefaults(req)
		assert.Equal(t, "http://other:8000", req.LLMEndpoint)
		assert.Equal(t, "phi3", req.Model)
	})

	t.Run("built-in fallbacks with empty config", func(t *testing.T) {
		empty := &Config{}
		req := &models.AnalysisRequest{}
		empty.ApplyRequestDefaults(req)
		assert.Equal(t, models.DefaultLLMEndpoint, req.LLMEndpoint)
		assert.Equal(t, models.DefaultLLMModel, req.Model)
	})
}
