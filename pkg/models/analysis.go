package models

import "github.com/google/uuid"

const (
	// DefaultLLMEndpoint is used when a request does not name an endpoint.
	// Ollama's default listen address; it serves an OpenAI-compatible API.
	DefaultLLMEndpoint = "http://localhost:11434"

	// DefaultLLMModel is used when a request does not name a model.
	DefaultLLMModel = "llama3"
)

// AnalysisRequest carries everything needed for one analysis run. The
// connection string is an opaque credential and must never appear in logs
// un-redacted. Prompt and ConnectionString are validated as non-empty at
// the HTTP boundary before the orchestrator sees the request.
type AnalysisRequest struct {
	// AnalysisID correlates everything one request produces: pipeline
	// logs and security audit events share it. Assigned once at the
	// boundary by ApplyDefaults.
	AnalysisID uuid.UUID

	ConnectionString string
	Prompt           string
	LLMEndpoint      string
	Model            string
}

// ApplyDefaults fills in the analysis ID, endpoint and model when absent.
// Called once at the boundary; the core never consults ambient defaults.
func (r *AnalysisRequest) ApplyDefaults() {
	if r.AnalysisID == uuid.Nil {
		r.AnalysisID = uuid.New()
	}
	if r.LLMEndpoint == "" {
		r.LLMEndpoint = DefaultLLMEndpoint
	}
	if r.Model == "" {
		r.Model = DefaultLLMModel
	}
}

// AnalysisResult is built incrementally by the orchestrator and immutable
// once returned. Exactly one of {Error non-empty, Success true with
// populated fields} holds at completion. Fields assigned before a failure
// stay populated, so a result can carry the schema even when generation
// later failed.
type AnalysisResult struct {
	Success   bool    `json:"success"`
	SQLQuery  string  `json:"sql_query,omitempty"`
	Rows      []Row   `json:"rows,omitempty"`
	Narrative string  `json:"narrative,omitempty"`
	Error     string  `json:"error,omitempty"`
	Schema    *Schema `json:"schema,omitempty"`
}

// Fail marks the result as failed with the given message and returns it.
func (r *AnalysisResult) Fail(msg string) *AnalysisResult {
	r.Success = false
	r.Error = msg
	return r
}
