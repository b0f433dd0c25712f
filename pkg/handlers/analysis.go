package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/queryscribe/queryscribe/pkg/adapters/datasource"
	"github.com/queryscribe/queryscribe/pkg/audit"
	"github.com/queryscribe/queryscribe/pkg/config"
	"github.com/queryscribe/queryscribe/pkg/models"
	"github.com/queryscribe/queryscribe/pkg/services"
	sqltext "github.com/queryscribe/queryscribe/pkg/sql"
)

// AnalyzeRequest is the POST /api/analyze body. Endpoint and model are
// optional; the configured defaults are applied here at the boundary.
type AnalyzeRequest struct {
	ConnectionString string `json:"connection_string"`
	Prompt           string `json:"prompt"`
	LLMEndpoint      string `json:"llm_endpoint,omitempty"`
	Model            string `json:"model,omitempty"`
}

// AnalyzeResponse mirrors models.AnalysisResult on the wire.
type AnalyzeResponse struct {
	Success   bool           `json:"success"`
	SQLQuery  string         `json:"sql_query,omitempty"`
	Rows      []models.Row   `json:"rows,omitempty"`
	Narrative string         `json:"narrative,omitempty"`
	Error     string         `json:"error,omitempty"`
	Schema    *models.Schema `json:"schema,omitempty"`
}

// DatasourceTypesResponse lists the registered adapter types.
type DatasourceTypesResponse struct {
	Types []datasource.AdapterInfo `json:"types"`
}

// AnalysisHandler handles analysis HTTP requests.
type AnalysisHandler struct {
	cfg      *config.Config
	service  services.AnalysisService
	adapters datasource.AdapterFactory
	auditor  *audit.SecurityAuditor
	logger   *zap.Logger
}

// NewAnalysisHandler creates an analysis handler.
func NewAnalysisHandler(
	cfg *config.Config,
	service services.AnalysisService,
	adapters datasource.AdapterFactory,
	auditor *audit.SecurityAuditor,
	logger *zap.Logger,
) *AnalysisHandler {
	return &AnalysisHandler{
		cfg:      cfg,
		service:  service,
		adapters: adapters,
		auditor:  auditor,
		logger:   logger.Named("handlers"),
	}
}

// RegisterRoutes registers the analysis routes on the given mux.
func (h *AnalysisHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/analyze", h.Analyze)
	mux.HandleFunc("GET /api/datasource-types", h.ListDatasourceTypes)
}

// Analyze runs one analysis request through the pipeline.
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var body AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, CodeInvalidRequest, "request body is not valid JSON")
		return
	}

	// The core assumes non-empty prompt and connection string; this is
	// the boundary that guarantees it.
	if body.ConnectionString == "" {
		_ = ErrorResponse(w, http.StatusBadRequest, CodeInvalidRequest, "connection_string is required")
		return
	}
	if body.Prompt == "" {
		_ = ErrorResponse(w, http.StatusBadRequest, CodeInvalidRequest, "prompt is required")
		return
	}

	req := &models.AnalysisRequest{
		ConnectionString: body.ConnectionString,
		Prompt:           body.Prompt,
		LLMEndpoint:      body.LLMEndpoint,
		Model:            body.Model,
	}
	h.cfg.ApplyRequestDefaults(req)

	// Screen the prompt for smuggled SQL injection payloads. A hit is
	// audited under the same analysis ID the pipeline logs with, not
	// rejected; the generated SQL is still gated before execution.
	if check := sqltext.CheckTextForInjection(req.Prompt); check != nil {
		h.auditor.LogInjectionAttempt(req.AnalysisID, audit.InjectionDetails{
			Input:       check.Input,
			Fingerprint: check.Fingerprint,
		}, r.RemoteAddr)
	}

	result := h.service.Analyze(r.Context(), req)

	_ = WriteJSON(w, http.StatusOK, AnalyzeResponse{
		Success:   result.Success,
		SQLQuery:  result.SQLQuery,
		Rows:      result.Rows,
		Narrative: result.Narrative,
		Error:     result.Error,
		Schema:    result.Schema,
	})
}

// ListDatasourceTypes returns the registered adapter types.
func (h *AnalysisHandler) ListDatasourceTypes(w http.ResponseWriter, r *http.Request) {
	_ = WriteJSON(w, http.StatusOK, DatasourceTypesResponse{
		Types: h.adapters.ListTypes(),
	})
}
