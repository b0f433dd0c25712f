package handlers

import (
	"net/http"

	"github.com/queryscribe/queryscribe/pkg/config"
)

// HealthHandler serves liveness checks.
type HealthHandler struct {
	cfg *config.Config
}

// NewHealthHandler creates a health handler.
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// RegisterRoutes registers the health endpoint on the given mux.
func (h *HealthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/health", h.Health)
}

// Health reports service status and version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	_ = WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": h.cfg.Version,
	})
}
