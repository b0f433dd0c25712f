package handlers

import (
	"encoding/json"
	"net/http"
)

// Boundary rejection codes. Pipeline failures never use these: a request
// that reached the orchestrator always returns HTTP 200 with the failure
// inside AnalyzeResponse.Error, per the uniform result shape. These codes
// cover only requests the boundary refuses to forward.
const (
	CodeInvalidRequest = "invalid_request"
)

// RejectionBody is the JSON shape of a boundary rejection.
type RejectionBody struct {
	Code    string `json:"error"`
	Message string `json:"message"`
}

// ErrorResponse writes a boundary rejection and returns any encoding error.
func ErrorResponse(w http.ResponseWriter, statusCode int, code, message string) error {
	return WriteJSON(w, statusCode, RejectionBody{
		Code:    code,
		Message: message,
	})
}

// WriteJSON writes a JSON response and returns any encoding error.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}
