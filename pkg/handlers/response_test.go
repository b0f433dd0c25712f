package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	err := WriteJSON(rec, http.StatusOK, map[string]string{"status": "ok"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestErrorResponse(t *testing.T) {
	rec := httptest.NewRecorder()

	err := ErrorResponse(rec, http.StatusBadRequest, CodeInvalidRequest, "prompt is required")
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body RejectionBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, CodeInvalidRequest, body.Code)
	assert.Equal(t, "prompt is required", body.Message)
}

func TestRejectionBody_WireShape(t *testing.T) {
	data, err := json.Marshal(RejectionBody{Code: CodeInvalidRequest, Message: "bad"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"invalid_request","message":"bad"}`, string(data))
}
