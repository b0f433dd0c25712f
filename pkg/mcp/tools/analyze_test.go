package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/queryscribe/queryscribe/pkg/audit"
	"github.com/queryscribe/queryscribe/pkg/config"
	"github.com/queryscribe/queryscribe/pkg/models"
)

// mockAnalysisService records requests and returns a canned result.
type mockAnalysisService struct {
	result   *models.AnalysisResult
	requests []*models.AnalysisRequest
}

func (m *mockAnalysisService) Analyze(ctx context.Context, req *models.AnalysisRequest) *models.AnalysisResult {
	m.requests = append(m.requests, req)
	if m.result != nil {
		return m.result
	}
	return &models.AnalysisResult{Success: true}
}

// testRegistrar routes RegisterTool onto a bare MCPServer so tool calls
// can be driven through HandleMessage.
type testRegistrar struct {
	mcp *server.MCPServer
}

func (r *testRegistrar) RegisterTool(tool mcp.Tool, handler server.ToolHandlerFunc) {
	r.mcp.AddTool(tool, handler)
}

func testConfig() *config.Config {
	return &config.Config{
		LLM: config.LLMConfig{
			DefaultEndpoint: models.DefaultLLMEndpoint,
			DefaultModel:    models.DefaultLLMModel,
		},
	}
}

func newTestServer(svc *mockAnalysisService, auditor *audit.SecurityAuditor) *server.MCPServer {
	mcpServer := server.NewMCPServer("queryscribe-test", "1.0.0",
		server.WithToolCapabilities(true))
	RegisterAnalyzeTools(&testRegistrar{mcp: mcpServer}, &AnalyzeToolDeps{
		Config:  testConfig(),
		Service: svc,
		Auditor: auditor,
		Logger:  zap.NewNop(),
	})
	return mcpServer
}

func callAnalyze(t *testing.T, s *server.MCPServer, question string) string {
	t.Helper()

	args, err := json.Marshal(map[string]string{
		"connection_string": "postgres://localhost/shop",
		"question":          question,
	})
	require.NoError(t, err)

	msg := fmt.Sprintf(
		`{"jsonrpc":"2.0","method":"tools/call","params":{"name":"analyze_database","arguments":%s},"id":1}`,
		args)
	resp := s.HandleMessage(context.Background(), []byte(msg))
	data, err := json.Marshal(resp)
	require.NoError(t, err)
	return string(data)
}

func TestRegisterAnalyzeTools_ListsTool(t *testing.T) {
	s := newTestServer(&mockAnalysisService{}, audit.NewSecurityAuditor(zap.NewNop()))

	resp := s.HandleMessage(context.Background(),
		[]byte(`{"jsonrpc":"2.0","method":"tools/list","id":1}`))
	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"analyze_database"`)
}

func TestAnalyzeDatabaseTool_Success(t *testing.T) {
	svc := &mockAnalysisService{
		result: &models.AnalysisResult{
			Success:   true,
			SQLQuery:  "SELECT COUNT(*) AS n FROM orders",
			Narrative: "There are 4 orders.",
		},
	}
	s := newTestServer(svc, audit.NewSecurityAuditor(zap.NewNop()))

	out := callAnalyze(t, s, "How many orders?")
	assert.Contains(t, out, "There are 4 orders.")

	require.Len(t, svc.requests, 1)
	assert.Equal(t, models.DefaultLLMEndpoint, svc.requests[0].LLMEndpoint)
	assert.Equal(t, models.DefaultLLMModel, svc.requests[0].Model)
}

func TestAnalyzeDatabaseTool_EmptyQuestion(t *testing.T) {
	svc := &mockAnalysisService{}
	s := newTestServer(svc, audit.NewSecurityAuditor(zap.NewNop()))

	out := callAnalyze(t, s, "   ")
	assert.Contains(t, out, "question parameter cannot be empty")
	assert.Empty(t, svc.requests)
}

func TestAnalyzeDatabaseTool_InjectionAuditedAndProcessed(t *testing.T) {
	// A suspicious question is audited under the analysis ID but the
	// pipeline still runs, same as the HTTP boundary.
	core, observed := observer.New(zapcore.WarnLevel)
	svc := &mockAnalysisService{}
	s := newTestServer(svc, audit.NewSecurityAuditor(zap.New(core)))

	callAnalyze(t, s, "' OR 1=1 --")

	require.Len(t, svc.requests, 1, "injection hits are audited, not rejected")

	entries := observed.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Contains(t, fields["event_json"], "sql_injection_attempt")
	assert.Equal(t, svc.requests[0].AnalysisID.String(), fields["analysis_id"])
}

func TestAnalyzeDatabaseTool_CleanQuestionNotAudited(t *testing.T) {
	core, observed := observer.New(zapcore.WarnLevel)
	svc := &mockAnalysisService{}
	s := newTestServer(svc, audit.NewSecurityAuditor(zap.New(core)))

	callAnalyze(t, s, "Which product sold the most units last month?")

	require.Len(t, svc.requests, 1)
	assert.Empty(t, observed.All())
}
