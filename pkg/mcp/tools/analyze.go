// Package tools provides MCP tool implementations for queryscribe.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/queryscribe/queryscribe/pkg/audit"
	"github.com/queryscribe/queryscribe/pkg/config"
	"github.com/queryscribe/queryscribe/pkg/models"
	"github.com/queryscribe/queryscribe/pkg/services"
	sqltext "github.com/queryscribe/queryscribe/pkg/sql"
)

// ToolRegistrar is the registration surface tools need from the server.
type ToolRegistrar interface {
	RegisterTool(tool mcp.Tool, handler server.ToolHandlerFunc)
}

// AnalyzeToolDeps contains dependencies for the analysis tools.
type AnalyzeToolDeps struct {
	Config  *config.Config
	Service services.AnalysisService
	Auditor *audit.SecurityAuditor
	Logger  *zap.Logger
}

// RegisterAnalyzeTools registers the database analysis MCP tools.
func RegisterAnalyzeTools(r ToolRegistrar, deps *AnalyzeToolDeps) {
	registerAnalyzeDatabaseTool(r, deps)
}

// registerAnalyzeDatabaseTool adds the analyze_database tool, which runs a
// natural-language question through the full generate/execute/summarize
// pipeline against an ad-hoc database connection.
func registerAnalyzeDatabaseTool(r ToolRegistrar, deps *AnalyzeToolDeps) {
	tool := mcp.NewTool(
		"analyze_database",
		mcp.WithDescription(
			"Answer a natural-language question about a SQL database. "+
				"Generates a SQL query from the live schema, executes it, and returns "+
				"the rows together with a plain-English summary of the results. "+
				"Example: analyze_database(connection_string='postgres://...', "+
				"question='Which product sold the most units last month?').",
		),
		mcp.WithString(
			"connection_string",
			mcp.Required(),
			mcp.Description("Database connection string (PostgreSQL or SQL Server)"),
		),
		mcp.WithString(
			"question",
			mcp.Required(),
			mcp.Description("Natural-language question to answer against the database"),
		),
		mcp.WithString(
			"llm_endpoint",
			mcp.Description("LLM endpoint URL (defaults to the configured endpoint)"),
		),
		mcp.WithString(
			"model",
			mcp.Description("LLM model name (defaults to the configured model)"),
		),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)

	r.RegisterTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		connStr, err := req.RequireString("connection_string")
		if err != nil {
			return nil, err
		}
		question, err := req.RequireString("question")
		if err != nil {
			return nil, err
		}

		question = strings.TrimSpace(question)
		if question == "" {
			return mcp.NewToolResultError("question parameter cannot be empty"), nil
		}

		analysisReq := &models.AnalysisRequest{
			ConnectionString: connStr,
			Prompt:           question,
		}
		if args, ok := req.Params.Arguments.(map[string]any); ok {
			if v, ok := args["llm_endpoint"].(string); ok {
				analysisReq.LLMEndpoint = v
			}
			if v, ok := args["model"].(string); ok {
				analysisReq.Model = v
			}
		}
		deps.Config.ApplyRequestDefaults(analysisReq)

		// Same screening as the HTTP boundary: a suspicious question is
		// audited under the analysis ID but still processed.
		if check := sqltext.CheckTextForInjection(analysisReq.Prompt); check != nil {
			deps.Auditor.LogInjectionAttempt(analysisReq.AnalysisID, audit.InjectionDetails{
				Input:       check.Input,
				Fingerprint: check.Fingerprint,
			}, "")
		}

		result := deps.Service.Analyze(ctx, analysisReq)
		if !result.Success {
			deps.Logger.Warn("analysis tool call failed",
				zap.String("error", result.Error))
		}

		jsonResult, err := json.Marshal(result)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal result: %w", err)
		}

		return mcp.NewToolResultText(string(jsonResult)), nil
	})
}
