// Package services contains the analysis pipeline: the orchestrator that
// sequences connectivity probe, schema introspection, query generation,
// execution, and result summarization, and the summarizer it delegates to.
package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/queryscribe/queryscribe/pkg/adapters/datasource"
	"github.com/queryscribe/queryscribe/pkg/apperrors"
	"github.com/queryscribe/queryscribe/pkg/llm"
	"github.com/queryscribe/queryscribe/pkg/logging"
	"github.com/queryscribe/queryscribe/pkg/models"
	"github.com/queryscribe/queryscribe/pkg/prompts"
	sqltext "github.com/queryscribe/queryscribe/pkg/sql"
)

// AnalysisService runs one complete analysis per call. Every request is
// an independent task with no shared mutable state; schema, prompts and
// results are all request-scoped.
type AnalysisService interface {
	// Analyze answers a natural-language question against the database
	// the request points at. It never returns an error: every failure is
	// captured in the result's Error field.
	Analyze(ctx context.Context, req *models.AnalysisRequest) *models.AnalysisResult
}

type analysisService struct {
	adapters   datasource.AdapterFactory
	llmFactory llm.ClientFactory
	summarizer *Summarizer
	rowLimit   int
	logger     *zap.Logger
}

// NewAnalysisService creates the analysis orchestrator. rowLimit bounds
// collected result rows; <= 0 uses datasource.MaxQueryLimit.
func NewAnalysisService(
	adapters datasource.AdapterFactory,
	llmFactory llm.ClientFactory,
	summarizer *Summarizer,
	rowLimit int,
	logger *zap.Logger,
) AnalysisService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &analysisService{
		adapters:   adapters,
		llmFactory: llmFactory,
		summarizer: summarizer,
		rowLimit:   rowLimit,
		logger:     logger.Named("analysis"),
	}
}

var _ AnalysisService = (*analysisService)(nil)

// Analyze sequences the pipeline. Fields assigned before a failure stay
// populated, so a failed result can still carry the schema it fetched.
func (s *analysisService) Analyze(ctx context.Context, req *models.AnalysisRequest) *models.AnalysisResult {
	result := &models.AnalysisResult{}

	// The boundary assigns the analysis ID; fall back for callers that
	// construct requests directly.
	analysisID := req.AnalysisID
	if analysisID == uuid.Nil {
		analysisID = uuid.New()
	}

	log := s.logger.With(zap.String("analysis_id", analysisID.String()))
	log.Info("analysis started",
		zap.String("connection", logging.SanitizeConnectionString(req.ConnectionString)),
		zap.String("model", req.Model))

	// Connectivity probe. Any failure here is terminal with the fixed
	// message; no later step runs and the completion service is never
	// invoked.
	adapter, err := s.adapters.NewAdapter(ctx, req.ConnectionString)
	if err != nil {
		log.Warn("adapter construction failed", zap.String("error", logging.SanitizeError(err)))
		return result.Fail(apperrors.ErrConnectionFailed.Error())
	}
	defer func() {
		if err := adapter.Close(); err != nil {
			log.Warn("adapter close failed", zap.String("error", logging.SanitizeError(err)))
		}
	}()

	if err := adapter.TestConnection(ctx); err != nil {
		log.Warn("connectivity probe failed", zap.String("error", logging.SanitizeError(err)))
		return result.Fail(apperrors.ErrConnectionFailed.Error())
	}

	schema, err := adapter.ExtractSchema(ctx)
	if err != nil {
		log.Error("schema introspection failed", zap.String("error", logging.SanitizeError(err)))
		return result.Fail(logging.SanitizeError(err))
	}
	result.Schema = schema
	log.Info("schema fetched",
		zap.Int("tables", schema.TableCount()),
		zap.Int("columns", schema.ColumnCount()))

	client, err := s.llmFactory.NewClient(req.LLMEndpoint, req.Model)
	if err != nil {
		log.Error("llm client construction failed", zap.Error(err))
		return result.Fail(err.Error())
	}

	query, err := s.generateQuery(ctx, client, schema, req.Prompt, log)
	if err != nil {
		log.Error("query generation failed", zap.Error(err))
		return result.Fail(err.Error())
	}
	result.SQLQuery = query

	normalized, err := sqltext.Normalize(query)
	if err != nil {
		log.Warn("generated query rejected", zap.Error(err))
		return result.Fail(err.Error())
	}

	rows, err := adapter.Query(ctx, normalized, s.rowLimit)
	if err != nil {
		log.Error("query execution failed", zap.String("error", logging.SanitizeError(err)))
		return result.Fail(logging.SanitizeError(err))
	}
	result.Rows = rows
	log.Info("query executed", zap.Int("rows", len(rows)))

	narrative, err := s.summarizer.Summarize(ctx, client, req.Prompt, query, rows)
	if err != nil {
		log.Error("summarization failed", zap.Error(err))
		return result.Fail(err.Error())
	}
	result.Narrative = narrative
	result.Success = true

	log.Info("analysis completed")
	return result
}

// generateQuery runs the two-state generation protocol: first attempt
// gated by the acceptance check, then exactly one stricter retry. The
// retry's cleaned output is used unconditionally; there is no second
// validation gate, so SQL that is still malformed surfaces later as an
// execution failure rather than a generation failure.
func (s *analysisService) generateQuery(ctx context.Context, client llm.CompletionClient, schema *models.Schema, question string, log *zap.Logger) (string, error) {
	schemaText := prompts.DescribeSchema(schema)

	raw, err := client.Complete(ctx, prompts.BuildGenerationPrompt(schemaText, question), prompts.GenerationSystemMessage)
	if err != nil {
		return "", err
	}

	cleaned := sqltext.Clean(raw)
	if sqltext.IsAcceptable(cleaned) {
		return cleaned, nil
	}

	log.Warn("completion failed acceptance check, retrying once",
		zap.Int("response_len", len(raw)))

	raw, err = client.Complete(ctx, prompts.BuildRetryPrompt(schemaText, question), prompts.RetrySystemMessage)
	if err != nil {
		return "", err
	}

	return sqltext.Clean(raw), nil
}
