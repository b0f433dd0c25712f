package main

import (
	"log"
	"net"
	"net/http"

	"go.uber.org/zap"

	"github.com/queryscribe/queryscribe/pkg/audit"
	"github.com/queryscribe/queryscribe/pkg/config"
	"github.com/queryscribe/queryscribe/pkg/handlers"
	"github.com/queryscribe/queryscribe/pkg/llm"
	"github.com/queryscribe/queryscribe/pkg/mcp"
	"github.com/queryscribe/queryscribe/pkg/mcp/tools"
	"github.com/queryscribe/queryscribe/pkg/services"

	"github.com/queryscribe/queryscribe/pkg/adapters/datasource"
	_ "github.com/queryscribe/queryscribe/pkg/adapters/datasource/mssql"
	_ "github.com/queryscribe/queryscribe/pkg/adapters/datasource/postgres"
	"github.com/queryscribe/queryscribe/pkg/logging"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.NewLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("configuration loaded",
		zap.String("env", cfg.Env),
		zap.String("llm_provider", cfg.LLM.Provider),
		zap.String("llm_default_endpoint", cfg.LLM.DefaultEndpoint),
		zap.String("llm_default_model", cfg.LLM.DefaultModel),
		zap.Int("analysis_max_rows", cfg.Analysis.MaxRows))

	adapterFactory := datasource.NewAdapterFactory(logger)
	llmFactory := llm.NewFactory(cfg.LLM.Provider, cfg.LLM.APIKey, cfg.LLM.Temperature, logger)
	summarizer := services.NewSummarizer(cfg.Analysis.SampleRows, logger)
	analysisService := services.NewAnalysisService(adapterFactory, llmFactory, summarizer, cfg.Analysis.MaxRows, logger)
	auditor := audit.NewSecurityAuditor(logger)

	mux := http.NewServeMux()

	healthHandler := handlers.NewHealthHandler(cfg)
	healthHandler.RegisterRoutes(mux)

	analysisHandler := handlers.NewAnalysisHandler(cfg, analysisService, adapterFactory, auditor, logger)
	analysisHandler.RegisterRoutes(mux)

	mcpServer := mcp.NewServer("queryscribe", cfg.Version, logger)
	tools.RegisterAnalyzeTools(mcpServer, &tools.AnalyzeToolDeps{
		Config:  cfg,
		Service: analysisService,
		Auditor: auditor,
		Logger:  logger,
	})
	mcpHandler := handlers.NewMCPHandler(mcpServer, logger)
	mcpHandler.RegisterRoutes(mux)

	addr := net.JoinHostPort(cfg.BindAddr, cfg.Port)
	logger.Info("starting queryscribe", zap.String("addr", addr), zap.String("version", cfg.Version))
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
