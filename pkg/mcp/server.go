// Package mcp hosts the queryscribe MCP server: the tool surface that
// exposes the analysis pipeline to MCP clients over streamable HTTP.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

// Server wraps the mcp-go MCPServer and is the single registration point
// for queryscribe tools.
type Server struct {
	mcp    *server.MCPServer
	logger *zap.Logger
}

// NewServer creates the MCP server. Only tool capabilities are advertised;
// queryscribe exposes no resources or prompts.
func NewServer(name, version string, logger *zap.Logger) *Server {
	mcpServer := server.NewMCPServer(
		name,
		version,
		server.WithToolCapabilities(true),
	)

	return &Server{
		mcp:    mcpServer,
		logger: logger.Named("mcp"),
	}
}

// RegisterTool adds a tool to the server and records the registration.
// All queryscribe tools go through here so startup logs list the full
// tool surface.
func (s *Server) RegisterTool(tool mcp.Tool, handler server.ToolHandlerFunc) {
	s.mcp.AddTool(tool, handler)
	s.logger.Debug("registered MCP tool", zap.String("tool", tool.Name))
}

// NewStreamableHTTPServer creates the HTTP transport for this server.
// Stateless mode: each tool call is self-contained, so no session state
// is kept between requests. The HTTP mux handles routing to /mcp, so no
// endpoint path is configured here.
func (s *Server) NewStreamableHTTPServer() *server.StreamableHTTPServer {
	return server.NewStreamableHTTPServer(
		s.mcp,
		server.WithStateLess(true),
	)
}

// HandleMessage processes a raw JSON-RPC message. Exposed for exercising
// the tool surface without an HTTP transport.
func (s *Server) HandleMessage(ctx context.Context, message []byte) mcp.JSONRPCMessage {
	return s.mcp.HandleMessage(ctx, message)
}
