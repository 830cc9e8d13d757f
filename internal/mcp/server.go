package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/dshills/clangrender-mcp/internal/renderer"
)

const (
	// ServerName is the MCP server name
	ServerName = "clangrender-mcp"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
)

// Config holds the server-wide rendering defaults
type Config struct {
	// ExtraSpace is the default parameter-list spacing mode. Individual
	// render_completions calls may override it.
	ExtraSpace bool
	// Workers bounds concurrent candidate rendering; <= 0 means one per CPU.
	Workers int
	// Logger receives structured server logs (stderr side; stdout is
	// reserved for the MCP protocol). Nil disables logging.
	Logger *zap.Logger
}

// Server wraps the MCP server with application dependencies
type Server struct {
	mcp     *server.MCPServer
	opts    renderer.Options
	workers int
	log     *zap.Logger
}

// NewServer creates a new MCP server instance
func NewServer(cfg Config) (*Server, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	s := &Server{
		mcp:     server.NewMCPServer(ServerName, ServerVersion),
		opts:    renderer.Options{ExtraSpace: cfg.ExtraSpace},
		workers: cfg.Workers,
		log:     log,
	}

	s.registerTools()
	return s, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown
func (s *Server) Serve(ctx context.Context) error {
	return server.ServeStdio(s.mcp)
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	s.mcp.AddTool(renderCompletionsTool(), s.handleRenderCompletions)
	s.mcp.AddTool(normalizeTextTool(), s.handleNormalizeText)
}
