// ABOUTME: MCP server implementation for htp
// ABOUTME: Provides tools, resources, and prompts for AI agents to resolve human time phrases

package mcp

import (
	"github.com/jonboulle/clockwork"
	"github.com/mark3labs/mcp-go/server"

	"github.com/harper/htp/internal/config"
)

const serverVersion = "1.0.0"

// Server wraps the MCP server with htp configuration and a clock
type Server struct {
	mcpServer *server.MCPServer
	cfg       *config.Config
	clock     clockwork.Clock
}

// NewServer creates a new MCP server instance
func NewServer(cfg *config.Config, clock clockwork.Clock) *Server {
	s := &Server{
		cfg:   cfg,
		clock: clock,
	}

	s.mcpServer = server.NewMCPServer(
		config.AppName,
		serverVersion,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
		server.WithPromptCapabilities(true),
	)

	s.registerTools()
	s.registerResources()
	s.registerPrompts()

	return s
}

// ServeStdio starts the MCP server on stdio
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
