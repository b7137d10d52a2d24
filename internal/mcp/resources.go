// ABOUTME: MCP resource providers for htp
// ABOUTME: Exposes the phrase grammar reference as Markdown

package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/harper/htp/internal/docs"
)

const grammarURI = "htp://grammar"

func (s *Server) registerResources() {
	s.mcpServer.AddResource(
		mcp.Resource{
			URI:         grammarURI,
			Name:        "Phrase Grammar",
			Description: "Reference of every phrase shape htp understands: times of day, relative offsets, weekdays with last/next, today/yesterday/tomorrow, and calendar dates",
			MIMEType:    "text/markdown",
		},
		s.handleGrammarResource,
	)
}

func (s *Server) handleGrammarResource(_ context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		&mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "text/markdown",
			Text:     docs.Grammar(),
		},
	}, nil
}
