// ABOUTME: MCP prompt definitions and handlers
// ABOUTME: Provides a workflow template for resolving the time phrases in a piece of text

package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerPrompts() {
	s.mcpServer.AddPrompt(
		mcp.Prompt{
			Name:        "resolve-times",
			Description: "Find the time phrases in a message and resolve each one to an exact timestamp",
			Arguments: []mcp.PromptArgument{
				{
					Name:        "text",
					Description: "The message containing phrases such as 'tomorrow at 9' or 'last friday'",
					Required:    true,
				},
				{
					Name:        "now",
					Description: "Reference time for the message, RFC3339 (default: current time)",
					Required:    false,
				},
			},
		},
		s.handleResolveTimes,
	)
}

func (s *Server) handleResolveTimes(_ context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	text := req.Params.Arguments["text"]
	if text == "" {
		return nil, fmt.Errorf("text argument is required")
	}

	reference := "the current time (omit the now argument)"
	if now := req.Params.Arguments["now"]; now != "" {
		reference = fmt.Sprintf("%s (pass it as the now argument)", now)
	}

	template := fmt.Sprintf(`# Resolve Time Phrases

## Message
%s

## Workflow Steps

### Step 1: Learn the grammar
Read the htp://grammar resource. Only phrases of those shapes can be resolved.

### Step 2: Extract phrases
List every phrase in the message that names a point in time. Rewrite each
into the closest accepted shape, for example "this coming friday" becomes
"next friday" and "5 minutes ago" becomes "5 min ago".

### Step 3: Check how each phrase is understood
Call parse_time_clue for each phrase. If it fails, adjust the wording and try
again before resolving.

### Step 4: Resolve
Call parse_time for each phrase using %s as the reference.
Use roll_forward when a bare time of day means the next occurrence.

### Step 5: Report
Give a table of phrase, resolved timestamp and weekday. Point out any phrase
that could not be resolved and why.
`, text, reference)

	return &mcp.GetPromptResult{
		Description: "Time phrase resolution workflow",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.TextContent{
					Type: "text",
					Text: template,
				},
			},
		},
	}, nil
}
