// ABOUTME: MCP tool definitions and handlers for resolving time phrases
// ABOUTME: parse_time evaluates a phrase to a timestamp; parse_time_clue shows its structure

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/harper/htp"
	"github.com/harper/htp/clue"
	"github.com/harper/htp/instant"
	"github.com/harper/htp/internal/timeutil"
)

type ParseTimeInput struct {
	Phrase      string  `json:"phrase"`
	Now         *string `json:"now,omitempty"`
	Timezone    *string `json:"timezone,omitempty"`
	RollForward *bool   `json:"roll_forward,omitempty"`
}

type ParseTimeOutput struct {
	Phrase    string `json:"phrase"`
	Timestamp string `json:"timestamp"`
	Unix      int64  `json:"unix"`
	Weekday   string `json:"weekday"`
	WeekStart string `json:"week_start"`
	Reference string `json:"reference"`
	Clue      string `json:"clue"`
	Kind      string `json:"kind"`
}

type ParseTimeClueInput struct {
	Phrase string `json:"phrase"`
}

type ParseTimeClueOutput struct {
	Phrase string         `json:"phrase"`
	Kind   string         `json:"kind"`
	Clue   string         `json:"clue"`
	Fields map[string]any `json:"fields"`
}

func (s *Server) registerTools() {
	s.registerParseTimeTool()
	s.registerParseTimeClueTool()
}

func (s *Server) registerParseTimeTool() {
	tool := mcp.Tool{
		Name:        "parse_time",
		Description: "Resolve a short human time phrase to a timestamp. Accepts times of day ('9', '7:30pm'), offsets ('2 min ago', 'in 3 days'), weekdays ('friday', 'last mon at 9'), shortcut days ('tomorrow at 8') and dates ('2020-12-25T19:43', '25/12/2020'). See the htp://grammar resource for the full reference.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"phrase": map[string]interface{}{
					"type":        "string",
					"description": "The phrase to resolve. Example: 'next friday at 19:43'",
				},
				"now": map[string]interface{}{
					"type":        "string",
					"description": "Optional reference time, RFC3339 or 'YYYY-MM-DD HH:MM'. Defaults to the current time. Example: '2020-12-24T23:45:00Z'",
				},
				"timezone": map[string]interface{}{
					"type":        "string",
					"description": "Optional IANA zone the reference time is taken in. Defaults to the server configuration. Example: 'Europe/Paris'",
				},
				"roll_forward": map[string]interface{}{
					"type":        "boolean",
					"description": "If true, a bare time of day that already passed today resolves to tomorrow",
				},
			},
			Required: []string{"phrase"},
		},
	}
	s.mcpServer.AddTool(tool, s.handleParseTime)
}

func (s *Server) registerParseTimeClueTool() {
	tool := mcp.Tool{
		Name:        "parse_time_clue",
		Description: "Parse a human time phrase without evaluating it. Returns the recognized phrase kind and its raw fields, useful for checking how a phrase is understood before resolving it.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"phrase": map[string]interface{}{
					"type":        "string",
					"description": "The phrase to parse. Example: 'last friday at 9pm'",
				},
			},
			Required: []string{"phrase"},
		},
	}
	s.mcpServer.AddTool(tool, s.handleParseTimeClue)
}

func (s *Server) handleParseTime(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input ParseTimeInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}
	if strings.TrimSpace(input.Phrase) == "" {
		return nil, fmt.Errorf("phrase is required")
	}

	loc, err := s.location(input.Timezone)
	if err != nil {
		return nil, err
	}

	var nowValue string
	if input.Now != nil {
		nowValue = *input.Now
	}
	ref, err := timeutil.Reference(s.clock, loc, nowValue)
	if err != nil {
		return nil, fmt.Errorf("invalid now value: %w", err)
	}

	rollForward := s.cfg.RollForward
	if input.RollForward != nil {
		rollForward = *input.RollForward
	}

	c, err := htp.ParseTimeClue(input.Phrase)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	t, err := htp.Evaluate(c, htp.Config{Now: ref, RollForward: rollForward})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	output := ParseTimeOutput{
		Phrase:    input.Phrase,
		Timestamp: s.cfg.FormatTime(t),
		Unix:      t.Unix(),
		Weekday:   clue.WeekdayOf(t.Weekday()).String(),
		WeekStart: instant.StartOfWeek(t).Format(time.DateOnly),
		Reference: ref.Format(time.RFC3339),
		Clue:      c.String(),
		Kind:      clue.Kind(c),
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal output: %w", err)
	}

	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) handleParseTimeClue(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input ParseTimeClueInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}
	if strings.TrimSpace(input.Phrase) == "" {
		return nil, fmt.Errorf("phrase is required")
	}

	c, err := htp.ParseTimeClue(input.Phrase)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	output := ParseTimeClueOutput{
		Phrase: input.Phrase,
		Kind:   clue.Kind(c),
		Clue:   c.String(),
		Fields: clueFields(c),
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal output: %w", err)
	}

	return mcp.NewToolResultText(string(jsonBytes)), nil
}

// location returns the zone named in the request, or the configured one.
func (s *Server) location(name *string) (*time.Location, error) {
	if name == nil || *name == "" {
		return s.cfg.Location()
	}
	loc, err := time.LoadLocation(*name)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", *name, err)
	}
	return loc, nil
}

// clueFields flattens a clue into JSON-friendly key/value pairs.
func clueFields(c clue.TimeClue) map[string]any {
	fields := map[string]any{}
	switch c := c.(type) {
	case clue.Time:
		fields["clock"] = c.Clock.String()
		addAmPm(fields, c.AmPm)
	case clue.Relative:
		fields["count"] = c.Count
		fields["unit"] = c.Unit.String()
	case clue.RelativeFuture:
		fields["count"] = c.Count
		fields["unit"] = c.Unit.String()
	case clue.RelativeDayAt:
		fields["modifier"] = c.Modifier.String()
		fields["weekday"] = c.Weekday.String()
		addAt(fields, c.At)
		addAmPm(fields, c.AmPm)
	case clue.SameWeekDayAt:
		fields["weekday"] = c.Weekday.String()
		addAt(fields, c.At)
		addAmPm(fields, c.AmPm)
	case clue.ShortcutDayAt:
		fields["day"] = c.Day.String()
		addAt(fields, c.At)
		addAmPm(fields, c.AmPm)
	case clue.Iso:
		fields["date"] = c.Date.String()
		fields["clock"] = c.Clock.String()
	}
	return fields
}

func addAt(fields map[string]any, at *clue.HMS) {
	if at != nil {
		fields["at"] = at.String()
	}
}

func addAmPm(fields map[string]any, a clue.AmPm) {
	if a != clue.NoAmPm {
		fields["ampm"] = a.String()
	}
}
