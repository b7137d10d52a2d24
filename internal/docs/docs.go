// ABOUTME: Embedded Markdown reference for the accepted phrase grammar
// ABOUTME: Shared by the grammar command and the MCP grammar resource

package docs

import _ "embed"

//go:embed grammar.md
var grammar string

// Grammar returns the phrase reference as Markdown.
func Grammar() string {
	return grammar
}
