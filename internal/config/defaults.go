// ABOUTME: Centralized configuration defaults for htp
// ABOUTME: Names, environment prefix and display settings shared by the CLI and MCP server

package config

// Application settings
const (
	AppName   = "htp"
	EnvPrefix = "HTP"
)

// Evaluation settings
const (
	DefaultTimezone = "Local"
)

// Display settings
const (
	DefaultFormat  = "rfc3339"
	FormatUnix     = "unix"
	DateFormatLong = "Mon, 02 Jan 2006 15:04:05 MST"
	SeparatorWidth = 60
)

// Storage settings
const (
	DefaultDirPerms = 0755
)
