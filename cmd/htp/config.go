// ABOUTME: Config command for htp CLI
// ABOUTME: Shows the effective configuration and writes a starter config file

package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/htp/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Show the configuration after merging defaults, the config file,
and HTP_TIMEZONE, HTP_ROLL_FORWARD and HTP_FORMAT environment variables.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		faint := color.New(color.Faint).SprintFunc()

		source := cfg.Source
		if source == "" {
			source = "(none, using defaults)"
		}

		fmt.Fprintln(out, strings.Repeat("─", config.SeparatorWidth))
		fmt.Fprintf(out, "%s %s\n", faint("Config file:"), source)
		fmt.Fprintf(out, "%s %s\n", faint("Timezone:"), cfg.Timezone)
		fmt.Fprintf(out, "%s %t\n", faint("Roll forward:"), cfg.RollForward)
		fmt.Fprintf(out, "%s %s\n", faint("Format:"), cfg.Format)
		fmt.Fprintln(out, strings.Repeat("─", config.SeparatorWidth))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the current configuration to the config file",
	Long: `Write defaults, overridden by HTP_* environment variables, to the config
file. An existing file is never overwritten.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger(cmd)
		return loadConfig(cmd, false)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = config.GetConfigPath()
		}
		if err := cfg.Save(path); err != nil {
			return err
		}
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
