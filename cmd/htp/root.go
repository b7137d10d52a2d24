// ABOUTME: Root Cobra command and global flags
// ABOUTME: Loads configuration with viper and sets up the debug logger before each command

package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/harper/htp/internal/config"
)

var (
	cfgFile string
	verbose bool
	cfg     *config.Config
	logger  *log.Logger     = log.New(os.Stderr)
	clock   clockwork.Clock = clockwork.NewRealClock()
)

// configFlags maps config keys to the command flags that override them.
var configFlags = map[string]string{
	"timezone":     "tz",
	"roll_forward": "roll-forward",
	"format":       "format",
}

var rootCmd = &cobra.Command{
	Use:   "htp",
	Short: "Human time parser",
	Long: `
██╗  ██╗████████╗██████╗
██║  ██║╚══██╔══╝██╔══██╗
███████║   ██║   ██████╔╝
██╔══██║   ██║   ██╔═══╝
██║  ██║   ██║   ██║
╚═╝  ╚═╝   ╚═╝   ╚═╝

Turn phrases like "last friday at 9" or "2 min ago" into timestamps.

Use it from the shell, or expose it to AI agents via MCP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger(cmd)
		return loadConfig(cmd, true)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func setupLogger(cmd *cobra.Command) {
	logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{Prefix: "htp"})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
}

// loadConfig fills cfg from defaults, environment and the flags of cmd.
// The config file is skipped when readFile is false.
func loadConfig(cmd *cobra.Command, readFile bool) error {
	v := config.New()
	for key, name := range configFlags {
		if flag := cmd.Flags().Lookup(name); flag != nil {
			if err := v.BindPFlag(key, flag); err != nil {
				return fmt.Errorf("failed to bind --%s: %w", name, err)
			}
		}
	}

	var err error
	if readFile {
		cfg, err = config.LoadFrom(v, cfgFile)
	} else {
		cfg, err = config.Decode(v)
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger.Debug("loaded config",
		"source", cfg.Source,
		"timezone", cfg.Timezone,
		"roll_forward", cfg.RollForward,
		"format", cfg.Format,
	)
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (default: ~/.config/htp/config.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")
}
