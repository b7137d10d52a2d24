// ABOUTME: Grammar command for htp CLI
// ABOUTME: Renders the phrase reference in the terminal with glamour

package main

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/htp/internal/docs"
)

var grammarRaw bool

var grammarCmd = &cobra.Command{
	Use:   "grammar",
	Short: "Show the phrases htp understands",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		markdown := docs.Grammar()
		if grammarRaw {
			fmt.Fprint(out, markdown)
			return nil
		}

		rendered, err := glamour.Render(markdown, "dark")
		if err != nil {
			// Fall back to plain markdown if rendering fails
			faint := color.New(color.Faint).SprintFunc()
			fmt.Fprintf(out, "%s\n", faint("(markdown rendering unavailable, showing plain text)"))
			fmt.Fprintf(out, "\n%s\n", markdown)
			return nil
		}
		fmt.Fprint(out, rendered)
		return nil
	},
}

func init() {
	grammarCmd.Flags().BoolVar(&grammarRaw, "raw", false, "print the Markdown source")
	rootCmd.AddCommand(grammarCmd)
}
