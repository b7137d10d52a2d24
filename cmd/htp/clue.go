// ABOUTME: Clue command for htp CLI
// ABOUTME: Shows how a phrase is parsed without evaluating it

package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/htp"
	"github.com/harper/htp/clue"
)

var clueCmd = &cobra.Command{
	Use:   "clue <phrase...>",
	Short: "Show the parsed form of a phrase",
	Long: `Parse a phrase and print the recognized time clue without evaluating it.

Values are not range checked here, so "25:99" parses but fails in 'htp parse'.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := htp.ParseTimeClue(strings.Join(args, " "))
		if err != nil {
			return err
		}

		faint := color.New(color.Faint).SprintFunc()
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", c, faint("("+clue.Kind(c)+")"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clueCmd)
}
