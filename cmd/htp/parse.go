// ABOUTME: Parse command for htp CLI
// ABOUTME: Resolves a phrase against the reference time and prints the timestamp

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/htp"
	"github.com/harper/htp/clue"
	"github.com/harper/htp/instant"
	"github.com/harper/htp/internal/timeutil"
)

var (
	parseNow     string
	parseExplain bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <phrase...>",
	Short: "Resolve a time phrase to a timestamp",
	Long: `Resolve a human time phrase to a timestamp.

The phrase is evaluated against the current time, or against --now.
Run 'htp grammar' for the phrases that are understood.

Examples:
  htp parse last friday at 9
  htp parse 2 min ago --format unix
  htp parse 9:30 --roll-forward --now "2020-07-12 12:45"`,
	Aliases: []string{"p"},
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		phrase := strings.Join(args, " ")

		loc, err := cfg.Location()
		if err != nil {
			return err
		}
		ref, err := timeutil.Reference(clock, loc, parseNow)
		if err != nil {
			return err
		}
		logger.Debug("reference time", "now", ref.Format(time.RFC3339))

		c, err := htp.ParseTimeClue(phrase)
		if err != nil {
			return err
		}
		logger.Debug("parsed phrase", "clue", c.String(), "kind", clue.Kind(c))

		t, err := htp.Evaluate(c, htp.Config{Now: ref, RollForward: cfg.RollForward})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !parseExplain {
			fmt.Fprintln(out, cfg.FormatTime(t))
			return nil
		}

		bold := color.New(color.Bold).SprintFunc()
		faint := color.New(color.Faint).SprintFunc()

		fmt.Fprintf(out, "%s\n", bold(cfg.FormatTime(t)))
		fmt.Fprintf(out, "%s %s\n", faint("Clue:"), c)
		fmt.Fprintf(out, "%s %s\n", faint("Reference:"), ref.Format(time.RFC3339))
		fmt.Fprintf(out, "%s %s, week of %s\n", faint("Day:"),
			clue.WeekdayOf(t.Weekday()), instant.StartOfWeek(t).Format(time.DateOnly))
		return nil
	},
}

func init() {
	parseCmd.Flags().StringVar(&parseNow, "now", "", "reference time, RFC3339 or e.g. \"2020-07-12 12:45\" (default: current time)")
	parseCmd.Flags().String("tz", "", "timezone for the reference time (default: config timezone)")
	parseCmd.Flags().Bool("roll-forward", false, "treat a time of day already past as tomorrow")
	parseCmd.Flags().String("format", "", "output format: rfc3339, rfc1123, kitchen, datetime, date, long, unix, or a Go layout")
	parseCmd.Flags().BoolVarP(&parseExplain, "explain", "e", false, "show the parsed clue and reference time")
	rootCmd.AddCommand(parseCmd)
}
