// ABOUTME: Tests for CLI commands
// ABOUTME: Tests command structure, flags, and end-to-end runs against a fake clock

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/harper/htp/interpreter"
	"github.com/harper/htp/parser"
)

var christmasEve = time.Date(2020, 12, 24, 23, 45, 0, 0, time.UTC)

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "htp" {
		t.Errorf("expected Use to be 'htp', got %q", rootCmd.Use)
	}
	if rootCmd.Short == "" {
		t.Error("expected root command to have a short description")
	}
	if rootCmd.PersistentFlags().Lookup("config") == nil {
		t.Error("expected --config flag to exist")
	}
	if rootCmd.PersistentFlags().Lookup("verbose") == nil {
		t.Error("expected --verbose flag to exist")
	}
}

func TestParseCommand(t *testing.T) {
	if parseCmd.Use != "parse <phrase...>" {
		t.Errorf("expected Use to be 'parse <phrase...>', got %q", parseCmd.Use)
	}
	if len(parseCmd.Aliases) == 0 {
		t.Error("expected parse command to have aliases")
	}
	for _, name := range []string{"now", "tz", "roll-forward", "format", "explain"} {
		if parseCmd.Flags().Lookup(name) == nil {
			t.Errorf("expected --%s flag to exist", name)
		}
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	want := map[string]bool{"parse": false, "clue": false, "grammar": false, "config": false, "mcp": false, "version": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("expected %q subcommand to be registered", name)
		}
	}
}

func TestConfigFlagsExist(t *testing.T) {
	for key, name := range configFlags {
		if parseCmd.Flags().Lookup(name) == nil {
			t.Errorf("config key %q is bound to missing flag --%s", key, name)
		}
	}
}

// resetFlags restores every flag to its default so runs do not leak into each other.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// run executes the CLI with args against a fake clock in an isolated config home.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HTP_TIMEZONE", "UTC")
	t.Setenv("HTP_ROLL_FORWARD", "")
	t.Setenv("HTP_FORMAT", "")

	oldNoColor := color.NoColor
	color.NoColor = true
	oldClock := clock
	clock = clockwork.NewFakeClockAt(christmasEve)
	t.Cleanup(func() {
		color.NoColor = oldNoColor
		clock = oldClock
	})

	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestParse_Run(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"weekday", []string{"parse", "last", "friday", "at", "19:43"}, "2020-12-18T19:43:00Z\n"},
		{"quoted phrase", []string{"parse", "2 min ago"}, "2020-12-24T23:43:00Z\n"},
		{"unix format", []string{"parse", "now", "--format", "unix"}, "1608853500\n"},
		{"named format", []string{"parse", "tomorrow", "--format", "date"}, "2020-12-25\n"},
		{"roll forward", []string{"parse", "9:30", "--roll-forward"}, "2020-12-25T09:30:00Z\n"},
		{"no roll forward", []string{"parse", "9:30"}, "2020-12-24T09:30:00Z\n"},
		{"explicit now", []string{"parse", "next", "friday", "--now", "2020-07-12 12:45"}, "2020-07-17T00:00:00Z\n"},
		{"alias", []string{"p", "in", "1", "week"}, "2020-12-31T23:45:00Z\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(t, tc.args...)
			if err != nil {
				t.Fatalf("run(%v) error = %v", tc.args, err)
			}
			if out != tc.want {
				t.Errorf("run(%v) = %q, want %q", tc.args, out, tc.want)
			}
		})
	}
}

func TestParse_Timezone(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Skipf("tzdata not available: %v", err)
	}

	out, err := run(t, "parse", "today", "at", "8", "--tz", "Asia/Tokyo")
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	// The fake clock reads 2020-12-25 08:45 in Tokyo.
	want := time.Date(2020, 12, 25, 8, 0, 0, 0, tokyo).Format(time.RFC3339) + "\n"
	if out != want {
		t.Errorf("run() = %q, want %q", out, want)
	}
}

func TestParse_Explain(t *testing.T) {
	out, err := run(t, "parse", "--explain", "last friday at 19:43")
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	for _, want := range []string{
		"2020-12-18T19:43:00Z",
		"Clue: RelativeDayAt(last, friday, 19:43:00)",
		"Reference: 2020-12-24T23:45:00Z",
		"Day: friday, week of 2020-12-14",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("explain output missing %q:\n%s", want, out)
		}
	}
}

func TestParse_Errors(t *testing.T) {
	_, err := run(t, "parse", "9", "xm")
	if !errors.Is(err, parser.ErrUnknownAmPm) {
		t.Errorf("expected ErrUnknownAmPm, got %v", err)
	}

	_, err = run(t, "parse", "30/02/2020")
	if !errors.Is(err, interpreter.ErrInvalidIsoDate) {
		t.Errorf("expected ErrInvalidIsoDate, got %v", err)
	}

	_, err = run(t, "parse", "now", "--now", "not a time")
	if err == nil || !strings.Contains(err.Error(), "invalid reference time") {
		t.Errorf("expected invalid reference time error, got %v", err)
	}

	if _, err := run(t, "parse"); err == nil {
		t.Error("expected error when no phrase is given")
	}
}

func TestClue_Run(t *testing.T) {
	out, err := run(t, "clue", "2", "min", "ago")
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if out != "Relative(2, minutes) (relative)\n" {
		t.Errorf("run() = %q", out)
	}

	out, err = run(t, "clue", "25:99")
	if err != nil {
		t.Fatalf("clue should not range check, got %v", err)
	}
	if !strings.HasPrefix(out, "Time(25:99:00)") {
		t.Errorf("run() = %q", out)
	}
}

func TestGrammar_Run(t *testing.T) {
	out, err := run(t, "grammar", "--raw")
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.HasPrefix(out, "# htp phrase reference") {
		t.Errorf("expected raw markdown, got %q", out[:min(len(out), 40)])
	}

	out, err = run(t, "grammar")
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if strings.TrimSpace(out) == "" {
		t.Error("expected rendered grammar output")
	}
}

func TestConfig_Run(t *testing.T) {
	out, err := run(t, "config")
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	for _, want := range []string{"Config file: (none, using defaults)", "Timezone: UTC", "Roll forward: false", "Format: rfc3339"} {
		if !strings.Contains(out, want) {
			t.Errorf("config output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigInit_Run(t *testing.T) {
	path := filepath.Join(t.TempDir(), "htp.json")

	out, err := run(t, "--config", path, "config", "init")
	if err != nil {
		t.Fatalf("config init error = %v", err)
	}
	if !strings.Contains(out, path) {
		t.Errorf("expected written path in output, got %q", out)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	out, err = run(t, "--config", path, "config")
	if err != nil {
		t.Fatalf("config error = %v", err)
	}
	if !strings.Contains(out, "Config file: "+path) {
		t.Errorf("expected config source %q, got:\n%s", path, out)
	}

	if _, err := run(t, "--config", path, "config", "init"); err == nil {
		t.Error("expected config init to refuse overwriting")
	}
}

func TestConfig_MissingExplicitFile(t *testing.T) {
	_, err := run(t, "--config", filepath.Join(t.TempDir(), "missing.json"), "parse", "now")
	if err == nil || !strings.Contains(err.Error(), "failed to load config") {
		t.Errorf("expected config load error, got %v", err)
	}
}

func TestConfig_EnvFormat(t *testing.T) {
	t.Setenv("HTP_FORMAT", "kitchen")
	// run resets HTP_FORMAT, so drive the loader directly.
	resetFlags(rootCmd)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	if err := loadConfig(parseCmd, true); err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Format != "kitchen" {
		t.Errorf("Format = %q, want kitchen from HTP_FORMAT", cfg.Format)
	}
}
