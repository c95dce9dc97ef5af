package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// Build-time variables (set via ldflags).
var (
	version = "dev"
	commit  = "unknown"
)

// rootOpts holds flags shared by every subcommand.
var rootOpts struct {
	format string
}

// rootCmd is the base command; subcommands do the actual work.
var rootCmd = &cobra.Command{
	Use:   "wmutil",
	Short: "Inspect Windows displays and change the primary monitor",
	Long: `wmutil inspects the monitors attached to a Windows machine and can
change which one is the primary display.

Monitors are addressed by their device path (e.g. \\.\DISPLAY1), the only
identifier that stays stable across queries. Handles printed in listings
are valid only for the query that produced them.`,
	Version:      fmt.Sprintf("%s (commit: %s)", version, commit),
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootOpts.format, "format", "f",
		envString("WMUTIL_FORMAT", "text"),
		"Output format (text, json, yaml)")
}

// envString returns an env override when present, otherwise a default.
func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
