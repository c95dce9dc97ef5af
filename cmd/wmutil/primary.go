package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spyoungtech/wmutil"
)

// primaryCmd prints the current primary display.
var primaryCmd = &cobra.Command{
	Use:   "primary",
	Short: "Show the primary display",
	Args:  cobra.NoArgs,
	RunE:  runPrimary,
}

func init() {
	rootCmd.AddCommand(primaryCmd)
}

// runPrimary looks up the primary monitor and prints it.
func runPrimary(cmd *cobra.Command, args []string) error {
	m, err := wmutil.GetPrimaryMonitor()
	if err != nil {
		return err
	}
	out, err := renderMonitors([]wmutil.Monitor{m}, rootOpts.format)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}
