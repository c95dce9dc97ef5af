package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spyoungtech/wmutil"
)

// listCmd prints every attached display.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all attached displays",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

// runList enumerates monitors and prints them in the selected format.
func runList(cmd *cobra.Command, args []string) error {
	monitors, err := wmutil.EnumerateMonitors()
	if err != nil {
		return err
	}
	out, err := renderMonitors(monitors, rootOpts.format)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}
