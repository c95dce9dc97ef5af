package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/spyoungtech/wmutil"
)

// atCmd resolves a virtual-desktop point to a display.
var atCmd = &cobra.Command{
	Use:   "at <x> <y>",
	Short: "Show the display containing (or nearest to) a point",
	Long: `Show the display whose rectangle contains the given virtual-desktop
point. Points outside every display resolve to the geometrically nearest
one, so the command succeeds for any coordinates while a display exists.`,
	Args: cobra.ExactArgs(2),
	RunE: runAt,
}

func init() {
	rootCmd.AddCommand(atCmd)
}

// runAt parses the point and prints its display.
func runAt(cmd *cobra.Command, args []string) error {
	x, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("x must be an integer: %w", err)
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("y must be an integer: %w", err)
	}

	m, err := wmutil.GetMonitorFromPoint(x, y)
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
