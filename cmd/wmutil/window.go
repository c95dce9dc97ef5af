package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/spyoungtech/wmutil"
)

// windowCmd resolves a window handle to the display hosting it.
var windowCmd = &cobra.Command{
	Use:   "window <hwnd>",
	Short: "Show the display hosting a window",
	Long: `Show the display currently hosting the given window handle. The
handle may be decimal or 0x-prefixed hexadecimal. Handles that do not
refer to a live window are rejected.`,
	Args: cobra.ExactArgs(1),
	RunE: runWindow,
}

func init() {
	rootCmd.AddCommand(windowCmd)
}

// runWindow parses the handle and prints the display hosting the window.
func runWindow(cmd *cobra.Command, args []string) error {
	hwnd, err := strconv.ParseUint(args[0], 0, 64)
	if err != nil {
		return fmt.Errorf("hwnd must be a decimal or 0x-prefixed integer: %w", err)
	}

	m, err := wmutil.GetWindowMonitor(uintptr(hwnd))
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
