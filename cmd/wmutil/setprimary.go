package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spyoungtech/wmutil"
)

// setPrimaryCmd reassigns the primary display.
var setPrimaryCmd = &cobra.Command{
	Use:   "set-primary <name>",
	Short: "Make the named display the primary monitor",
	Long: `Make the named display the primary monitor by shifting the whole
layout so that display sits at the virtual-desktop origin. Relative
positions between displays are preserved.

The change affects every process on the machine and is not undone
automatically; run set-primary again with the previous primary's name to
revert.`,
	Args: cobra.ExactArgs(1),
	RunE: runSetPrimary,
}

func init() {
	rootCmd.AddCommand(setPrimaryCmd)
}

// runSetPrimary reassigns the primary display and reports the outcome.
func runSetPrimary(cmd *cobra.Command, args []string) error {
	ok, err := wmutil.SetPrimaryMonitor(args[0])
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("the OS declined to move the primary display to %q", args[0])
	}
	fmt.Printf("%s is now the primary display\n", args[0])
	return nil
}
