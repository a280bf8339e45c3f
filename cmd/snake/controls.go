package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var controlsCmd = &cobra.Command{
	Use:   "controls",
	Short: "Show key bindings",
	Long:  `Lists the keys used while playing.`,
	Args:  cobra.NoArgs,
	Run:   runControls,
}

func runControls(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	bindings := tui.DefaultKeyMap().ShortHelp()

	// fmt pads by rune count, so arrow glyphs line up.
	maxKeyLen := 3 // "Key" header
	for _, b := range bindings {
		if n := len([]rune(b.Help().Key)); n > maxKeyLen {
			maxKeyLen = n
		}
	}

	fmt.Fprintln(out, "Controls:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-*s  %s\n", maxKeyLen, "Key", "Action")
	fmt.Fprintf(out, "  %-*s  %s\n", maxKeyLen, "---", "------")
	for _, b := range bindings {
		fmt.Fprintf(out, "  %-*s  %s\n", maxKeyLen, b.Help().Key, b.Help().Desc)
	}
}
