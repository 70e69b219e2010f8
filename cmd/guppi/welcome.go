// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"

	"guppi-cli/internal/tui"

	"github.com/spf13/cobra"
)

// printWelcome shows the styled welcome panel above the regular help output.
func printWelcome(cmd *cobra.Command) {
	content := TitleStyle.Render("GUPPI") + " - General Use Personal Program Interface\n" +
		SubtitleStyle.Render("A plugin framework for composing deterministic tools")
	fmt.Fprintln(cmd.OutOrStdout(), tui.Panel(content))
	fmt.Fprintln(cmd.OutOrStdout())
}
