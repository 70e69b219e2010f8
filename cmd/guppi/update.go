// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"guppi-cli/internal/pm"

	"github.com/spf13/cobra"
)

// selfPackage is the package name guppi itself is installed under.
const selfPackage = "guppi"

// newUpdateCommand creates the `guppi update` command, which upgrades the
// CLI itself through the external package manager.
func newUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update guppi CLI to the latest version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return runSelfUpdate(cmd.Context(), cmd.OutOrStdout())
		},
	}

	return cmd
}

func runSelfUpdate(ctx context.Context, stdout io.Writer) error {
	fmt.Fprintf(stdout, "Current version: %s\n", getVersionString())
	fmt.Fprintln(stdout, "Checking for updates...")

	out, err := pm.Upgrade(ctx, selfPackage)
	if err != nil {
		if errors.Is(err, pm.ErrNotFound) {
			return &ExitError{Code: 1, Err: fmt.Errorf("%w: please install uv first", pm.ErrNotFound)}
		}
		return &ExitError{Code: 1, Err: fmt.Errorf("updating guppi: %w", err)}
	}

	if pm.UpgradeWasNoop(out) {
		fmt.Fprintln(stdout, SuccessStyle.Render(successIcon)+fmt.Sprintf(" guppi is already up-to-date (version %s)", Version))
		return nil
	}

	if out != "" {
		fmt.Fprintln(stdout, out)
	}
	fmt.Fprintln(stdout, SuccessStyle.Render(successIcon)+" guppi updated successfully!")
	fmt.Fprintf(stdout, "\nRun %s to see the new version\n", CmdStyle.Render("guppi --version"))
	return nil
}
