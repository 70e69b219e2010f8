// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"guppi-cli/internal/config"
	"guppi-cli/internal/pm"

	"github.com/spf13/cobra"
)

// newUninstallCommand creates the `guppi uninstall` command, which removes
// the CLI itself but preserves the guppi home directory.
func newUninstallCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Uninstall guppi CLI from the system",
		Long: `Uninstall the guppi CLI tool.

Your guppi home directory, with all sources and tool configuration, is
preserved. Reinstall with: uv tool install guppi`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return runSelfUninstall(cmd.Context(), cmd.OutOrStdout(), cmd.InOrStdin(), yes)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip confirmation prompt")

	return cmd
}

func runSelfUninstall(ctx context.Context, stdout io.Writer, stdin io.Reader, yes bool) error {
	home, err := config.Home()
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Current version: %s\n", getVersionString())
	fmt.Fprintln(stdout, "This will uninstall the guppi CLI tool.")
	fmt.Fprintf(stdout, "Your configuration in %s will be preserved.\n\n", home)

	if !yes && !confirm(stdin, stdout, "Are you sure you want to uninstall guppi?") {
		fmt.Fprintln(stdout, "Aborted.")
		return nil
	}

	fmt.Fprintln(stdout, "Uninstalling guppi...")

	out, err := pm.Uninstall(ctx, selfPackage)
	if err != nil {
		if errors.Is(err, pm.ErrNotFound) {
			return &ExitError{Code: 1, Err: fmt.Errorf("%w: please install uv first", pm.ErrNotFound)}
		}
		return &ExitError{Code: 1, Err: fmt.Errorf("uninstalling guppi: %w", err)}
	}
	if out != "" {
		fmt.Fprintln(stdout, out)
	}

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, SuccessStyle.Render(successIcon)+" guppi CLI uninstalled successfully!")
	fmt.Fprintf(stdout, "\nYour configuration is preserved at: %s\n", home)
	fmt.Fprintf(stdout, "\nTo reinstall:\n  %s\n", CmdStyle.Render("uv tool install guppi"))
	return nil
}
