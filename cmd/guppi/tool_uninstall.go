// SPDX-License-Identifier: MPL-2.0

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"guppi-cli/internal/pm"
	"guppi-cli/internal/router"

	"github.com/spf13/cobra"
)

type uninstallToolParams struct {
	stdout io.Writer
	stdin  io.Reader
	name   string
	yes    bool
}

// newToolUninstallCommand creates the `guppi tool uninstall` command.
func newToolUninstallCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "uninstall <name>",
		Short: "Uninstall a GUPPI tool",
		Long: `Uninstall a GUPPI tool.

The name is accepted with or without the guppi- prefix.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			p := uninstallToolParams{
				stdout: cmd.OutOrStdout(),
				stdin:  cmd.InOrStdin(),
				name:   args[0],
				yes:    yes,
			}
			return runToolUninstall(cmd.Context(), p)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip confirmation prompt")

	return cmd
}

func runToolUninstall(ctx context.Context, p uninstallToolParams) error {
	// Normalize: accept "dummy" and "guppi-dummy" alike.
	toolName := strings.TrimPrefix(p.name, router.Prefix)
	pkg := router.Prefix + toolName

	listing, err := pm.List(ctx)
	if err != nil {
		if errors.Is(err, pm.ErrNotFound) {
			return &ExitError{Code: 1, Err: fmt.Errorf("%w: please install uv first", pm.ErrNotFound)}
		}
		return &ExitError{Code: 1, Err: err}
	}
	if !pm.Listed(listing, pkg) {
		return &ExitError{Code: 1, Err: fmt.Errorf("tool '%s' is not installed", toolName)}
	}

	if !p.yes && !confirm(p.stdin, p.stdout, fmt.Sprintf("Uninstall tool '%s'?", toolName)) {
		fmt.Fprintln(p.stdout, "Aborted.")
		return nil
	}

	out, err := pm.Uninstall(ctx, pkg)
	if err != nil {
		return &ExitError{Code: 1, Err: fmt.Errorf("uninstalling tool: %w", err)}
	}
	if out != "" {
		fmt.Fprintln(p.stdout, out)
	}
	fmt.Fprintln(p.stdout, SuccessStyle.Render(successIcon)+fmt.Sprintf(" Tool '%s' uninstalled successfully!", toolName))
	return nil
}

// confirm asks a yes/no question and reports the answer. Anything but an
// explicit yes is no.
func confirm(stdin io.Reader, stdout io.Writer, question string) bool {
	fmt.Fprintf(stdout, "%s [y/N]: ", question)

	reader := bufio.NewReader(stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
