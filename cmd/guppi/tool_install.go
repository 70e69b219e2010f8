// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"guppi-cli/internal/discovery"
	"guppi-cli/internal/pm"

	"github.com/spf13/cobra"
)

// installParams bundles the dependencies and flags for the install command
// so that runToolInstall can be tested without a live Cobra command.
type installParams struct {
	stdout io.Writer
	stderr io.Writer
	disc   *discovery.Discovery
	name   string
	from   string
	source string
}

// newToolInstallCommand creates the `guppi tool install` command.
func newToolInstallCommand() *cobra.Command {
	var (
		fromPath   string
		sourceName string
	)

	cmd := &cobra.Command{
		Use:   "install <name>",
		Short: "Install a GUPPI tool",
		Long: `Install a GUPPI tool.

Without --from, the tool is looked up in the configured sources. A name
present in more than one source must be disambiguated with --source.`,
		Example: `  guppi tool install dummy                      # Install from sources
  guppi tool install dummy --source guppi-tools # Install from a specific source
  guppi tool install dummy --from ~/dev/dummy   # Install from a local path`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			disc, err := newDiscovery()
			if err != nil {
				return err
			}

			p := installParams{
				stdout: cmd.OutOrStdout(),
				stderr: cmd.ErrOrStderr(),
				disc:   disc,
				name:   args[0],
				from:   fromPath,
				source: defaultSource(sourceName),
			}
			return runToolInstall(cmd.Context(), p)
		},
	}

	cmd.Flags().StringVar(&fromPath, "from", "", "local path or git address (skips source lookup)")
	cmd.Flags().StringVar(&sourceName, "source", "", "source to install from (required when the name is ambiguous)")

	return cmd
}

func runToolInstall(ctx context.Context, p installParams) error {
	if p.from != "" {
		return installFromPath(ctx, p.stdout, p.name, p.from)
	}

	fmt.Fprintf(p.stdout, "Looking for '%s' in sources...\n", p.name)

	res := p.disc.Resolve(p.name, p.source)
	switch res.Outcome {
	case discovery.NotFound:
		if p.source != "" {
			fmt.Fprintln(p.stderr, ErrorStyle.Render("Error: ")+fmt.Sprintf("Tool '%s' not found in source '%s'", p.name, p.source))
		} else {
			fmt.Fprintln(p.stderr, ErrorStyle.Render("Error: ")+fmt.Sprintf("Tool '%s' not found in any source", p.name))
			fmt.Fprintf(p.stderr, "Try: %s\n", CmdStyle.Render("guppi tool search"))
			fmt.Fprintf(p.stderr, "Or:  %s\n", CmdStyle.Render(fmt.Sprintf("guppi tool install %s --from <path>", p.name)))
		}
		return &ExitError{Code: 1}

	case discovery.Ambiguous:
		fmt.Fprintln(p.stderr, ErrorStyle.Render("Error: ")+fmt.Sprintf("Tool '%s' found in multiple sources:", p.name))
		for _, candidate := range res.Candidates {
			fmt.Fprintf(p.stderr, "  - %s\n", candidate)
		}
		fmt.Fprintln(p.stderr)
		fmt.Fprintln(p.stderr, "Please specify a source:")
		fmt.Fprintf(p.stderr, "  %s\n", CmdStyle.Render(fmt.Sprintf("guppi tool install %s --source <source-name>", p.name)))
		return &ExitError{Code: 1}
	}

	fmt.Fprintf(p.stdout, "Found '%s' in source '%s'\n", p.name, res.Record.Source)
	return installFromPath(ctx, p.stdout, p.name, res.Record.Location)
}

// installFromPath delegates the actual installation to the external package
// manager and relays its output.
func installFromPath(ctx context.Context, stdout io.Writer, name, from string) error {
	fmt.Fprintf(stdout, "Installing tool '%s' from %s...\n", name, from)

	out, err := pm.Install(ctx, from)
	if err != nil {
		if errors.Is(err, pm.ErrNotFound) {
			return &ExitError{Code: 1, Err: fmt.Errorf("%w: please install uv first", pm.ErrNotFound)}
		}
		return &ExitError{Code: 1, Err: fmt.Errorf("installing tool: %w", err)}
	}

	if out != "" {
		fmt.Fprintln(stdout, out)
	}
	fmt.Fprintln(stdout, SuccessStyle.Render(successIcon)+fmt.Sprintf(" Tool '%s' installed successfully!", name))
	return nil
}
