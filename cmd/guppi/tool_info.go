// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"guppi-cli/internal/discovery"
	"guppi-cli/internal/tui"

	"github.com/spf13/cobra"
)

type infoParams struct {
	stdout io.Writer
	stderr io.Writer
	disc   *discovery.Discovery
	name   string
	source string
}

// newToolInfoCommand creates the `guppi tool info` command.
func newToolInfoCommand() *cobra.Command {
	var sourceName string

	cmd := &cobra.Command{
		Use:   "info <name>",
		Short: "Show details about an available tool",
		Long: `Show a tool's metadata and, when present, its rendered README.

A name present in more than one source must be disambiguated with --source.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			disc, err := newDiscovery()
			if err != nil {
				return err
			}

			p := infoParams{
				stdout: cmd.OutOrStdout(),
				stderr: cmd.ErrOrStderr(),
				disc:   disc,
				name:   args[0],
				source: defaultSource(sourceName),
			}
			return runToolInfo(p)
		},
	}

	cmd.Flags().StringVar(&sourceName, "source", "", "source to read the tool from")

	return cmd
}

func runToolInfo(p infoParams) error {
	res := p.disc.Resolve(p.name, p.source)
	switch res.Outcome {
	case discovery.NotFound:
		return &ExitError{Code: 1, Err: fmt.Errorf("tool '%s' not found", p.name)}

	case discovery.Ambiguous:
		fmt.Fprintln(p.stderr, ErrorStyle.Render("Error: ")+fmt.Sprintf("Tool '%s' found in multiple sources: %s", p.name, strings.Join(res.Candidates, ", ")))
		fmt.Fprintf(p.stderr, "Specify one with: %s\n", CmdStyle.Render(fmt.Sprintf("guppi tool info %s --source <source-name>", p.name)))
		return &ExitError{Code: 1}
	}

	record := res.Record

	details := TitleStyle.Render(record.Name) + "\n\n" +
		fmt.Sprintf("Source:      %s\n", record.Source) +
		fmt.Sprintf("Location:    %s\n", tui.ShortenPath(record.Location)) +
		fmt.Sprintf("Description: %s", record.Description)
	fmt.Fprintln(p.stdout, tui.Panel(details))

	readme, err := os.ReadFile(filepath.Join(record.Location, "README.md"))
	if err != nil {
		return nil
	}

	rendered, err := tui.RenderMarkdown(string(readme), 100)
	if err != nil {
		// Fall back to the raw text rather than failing the command.
		rendered = string(readme)
	}
	fmt.Fprintln(p.stdout, rendered)
	return nil
}
