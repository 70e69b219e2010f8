// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"io"
	"strings"

	"guppi-cli/internal/discovery"
	"guppi-cli/internal/tui"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

type searchParams struct {
	stdout io.Writer
	disc   *discovery.Discovery
	query  string
}

// newToolSearchCommand creates the `guppi tool search` command.
func newToolSearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search for available tools in all sources",
		Example: `  guppi tool search       # List all available tools
  guppi tool search beads # Search for tools matching 'beads'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			disc, err := newDiscovery()
			if err != nil {
				return err
			}

			p := searchParams{stdout: cmd.OutOrStdout(), disc: disc}
			if len(args) > 0 {
				p.query = args[0]
			}
			return runToolSearch(p)
		},
	}

	return cmd
}

func runToolSearch(p searchParams) error {
	fmt.Fprintln(p.stdout, "Searching for tools...")

	tools := p.disc.DiscoverAll()
	if len(tools) == 0 {
		fmt.Fprintln(p.stdout, WarningStyle.Render("No tools found in sources"))
		fmt.Fprintf(p.stdout, "Add a source with: %s\n", CmdStyle.Render("guppi tool source add <name> <url>"))
		return nil
	}

	if p.query != "" {
		tools = filterTools(tools, p.query)
		if len(tools) == 0 {
			fmt.Fprintf(p.stdout, "No tools found matching '%s'\n", p.query)
			return nil
		}
	}

	slices.SortFunc(tools, func(a, b discovery.ToolRecord) int {
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		default:
			return 0
		}
	})

	rows := make([][]string, 0, len(tools))
	for _, tool := range tools {
		source := tool.Source
		if source == "" {
			source = "unknown"
		}
		rows = append(rows, []string{tool.Name, source, tui.ShortenPath(tool.Location), tool.Description})
	}

	fmt.Fprintln(p.stdout, tui.RenderTable("Available Tools",
		[]string{"Tool", "Source", "Location", "Description"}, rows))
	fmt.Fprintln(p.stdout, DimStyle.Render(fmt.Sprintf("Total: %d tool(s) found", len(tools))))
	return nil
}

// filterTools keeps records whose name or description contains the query,
// case-insensitively.
func filterTools(tools []discovery.ToolRecord, query string) []discovery.ToolRecord {
	query = strings.ToLower(query)

	var matched []discovery.ToolRecord
	for _, tool := range tools {
		if strings.Contains(strings.ToLower(tool.Name), query) ||
			strings.Contains(strings.ToLower(tool.Description), query) {
			matched = append(matched, tool)
		}
	}
	return matched
}
