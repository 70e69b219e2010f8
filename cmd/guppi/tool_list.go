// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"guppi-cli/internal/discovery"
	"guppi-cli/internal/router"
	"guppi-cli/internal/tui"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

// installedTool is one guppi-* executable found on PATH.
type installedTool struct {
	Name string
	Path string
}

type listParams struct {
	stdout io.Writer
	disc   *discovery.Discovery
	path   string
}

// newToolListCommand creates the `guppi tool list` command.
func newToolListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List installed GUPPI tools",
		Long:  "List all tools currently installed and available for routing.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			disc, err := newDiscovery()
			if err != nil {
				return err
			}

			p := listParams{
				stdout: cmd.OutOrStdout(),
				disc:   disc,
				path:   os.Getenv("PATH"),
			}
			return runToolList(p)
		},
	}

	return cmd
}

func runToolList(p listParams) error {
	installed := scanPath(p.path)
	if len(installed) == 0 {
		fmt.Fprintln(p.stdout, WarningStyle.Render("No tools installed"))
		fmt.Fprintf(p.stdout, "\nInstall tools with: %s\n", CmdStyle.Render("guppi tool install <name>"))
		return nil
	}

	slices.SortFunc(installed, func(a, b installedTool) int {
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		default:
			return 0
		}
	})

	// Cross-reference the catalog for source and description; a name that
	// is absent or ambiguous there stays unannotated.
	catalog := p.disc.DiscoverAll()

	rows := make([][]string, 0, len(installed))
	for _, tool := range installed {
		source, description := "unknown", ""
		if record, ok := uniqueByName(catalog, tool.Name); ok {
			source, description = record.Source, record.Description
		}
		rows = append(rows, []string{tool.Name, source, description, tui.ShortenPath(tool.Path)})
	}

	fmt.Fprintln(p.stdout, tui.RenderTable("Installed Tools",
		[]string{"Tool", "Source", "Description", "Executable"}, rows))
	fmt.Fprintln(p.stdout, DimStyle.Render(fmt.Sprintf("Total: %d tool(s) installed", len(installed))))
	return nil
}

// scanPath finds guppi-* executables across the PATH directories, keeping
// the first hit per tool name. Unreadable directories are skipped.
func scanPath(pathEnv string) []installedTool {
	seen := map[string]bool{}
	var tools []installedTool

	for _, dir := range filepath.SplitList(pathEnv) {
		if dir == "" {
			continue
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}

		for _, entry := range entries {
			name := entry.Name()
			if runtime.GOOS == "windows" {
				name = strings.TrimSuffix(name, ".exe")
			}
			if !strings.HasPrefix(name, router.Prefix) || name == strings.TrimSuffix(router.Prefix, "-") {
				continue
			}

			info, err := entry.Info()
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
			if runtime.GOOS != "windows" && info.Mode()&0o111 == 0 {
				continue
			}

			toolName := strings.TrimPrefix(name, router.Prefix)
			if toolName == "" || seen[toolName] {
				continue
			}
			seen[toolName] = true
			tools = append(tools, installedTool{Name: toolName, Path: filepath.Join(dir, entry.Name())})
		}
	}
	return tools
}

// uniqueByName returns the catalog record for name when exactly one exists.
func uniqueByName(catalog []discovery.ToolRecord, name string) (discovery.ToolRecord, bool) {
	var found discovery.ToolRecord
	count := 0
	for _, record := range catalog {
		if record.Name == name {
			found = record
			count++
		}
	}
	return found, count == 1
}
