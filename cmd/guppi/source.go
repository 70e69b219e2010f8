// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"guppi-cli/internal/config"
	"guppi-cli/internal/scaffold"
	"guppi-cli/internal/source"
	"guppi-cli/internal/tui"
	"guppi-cli/pkg/manifest"

	"github.com/spf13/cobra"
)

// newSourceCommand creates the `guppi tool source` command group.
func newSourceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "source",
		Short: "Manage tool sources",
	}

	cmd.AddCommand(newSourceAddCommand())
	cmd.AddCommand(newSourceListCommand())
	cmd.AddCommand(newSourceInitCommand())

	return cmd
}

// newSourceAddCommand creates the `guppi tool source add` command.
func newSourceAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name> <url>",
		Short: "Add a tool source",
		Long: `Add a tool source.

An existing local directory is linked in place; anything else is treated
as a git address and cloned.`,
		Example: `  guppi tool source add guppi-tools https://github.com/samdengler/guppi-tools
  guppi tool source add local-tools /path/to/local/tools`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			root, err := config.SourcesDir()
			if err != nil {
				return err
			}
			return runSourceAdd(cmd.Context(), cmd.OutOrStdout(), root, args[0], args[1])
		},
	}

	return cmd
}

func runSourceAdd(ctx context.Context, stdout io.Writer, root, name, url string) error {
	fmt.Fprintf(stdout, "Adding source '%s' from %s...\n", name, url)

	entry, err := source.Add(ctx, root, name, url)
	if err != nil {
		var exists *source.ErrExists
		if errors.As(err, &exists) {
			return &ExitError{Code: 1, Err: exists}
		}
		return &ExitError{Code: 1, Err: fmt.Errorf("adding source: %w", err)}
	}

	switch entry.Kind {
	case source.KindLocal:
		fmt.Fprintln(stdout, SuccessStyle.Render(successIcon)+fmt.Sprintf(" Linked local source '%s' → %s", name, entry.Location))
	default:
		fmt.Fprintln(stdout, SuccessStyle.Render(successIcon)+fmt.Sprintf(" Cloned source '%s'", name))
	}

	// Advisory only: a source without metadata or with a newer schema is
	// still usable.
	if meta, valid, compatible := source.Validate(filepath.Join(root, name)); valid && !compatible {
		fmt.Fprintln(stdout, WarningStyle.Render("Warning: ")+
			fmt.Sprintf("source declares schema version %s; this guppi supports %s", meta.Version, manifest.SchemaVersion))
	}
	return nil
}

// newSourceListCommand creates the `guppi tool source list` command.
func newSourceListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all tool sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			root, err := config.SourcesDir()
			if err != nil {
				return err
			}
			return runSourceList(cmd.OutOrStdout(), root)
		},
	}

	return cmd
}

func runSourceList(stdout io.Writer, root string) error {
	entries := source.List(root)
	if len(entries) == 0 {
		fmt.Fprintln(stdout, "No sources configured")
		fmt.Fprintf(stdout, "\nAdd sources with: %s\n", CmdStyle.Render("guppi tool source add <name> <url>"))
		return nil
	}

	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{entry.Name, entry.Kind.String(), tui.ShortenPath(entry.Location)})
	}

	fmt.Fprintln(stdout, tui.RenderTable("Tool Sources", []string{"Name", "Type", "Location"}, rows))
	fmt.Fprintln(stdout, DimStyle.Render(fmt.Sprintf("Total: %d source(s) configured", len(entries))))
	return nil
}

// newSourceInitCommand creates the `guppi tool source init` command.
func newSourceInitCommand() *cobra.Command {
	var (
		name        string
		description string
		yes         bool
	)

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Initialize a directory as a tool source",
		Long: `Initialize a directory as a tool source by writing source metadata.

The name defaults to the directory's base name. A non-empty directory
requires confirmation before files are written.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runSourceInit(cmd.OutOrStdout(), cmd.InOrStdin(), dir, name, description, yes)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "source name (default: directory base name)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "source description")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip confirmation prompt")

	return cmd
}

func runSourceInit(stdout io.Writer, stdin io.Reader, dir, name, description string, yes bool) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return &ExitError{Code: 1, Err: fmt.Errorf("reading %s: %w", dir, err)}
	}
	if len(entries) > 0 && !yes {
		if !confirm(stdin, stdout, fmt.Sprintf("Directory %s is not empty. Initialize anyway?", dir)) {
			fmt.Fprintln(stdout, "Aborted.")
			return nil
		}
	}

	opts := scaffold.SourceOptions{Name: name, Description: description}
	if err := scaffold.InitSource(dir, opts); err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	finalName := name
	if finalName == "" {
		finalName = dir
	}
	fmt.Fprintln(stdout, SuccessStyle.Render(successIcon)+fmt.Sprintf(" Initialized GUPPI tool source '%s'", scaffold.SanitizeName(finalName)))
	fmt.Fprintf(stdout, "Register it with: %s\n", CmdStyle.Render("guppi tool source add <name> "+dir))
	return nil
}
