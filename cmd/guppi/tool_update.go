// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"fmt"
	"io"

	"guppi-cli/internal/config"
	"guppi-cli/internal/source"

	"github.com/spf13/cobra"
)

// newToolUpdateCommand creates the `guppi tool update` command.
func newToolUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [source]",
		Short: "Update tool sources",
		Long: `Update tool sources by pulling their latest changes.

Local (symlinked) sources are never modified and are skipped.`,
		Example: `  guppi tool update              # Update all sources
  guppi tool update guppi-tools  # Update a specific source`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			root, err := config.SourcesDir()
			if err != nil {
				return err
			}

			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			return runToolUpdate(cmd.Context(), cmd.OutOrStdout(), root, name)
		},
	}

	return cmd
}

func runToolUpdate(ctx context.Context, stdout io.Writer, root, name string) error {
	results, err := source.Update(ctx, root, name)
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}
	if len(results) == 0 {
		fmt.Fprintln(stdout, "No sources to update")
		return nil
	}

	var updated, skipped, failed int
	for _, result := range results {
		switch result.Status {
		case source.StatusUpdated, source.StatusUpToDate:
			fmt.Fprintln(stdout, SuccessStyle.Render(successIcon)+fmt.Sprintf(" %s: %s", result.Name, result.Status))
			updated++
		case source.StatusFailed:
			fmt.Fprintln(stdout, ErrorStyle.Render(failureIcon)+fmt.Sprintf(" %s: %v", result.Name, result.Err))
			failed++
		default:
			fmt.Fprintln(stdout, WarningStyle.Render(skipIcon)+fmt.Sprintf(" %s: %s", result.Name, result.Status))
			skipped++
		}
	}

	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "Updated: %d, Skipped: %d, Errors: %d\n", updated, skipped, failed)

	if failed > 0 {
		return &ExitError{Code: 1}
	}
	return nil
}
