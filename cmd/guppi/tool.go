// SPDX-License-Identifier: MPL-2.0

package main

import (
	"guppi-cli/internal/config"
	"guppi-cli/internal/discovery"

	"github.com/spf13/cobra"
)

// newToolCommand creates the `guppi tool` command group.
func newToolCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tool",
		Short: "Manage GUPPI tools",
	}

	cmd.AddCommand(newToolInstallCommand())
	cmd.AddCommand(newToolUninstallCommand())
	cmd.AddCommand(newToolSearchCommand())
	cmd.AddCommand(newToolListCommand())
	cmd.AddCommand(newToolInfoCommand())
	cmd.AddCommand(newToolInitCommand())
	cmd.AddCommand(newToolUpdateCommand())
	cmd.AddCommand(newSourceCommand())

	return cmd
}

// newDiscovery builds a Discovery over the configured sources root.
func newDiscovery() (*discovery.Discovery, error) {
	root, err := config.SourcesDir()
	if err != nil {
		return nil, err
	}
	return discovery.New(root), nil
}

// defaultSource returns the source filter to use when the user gave none.
func defaultSource(flag string) string {
	if flag != "" {
		return flag
	}
	if settings, err := config.LoadSettings(); err == nil {
		return settings.DefaultSource
	}
	return ""
}
