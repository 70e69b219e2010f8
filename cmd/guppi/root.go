// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"guppi-cli/internal/config"
	"guppi-cli/internal/router"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug logging.
	verbose bool

	rootCmd = &cobra.Command{
		Use:   "guppi",
		Short: "General Use Personal Program Interface",
		Long: TitleStyle.Render("GUPPI") + SubtitleStyle.Render(" - General Use Personal Program Interface") + `

guppi is a plugin framework for composing deterministic tools. Built-in
subcommands manage tools and their sources; any other first argument is
forwarded to an external 'guppi-<name>' executable with the remaining
arguments, and its exit code becomes guppi's exit code.

` + SubtitleStyle.Render("Examples:") + `
  guppi tool search                 List tools available in sources
  guppi tool install beads          Install a tool from a source
  guppi beads add "new bead"        Run the installed 'beads' tool
  guppi tool source add mine ~/dev  Register a local tool source`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printWelcome(cmd)
			return cmd.Help()
		},
	}
)

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(newToolCommand())
	rootCmd.AddCommand(newUpdateCommand())
	rootCmd.AddCommand(newUninstallCommand())
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the cobra tree for built-in subcommands.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initLogging applies the log level from the flag and the settings file.
func initLogging() {
	level := log.WarnLevel
	if settings, err := config.LoadSettings(); err == nil && settings.Verbose {
		level = log.DebugLevel
	}
	if verbose {
		level = log.DebugLevel
	}
	log.SetLevel(level)
}

// builtinNames are first tokens handled by the cobra tree rather than
// routed to an external tool. help, completion, and man come from cobra
// and fang.
var builtinNames = map[string]bool{
	"tool":       true,
	"update":     true,
	"uninstall":  true,
	"help":       true,
	"completion": true,
	"man":        true,
	"version":    true,
}

// tryRoute forwards a non-builtin first argument to its external tool
// executable. It reports whether routing handled the invocation; flags and
// builtins fall through to the cobra tree.
func tryRoute(args []string) (int, bool) {
	if len(args) == 0 {
		return 0, false
	}

	first := args[0]
	if strings.HasPrefix(first, "-") || builtinNames[first] {
		return 0, false
	}

	code, err := router.Run(context.Background(), first, args[1:], os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		if errors.Is(err, router.ErrToolNotFound) {
			fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+fmt.Sprintf("Tool '%s' not found", first))
			fmt.Fprintf(os.Stderr, "Install it with: %s\n", CmdStyle.Render("guppi tool install "+first))
			return 1, true
		}
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+err.Error())
		return 1, true
	}
	return code, true
}
